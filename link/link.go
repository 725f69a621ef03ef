package link

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/obsidian-link/obsidian-link/resolution"
	"github.com/samber/mo"
)

// Kind is the closed set of link families a URL can classify into.
type Kind string

const (
	KindVideo   Kind = "video"
	KindShorts  Kind = "shorts"
	KindWebLink Kind = "weblink"
)

var (
	// ErrNoMatch indicates no rule matched and no default rule was configured.
	ErrNoMatch = errors.New("no rule matches url")

	// ErrBadPattern indicates a rule pattern failed to compile.
	ErrBadPattern = errors.New("invalid rule pattern")
)

// Link is a classified URL together with everything the note pipeline needs:
// the family, the destination folder and the embed dimensions.
type Link struct {
	Kind   Kind   `json:"kind"`
	URL    string `json:"url"`
	Folder string `json:"folder"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Classify matches url against rules in their configured order.
//
// The first matching non-default rule wins immediately. A matching default
// rule is only remembered and the scan continues, so a later, more specific
// rule can still claim the url. A later default overwrites the remembered
// one. The fallback is a zero-sized web link.
//
// Patterns are unanchored and case-sensitive.
func Classify(url string, rules []Rule, tables resolution.Tables) (Link, error) {
	fallback := mo.None[Link]()

	for _, rule := range rules {
		pattern, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return Link{}, fmt.Errorf("%w: rule %q: %v", ErrBadPattern, rule.Name, err)
		}

		if !pattern.MatchString(url) {
			continue
		}

		if rule.Name == NameDefault {
			fallback = mo.Some(Link{Kind: KindWebLink, URL: url, Folder: rule.Folder})
			continue
		}

		table := tables.Standard
		if rule.Name == NameShorts {
			table = tables.Vertical
		}

		size, err := table.Lookup(rule.Resolution)
		if err != nil {
			return Link{}, fmt.Errorf("rule %q: %w", rule.Name, err)
		}

		kind := KindWebLink
		switch rule.Name {
		case NameYouTube:
			kind = KindVideo
		case NameShorts:
			kind = KindShorts
		}

		return Link{
			Kind:   kind,
			URL:    url,
			Folder: rule.Folder,
			Width:  size.Width,
			Height: size.Height,
		}, nil
	}

	if link, ok := fallback.Get(); ok {
		return link, nil
	}

	return Link{}, fmt.Errorf("%w: %s", ErrNoMatch, url)
}
