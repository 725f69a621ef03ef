// Package note renders and writes the markdown documents produced by a capture.
package note

import (
	"fmt"
	"strings"
	"time"

	"github.com/obsidian-link/obsidian-link/key"
	"github.com/obsidian-link/obsidian-link/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Overrides pins individual frontmatter fields to configured values. Absent
// fields fall back to computed timestamps or fetched metadata, each field
// independently of the others.
type Overrides struct {
	Date   mo.Option[string]
	Day    mo.Option[string]
	Time   mo.Option[string]
	Tags   mo.Option[[]string]
	URL    mo.Option[string]
	Author mo.Option[string]
}

// OverridesFromConfig loads the frontmatter overrides. An empty configured
// value means the field is absent, not an override to the empty string.
func OverridesFromConfig() Overrides {
	option := func(k string) mo.Option[string] {
		if value := viper.GetString(k); value != "" {
			return mo.Some(value)
		}
		return mo.None[string]()
	}

	overrides := Overrides{
		Date:   option(key.FrontmatterDate),
		Day:    option(key.FrontmatterDay),
		Time:   option(key.FrontmatterTime),
		URL:    option(key.FrontmatterURL),
		Author: option(key.FrontmatterAuthor),
	}

	if tags := viper.GetStringSlice(key.FrontmatterTags); len(tags) > 0 {
		overrides.Tags = mo.Some(tags)
	}

	return overrides
}

// Timestamp is the date, day and time triple stamped into the frontmatter.
type Timestamp struct {
	Date string
	Day  string
	Time string
}

// Now computes the current timestamp in the named IANA time zone.
func Now(timezone string) (Timestamp, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return Timestamp{}, fmt.Errorf("load time zone %q: %w", timezone, err)
	}

	now := time.Now().In(location)
	return Timestamp{
		Date: now.Format("2006-01-02"),
		Day:  now.Format("Mon"),
		Time: now.Format("15:04"),
	}, nil
}

// Frontmatter renders the YAML preamble. The field order date, day, time,
// tags, url, author is a compatibility contract. The tags block is omitted
// when the resolved list is empty, and every tag passes through the
// sanitizer regardless of origin. The returned string ends with the closing
// fence's newline.
func Frontmatter(overrides Overrides, now Timestamp, url, author string, tags []string) string {
	var b strings.Builder

	b.WriteString("---\n")
	fmt.Fprintf(&b, "date: %s\n", overrides.Date.OrElse(now.Date))
	fmt.Fprintf(&b, "day: %s\n", overrides.Day.OrElse(now.Day))
	fmt.Fprintf(&b, "time: %s\n", overrides.Time.OrElse(now.Time))

	if resolved := overrides.Tags.OrElse(tags); len(resolved) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range resolved {
			fmt.Fprintf(&b, "  - %s\n", util.SanitizeTag(tag))
		}
	}

	fmt.Fprintf(&b, "url: %s\n", overrides.URL.OrElse(url))
	fmt.Fprintf(&b, "author: %s\n", overrides.Author.OrElse(author))
	b.WriteString("---\n")

	return b.String()
}
