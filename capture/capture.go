// Package capture implements the one-shot pipeline that turns a URL into a
// vault note: classify, fetch metadata when the rule family asks for it,
// render and write.
package capture

import (
	"context"
	"errors"
	"fmt"

	"github.com/obsidian-link/obsidian-link/link"
	"github.com/obsidian-link/obsidian-link/log"
	"github.com/obsidian-link/obsidian-link/note"
	"github.com/obsidian-link/obsidian-link/open"
	"github.com/obsidian-link/obsidian-link/youtube"
)

// Placeholder values written into web-link notes, which carry no fetchable
// metadata.
const (
	placeholderTitle       = "Some Title"
	placeholderDescription = "Some Description"
	placeholderAuthor      = "Some Author"
)

var placeholderTags = []string{"tag1", "tag2"}

// ErrNoProvider indicates a video or shorts capture was attempted without a
// configured metadata provider.
var ErrNoProvider = errors.New("no metadata provider configured")

// Provider is the metadata capability consumed for video and shorts links.
type Provider interface {
	Video(ctx context.Context, id string) (*youtube.Video, error)
}

// Run classifies the URL, synthesizes the note and emits the result.
func Run(ctx context.Context, options *Options) error {
	classified, err := link.Classify(options.URL, options.Rules, options.Tables)
	if err != nil {
		return err
	}

	log.Infof("classified %s as %s into folder %s", options.URL, classified.Kind, classified.Folder)

	now, err := note.Now(options.Timezone)
	if err != nil {
		return err
	}

	var result *Output
	switch classified.Kind {
	case link.KindVideo, link.KindShorts:
		result, err = captureVideo(ctx, options, classified, now)
	case link.KindWebLink:
		result, err = captureWebLink(options, classified, now)
	default:
		err = fmt.Errorf("unhandled link kind %q", classified.Kind)
	}
	if err != nil {
		return err
	}

	log.Infof("wrote note %s", result.Path)

	if err := emit(options, result); err != nil {
		return err
	}

	if options.Open {
		if options.OpenWith != "" {
			return open.StartWith(result.Path, options.OpenWith)
		}
		return open.Start(result.Path)
	}

	return nil
}

// captureVideo renders a note from fetched snippet metadata. Shorts only
// differ from plain videos by their vertical embed size, which the
// classifier has already resolved.
func captureVideo(ctx context.Context, options *Options, classified link.Link, now note.Timestamp) (*Output, error) {
	id, err := youtube.ExtractVideoID(classified.URL)
	if err != nil {
		return nil, err
	}

	if options.Provider == nil {
		return nil, fmt.Errorf("%w for %s link", ErrNoProvider, classified.Kind)
	}

	video, err := options.Provider.Video(ctx, id)
	if err != nil {
		return nil, err
	}

	url := classified.URL
	if options.CanonicalURL {
		url = youtube.WatchURL(id)
	}

	frontmatter := note.Frontmatter(options.Overrides, now, url, video.Channel, video.Tags)
	embed := youtube.EmbedHTML(id, classified.Width, classified.Height)

	path, err := note.Write(options.Vault, classified.Folder, video.Title, frontmatter, embed, video.Description)
	if err != nil {
		return nil, err
	}

	return &Output{
		URL:     options.URL,
		Kind:    classified.Kind,
		Folder:  classified.Folder,
		Width:   classified.Width,
		Height:  classified.Height,
		VideoID: id,
		Title:   video.Title,
		Path:    path,
	}, nil
}

// captureWebLink renders a note from placeholder values, since generic pages
// have no metadata source. The embed slot stays empty.
func captureWebLink(options *Options, classified link.Link, now note.Timestamp) (*Output, error) {
	title := placeholderTitle
	if options.Title != "" {
		title = options.Title
	}

	frontmatter := note.Frontmatter(options.Overrides, now, classified.URL, placeholderAuthor, placeholderTags)

	path, err := note.Write(options.Vault, classified.Folder, title, frontmatter, "", placeholderDescription)
	if err != nil {
		return nil, err
	}

	return &Output{
		URL:    options.URL,
		Kind:   classified.Kind,
		Folder: classified.Folder,
		Width:  classified.Width,
		Height: classified.Height,
		Title:  title,
		Path:   path,
	}, nil
}
