// Package youtube extracts video identifiers from captured URLs and fetches
// snippet metadata through the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"fmt"

	"github.com/obsidian-link/obsidian-link/log"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"
)

// ErrVideoNotFound indicates the API answered with an empty result set for
// the queried identifier.
var ErrVideoNotFound = errors.New("video not found")

// Client wraps the Data API v3 service behind the metadata capability the
// capture pipeline consumes.
type Client struct {
	service *youtubeapi.Service
}

// NewClient builds a Data API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("youtube api key is empty")
	}

	service, err := youtubeapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{service: service}, nil
}

// Video fetches snippet metadata for the given identifier, consulting the
// on-disk cache first when metadata caching is enabled.
func (c *Client) Video(ctx context.Context, id string) (*Video, error) {
	if cached, ok := cachedVideo(id).Get(); ok {
		log.Debugf("metadata cache hit for %s", id)
		return cached, nil
	}

	response, err := c.service.Videos.List([]string{"snippet"}).Id(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch video %s: %w", id, err)
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, id)
	}

	video := &Video{ID: id}
	if snippet := response.Items[0].Snippet; snippet != nil {
		video.Title = snippet.Title
		video.Description = snippet.Description
		video.Channel = snippet.ChannelTitle
		video.PublishedAt = snippet.PublishedAt
		video.Tags = snippet.Tags
	}

	rememberVideo(video)
	return video, nil
}
