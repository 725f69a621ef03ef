package youtube

import (
	"errors"
	"fmt"
	"regexp"
)

// videoIDPattern recognizes the canonical video URL shapes: the short-link
// host plus the watch, embed, v and shorts path forms. Group 5 captures the
// identifier, which runs until a query, quote or bracket delimiter.
var videoIDPattern = regexp.MustCompile(`(youtu\.be/|youtube\.com/(watch\?(.*&)?v=|(embed|v|shorts)/))([^?&">]+)`)

// ErrNoVideoID indicates no video identifier could be derived from a URL.
var ErrNoVideoID = errors.New("no video id in url")

// ExtractVideoID pulls the video identifier out of a recognized video URL.
func ExtractVideoID(url string) (string, error) {
	match := videoIDPattern.FindStringSubmatch(url)
	if match == nil {
		return "", fmt.Errorf("%w: %s", ErrNoVideoID, url)
	}
	return match[5], nil
}

// WatchURL returns the canonical watch URL for a video identifier.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
