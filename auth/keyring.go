// Package auth provides a high-level API for persisting and retrieving the YouTube API key from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "obsidian-link"
	user    = "youtube-api-key"
)

// SetAPIKey persists the YouTube Data API key to the system keyring.
func SetAPIKey(apiKey string) error {
	return keyring.Set(service, user, apiKey)
}

// APIKey retrieves the YouTube Data API key from the system keyring.
func APIKey() (string, error) {
	return keyring.Get(service, user)
}

// DeleteAPIKey removes the YouTube Data API key from the system keyring.
func DeleteAPIKey() error {
	return keyring.Delete(service, user)
}
