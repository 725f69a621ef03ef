// Package cache prunes expired on-disk cache artifacts left behind by the
// gache-backed stores.
package cache

import (
	"path/filepath"
	"time"

	"github.com/obsidian-link/obsidian-link/filesystem"
	"github.com/obsidian-link/obsidian-link/where"
	"github.com/spf13/afero"
)

// TTL is the grace period after which an untouched cache file is removed.
// It exceeds every in-file gache lifetime, so pruning only ever reclaims
// files whose entries have already expired.
const TTL = 7 * 24 * time.Hour

// CollectGarbage removes cache files that have not been written within TTL.
// Expiry inside a live cache file is handled by gache itself; this only
// reclaims the disk space of abandoned files.
func CollectGarbage() {
	fs := filesystem.API()

	entries, err := afero.ReadDir(fs, where.Cache())
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if time.Since(entry.ModTime()) > TTL {
			_ = fs.Remove(filepath.Join(where.Cache(), entry.Name()))
		}
	}
}
