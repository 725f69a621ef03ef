package youtube

import (
	"testing"

	"github.com/obsidian-link/obsidian-link/filesystem"
	"github.com/obsidian-link/obsidian-link/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	// Use in-memory filesystem for tests to avoid writing a real cache file
	filesystem.SetMemMapFs()
}

func TestMetadataCache(t *testing.T) {
	Convey("Metadata cache", t, func() {
		Convey("Should remember and return videos when enabled", func() {
			viper.Set(key.YouTubeCacheMetadata, true)
			rememberVideo(&Video{ID: "abc123", Title: "Test Video"})

			cached := cachedVideo("abc123")
			So(cached.IsPresent(), ShouldBeTrue)
			So(cached.MustGet().Title, ShouldEqual, "Test Video")
		})

		Convey("Should miss unknown identifiers", func() {
			viper.Set(key.YouTubeCacheMetadata, true)
			So(cachedVideo("missing").IsAbsent(), ShouldBeTrue)
		})

		Convey("Should stay inert when disabled", func() {
			viper.Set(key.YouTubeCacheMetadata, false)
			rememberVideo(&Video{ID: "xyz789", Title: "Skipped"})
			So(cachedVideo("xyz789").IsAbsent(), ShouldBeTrue)
		})
	})
}
