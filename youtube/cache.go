package youtube

import (
	"time"

	"github.com/metafates/gache"
	"github.com/obsidian-link/obsidian-link/filesystem"
	"github.com/obsidian-link/obsidian-link/key"
	"github.com/obsidian-link/obsidian-link/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// metadataCacher persists fetched snippets so repeat captures of the same
// video spend no API quota. Entries expire together with the cache file.
var metadataCacher = gache.New[map[string]*Video](
	&gache.Options{
		Path:       where.MetadataCache(),
		Lifetime:   time.Hour * 24,
		FileSystem: &filesystem.GacheFs{},
	},
)

func cachedVideo(id string) mo.Option[*Video] {
	if !viper.GetBool(key.YouTubeCacheMetadata) {
		return mo.None[*Video]()
	}

	cached, expired, err := metadataCacher.Get()
	if err != nil || expired || cached == nil {
		return mo.None[*Video]()
	}

	if video, ok := cached[id]; ok {
		return mo.Some(video)
	}

	return mo.None[*Video]()
}

func rememberVideo(video *Video) {
	if !viper.GetBool(key.YouTubeCacheMetadata) {
		return
	}

	cached, expired, err := metadataCacher.Get()
	if err != nil || expired || cached == nil {
		cached = make(map[string]*Video)
	}

	cached[video.ID] = video
	_ = metadataCacher.Set(cached)
}
