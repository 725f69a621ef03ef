package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/obsidian-link/obsidian-link/filesystem"
	"github.com/obsidian-link/obsidian-link/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid touching the real cache
	filesystem.SetMemMapFs()
}

func TestCollectGarbage(t *testing.T) {
	Convey("CollectGarbage", t, func() {
		fs := filesystem.API()

		stale := filepath.Join(where.Cache(), "stale.json")
		fresh := filepath.Join(where.Cache(), "fresh.json")

		So(fs.WriteFile(stale, []byte("{}"), 0644), ShouldBeNil)
		So(fs.WriteFile(fresh, []byte("{}"), 0644), ShouldBeNil)
		So(fs.Chtimes(stale, time.Now(), time.Now().Add(-TTL-time.Hour)), ShouldBeNil)

		CollectGarbage()

		So(lo.Must(fs.Exists(stale)), ShouldBeFalse)
		So(lo.Must(fs.Exists(fresh)), ShouldBeTrue)
	})
}
