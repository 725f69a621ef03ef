package note

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/obsidian-link/obsidian-link/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid touching a real vault
	filesystem.SetMemMapFs()
}

func TestWrite(t *testing.T) {
	Convey("Write", t, func() {
		frontmatter := "---\ndate: 2024-03-01\nday: Fri\ntime: 13:05\nurl: https://youtu.be/abc123\nauthor: Bob's Channel\n---\n"
		embed := `<iframe width="1920" height="1080" src="https://www.youtube.com/embed/abc123" frameborder="0" allowfullscreen></iframe>`

		Convey("Should create nested folders and write the document verbatim", func() {
			path, err := Write("/vault", "YouTube", "Test Video", frontmatter, embed, "A description")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join("/vault", "YouTube", "Test Video.md"))

			content := lo.Must(filesystem.API().ReadFile(path))
			So(string(content), ShouldEqual, frontmatter+"\n"+embed+"\n\n## Description\nA description")
		})

		Convey("Web links should keep the blank embed line", func() {
			path, err := Write("/vault", "Links", "Some Title", frontmatter, "", "Some Description")
			So(err, ShouldBeNil)

			content := lo.Must(filesystem.API().ReadFile(path))
			So(string(content), ShouldEqual, frontmatter+"\n\n\n## Description\nSome Description")
		})

		Convey("Should confine sanitized titles to the note folder", func() {
			path, err := Write("/vault", "Links", "../escape", frontmatter, "", "d")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join("/vault", "Links", "escape.md"))
		})

		Convey("Should truncate an existing note at the same path", func() {
			first, err := Write("/vault", "Links", "Same", frontmatter, "", "first")
			So(err, ShouldBeNil)

			second, err := Write("/vault", "Links", "Same", frontmatter, "", "second")
			So(err, ShouldBeNil)
			So(second, ShouldEqual, first)

			content := lo.Must(filesystem.API().ReadFile(second))
			So(string(content), ShouldEndWith, "second")
			So(string(content), ShouldNotContainSubstring, "first")
		})

		Convey("Should expand a tilde vault against the home directory", func() {
			home, err := os.UserHomeDir()
			So(err, ShouldBeNil)

			path, err := Write("~/vault", "Links", "Homed", frontmatter, "", "d")
			So(err, ShouldBeNil)
			So(strings.HasPrefix(path, home), ShouldBeTrue)
		})
	})
}
