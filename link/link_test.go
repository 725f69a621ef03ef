package link

import (
	"errors"
	"testing"

	"github.com/obsidian-link/obsidian-link/resolution"
	. "github.com/smartystreets/goconvey/convey"
)

func testRules() []Rule {
	return []Rule{
		{Name: "youtube", Pattern: `(youtube\.com/watch|youtu\.be/)`, Resolution: "FHD", Folder: "YouTube"},
		{Name: "shorts", Pattern: `youtube\.com/shorts/`, Resolution: "720p", Folder: "Shorts"},
		{Name: "default", Pattern: `.*`, Resolution: "FHD", Folder: "Links"},
	}
}

func TestClassify(t *testing.T) {
	Convey("Classify", t, func() {
		tables := resolution.Defaults()

		Convey("Video rule should win with the standard table size", func() {
			link, err := Classify("https://www.youtube.com/watch?v=abc123", testRules(), tables)
			So(err, ShouldBeNil)
			So(link.Kind, ShouldEqual, KindVideo)
			So(link.Folder, ShouldEqual, "YouTube")
			So(link.Width, ShouldEqual, 1920)
			So(link.Height, ShouldEqual, 1080)
		})

		Convey("Shorts rule should win with the vertical table size", func() {
			link, err := Classify("https://www.youtube.com/shorts/xyz789", testRules(), tables)
			So(err, ShouldBeNil)
			So(link.Kind, ShouldEqual, KindShorts)
			So(link.Folder, ShouldEqual, "Shorts")
			So(link.Width, ShouldEqual, 720)
			So(link.Height, ShouldEqual, 1280)
		})

		Convey("Unmatched urls should fall back to the default rule with zero size", func() {
			link, err := Classify("https://example.com/article", testRules(), tables)
			So(err, ShouldBeNil)
			So(link.Kind, ShouldEqual, KindWebLink)
			So(link.Folder, ShouldEqual, "Links")
			So(link.Width, ShouldEqual, 0)
			So(link.Height, ShouldEqual, 0)
		})

		Convey("A default rule listed first should still lose to a later specific rule", func() {
			rules := []Rule{
				{Name: "default", Pattern: `.*`, Folder: "Links"},
				{Name: "youtube", Pattern: `youtu\.be/`, Resolution: "SD", Folder: "YouTube"},
			}
			link, err := Classify("https://youtu.be/abc123", rules, tables)
			So(err, ShouldBeNil)
			So(link.Kind, ShouldEqual, KindVideo)
			So(link.Folder, ShouldEqual, "YouTube")
			So(link.Width, ShouldEqual, 1280)
		})

		Convey("A later matching default should overwrite an earlier one", func() {
			rules := []Rule{
				{Name: "default", Pattern: `.*`, Folder: "First"},
				{Name: "default", Pattern: `example\.com`, Folder: "Second"},
			}
			link, err := Classify("https://example.com", rules, tables)
			So(err, ShouldBeNil)
			So(link.Folder, ShouldEqual, "Second")
		})

		Convey("The first matching non-default rule should short-circuit", func() {
			rules := []Rule{
				{Name: "youtube", Pattern: `youtube\.com`, Resolution: "FHD", Folder: "First"},
				{Name: "youtube", Pattern: `youtube\.com`, Resolution: "4K", Folder: "Second"},
			}
			link, err := Classify("https://www.youtube.com/watch?v=a", rules, tables)
			So(err, ShouldBeNil)
			So(link.Folder, ShouldEqual, "First")
			So(link.Width, ShouldEqual, 1920)
		})

		Convey("Custom rule names should classify as web links with their configured size", func() {
			rules := []Rule{
				{Name: "vimeo", Pattern: `vimeo\.com`, Resolution: "HD+", Folder: "Vimeo"},
			}
			link, err := Classify("https://vimeo.com/12345", rules, tables)
			So(err, ShouldBeNil)
			So(link.Kind, ShouldEqual, KindWebLink)
			So(link.Width, ShouldEqual, 1600)
			So(link.Height, ShouldEqual, 900)
		})

		Convey("No match and no default should report ErrNoMatch", func() {
			rules := []Rule{
				{Name: "youtube", Pattern: `youtube\.com`, Resolution: "FHD", Folder: "YouTube"},
			}
			_, err := Classify("https://example.com", rules, tables)
			So(errors.Is(err, ErrNoMatch), ShouldBeTrue)
		})

		Convey("An unknown resolution tag should surface the table miss", func() {
			rules := []Rule{
				{Name: "youtube", Pattern: `youtube\.com`, Resolution: "UHD", Folder: "YouTube"},
			}
			_, err := Classify("https://youtube.com/watch?v=a", rules, tables)
			So(errors.Is(err, resolution.ErrUnknown), ShouldBeTrue)
		})

		Convey("A shorts rule with a standard tag should miss the vertical table", func() {
			rules := []Rule{
				{Name: "shorts", Pattern: `shorts/`, Resolution: "FHD", Folder: "Shorts"},
			}
			_, err := Classify("https://youtube.com/shorts/a", rules, tables)
			So(errors.Is(err, resolution.ErrUnknown), ShouldBeTrue)
		})

		Convey("A pattern that does not compile should report ErrBadPattern", func() {
			rules := []Rule{
				{Name: "broken", Pattern: `[unclosed`, Resolution: "FHD", Folder: "Broken"},
			}
			_, err := Classify("https://example.com", rules, tables)
			So(errors.Is(err, ErrBadPattern), ShouldBeTrue)
		})

		Convey("Patterns should match unanchored and case-sensitively", func() {
			rules := []Rule{
				{Name: "default", Pattern: `Example`, Folder: "Links"},
			}

			_, err := Classify("https://example.com", rules, tables)
			So(errors.Is(err, ErrNoMatch), ShouldBeTrue)

			link, err := Classify("https://Example.com", rules, tables)
			So(err, ShouldBeNil)
			So(link.Folder, ShouldEqual, "Links")
		})

		Convey("An empty rule table should never match", func() {
			_, err := Classify("https://example.com", nil, tables)
			So(errors.Is(err, ErrNoMatch), ShouldBeTrue)
		})
	})
}
