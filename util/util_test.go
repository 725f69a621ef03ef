package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should keep letters, digits, whitespace and hyphens", func() {
			So(SanitizeFilename("Test Video"), ShouldEqual, "Test Video")
			So(SanitizeFilename("Go 1-22 released"), ShouldEqual, "Go 1-22 released")
		})
		Convey("Should drop punctuation", func() {
			So(SanitizeFilename("What's new? (2024)"), ShouldEqual, "Whats new 2024")
		})
		Convey("Should strip path separators and dot sequences", func() {
			So(SanitizeFilename("../../etc/passwd"), ShouldEqual, "etcpasswd")
			So(SanitizeFilename(`..\..\boot`), ShouldEqual, "boot")
		})
		Convey("Should keep unicode alphanumerics", func() {
			So(SanitizeFilename("日本語のタイトル"), ShouldEqual, "日本語のタイトル")
		})
	})
}

func TestSanitizeTag(t *testing.T) {
	Convey("SanitizeTag", t, func() {
		Convey("Should lowercase and hyphenate", func() {
			So(SanitizeTag("Machine Learning"), ShouldEqual, "machine-learning")
		})
		Convey("Should drop apostrophes instead of hyphenating them", func() {
			So(SanitizeTag("Rob's Talk"), ShouldEqual, "robs-talk")
		})
		Convey("Should hyphenate other punctuation", func() {
			So(SanitizeTag("C++ (tutorial)"), ShouldEqual, "c---tutorial-")
		})
		Convey("Should be idempotent", func() {
			tags := []string{"Machine Learning", "Rob's Talk", "C++ (tutorial)", "already-clean"}
			for _, tag := range tags {
				once := SanitizeTag(tag)
				So(SanitizeTag(once), ShouldEqual, once)
			}
		})
	})
}

func TestExpandHome(t *testing.T) {
	Convey("ExpandHome", t, func() {
		Convey("Should pass through absolute and relative paths", func() {
			path, err := ExpandHome("/srv/vault")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/srv/vault")

			path, err = ExpandHome("vault")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "vault")
		})
		Convey("Should expand the tilde prefix", func() {
			path, err := ExpandHome("~/vault")
			So(err, ShouldBeNil)
			So(path, ShouldNotContainSubstring, "~")
			So(path, ShouldEndWith, "/vault")
		})
		Convey("Should not expand a tilde in the middle", func() {
			path, err := ExpandHome("/data/~user")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/data/~user")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "rule", "rules"), ShouldEqual, "1 rule")
		So(Quantify(2, "rule", "rules"), ShouldEqual, "2 rules")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}
