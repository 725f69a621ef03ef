package resolution

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Default tables", t, func() {
		tables := Defaults()

		Convey("Standard table should carry the canonical sizes", func() {
			expected := map[string]Size{
				"nHD":   {640, 360},
				"FWVGA": {854, 480},
				"qHD":   {960, 540},
				"SD":    {1280, 720},
				"WXGA":  {1366, 768},
				"HD+":   {1600, 900},
				"FHD":   {1920, 1080},
				"WQHD":  {2560, 1440},
				"QHD+":  {3200, 1800},
				"4K":    {3840, 2160},
				"5K":    {5120, 2880},
				"8K":    {7680, 4320},
				"16K":   {15360, 8640},
			}
			So(len(tables.Standard), ShouldEqual, len(expected))
			for tag, size := range expected {
				got, err := tables.Standard.Lookup(tag)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, size)
			}
		})

		Convey("Vertical table should swap width and height for portrait embeds", func() {
			expected := map[string]Size{
				"480p":  {480, 854},
				"720p":  {720, 1280},
				"1080p": {1080, 1920},
				"1440p": {1440, 2560},
				"2160p": {2160, 3840},
			}
			So(len(tables.Vertical), ShouldEqual, len(expected))
			for tag, size := range expected {
				got, err := tables.Vertical.Lookup(tag)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, size)
			}
		})
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		tables := Defaults()

		Convey("Should report unknown tags", func() {
			_, err := tables.Standard.Lookup("UHD")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrUnknown), ShouldBeTrue)
		})

		Convey("Should match case-sensitively", func() {
			_, err := tables.Standard.Lookup("fhd")
			So(errors.Is(err, ErrUnknown), ShouldBeTrue)
		})

		Convey("Vertical tags should not leak into the standard table", func() {
			_, err := tables.Standard.Lookup("1080p")
			So(errors.Is(err, ErrUnknown), ShouldBeTrue)

			_, err = tables.Vertical.Lookup("FHD")
			So(errors.Is(err, ErrUnknown), ShouldBeTrue)
		})
	})
}

func TestNames(t *testing.T) {
	Convey("Names", t, func() {
		names := Defaults().Vertical.Names()
		So(names, ShouldResemble, []string{"1080p", "1440p", "2160p", "480p", "720p"})
	})
}
