package youtube

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEmbedHTML(t *testing.T) {
	Convey("EmbedHTML", t, func() {
		Convey("Should render the fragment verbatim", func() {
			So(
				EmbedHTML("abc123", 1920, 1080),
				ShouldEqual,
				`<iframe width="1920" height="1080" src="https://www.youtube.com/embed/abc123" frameborder="0" allowfullscreen></iframe>`,
			)
		})

		Convey("Should render vertical sizes as given", func() {
			So(
				EmbedHTML("xyz789", 1080, 1920),
				ShouldEqual,
				`<iframe width="1080" height="1920" src="https://www.youtube.com/embed/xyz789" frameborder="0" allowfullscreen></iframe>`,
			)
		})
	})
}
