package link

import (
	"testing"

	"github.com/obsidian-link/obsidian-link/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestRuleValidate(t *testing.T) {
	Convey("Rule Validate", t, func() {
		Convey("A complete rule should pass", func() {
			rule := Rule{Name: "youtube", Pattern: `youtu\.be/`, Resolution: "FHD", Folder: "YouTube"}
			So(rule.Validate(), ShouldBeNil)
		})

		Convey("A default rule may omit the resolution", func() {
			rule := Rule{Name: "default", Pattern: `.*`, Folder: "Links"}
			So(rule.Validate(), ShouldBeNil)
		})

		Convey("A non-default rule requires a resolution", func() {
			rule := Rule{Name: "youtube", Pattern: `youtu\.be/`, Folder: "YouTube"}
			So(rule.Validate(), ShouldNotBeNil)
		})

		Convey("Missing name, pattern or folder should fail", func() {
			So(Rule{Pattern: `.*`, Resolution: "FHD", Folder: "x"}.Validate(), ShouldNotBeNil)
			So(Rule{Name: "x", Resolution: "FHD", Folder: "x"}.Validate(), ShouldNotBeNil)
			So(Rule{Name: "x", Pattern: `.*`, Resolution: "FHD"}.Validate(), ShouldNotBeNil)
		})

		Convey("A pattern that does not compile should fail", func() {
			rule := Rule{Name: "broken", Pattern: `[unclosed`, Resolution: "FHD", Folder: "x"}
			So(rule.Validate(), ShouldNotBeNil)
		})
	})
}

func TestRules(t *testing.T) {
	Convey("Rules", t, func() {
		Convey("Should decode the configured table in order", func() {
			viper.Set(key.Links, []map[string]any{
				{"name": "youtube", "regex": `youtu\.be/`, "resolution": "FHD", "folder": "YouTube"},
				{"name": "default", "regex": `.*`, "folder": "Links"},
			})

			rules, err := Rules()
			So(err, ShouldBeNil)
			So(rules, ShouldHaveLength, 2)
			So(rules[0].Name, ShouldEqual, "youtube")
			So(rules[0].Pattern, ShouldEqual, `youtu\.be/`)
			So(rules[1].Name, ShouldEqual, "default")
			So(rules[1].Folder, ShouldEqual, "Links")
		})

		Convey("Should reject a table with an invalid rule", func() {
			viper.Set(key.Links, []map[string]any{
				{"name": "youtube", "regex": `[unclosed`, "resolution": "FHD", "folder": "YouTube"},
			})

			_, err := Rules()
			So(err, ShouldNotBeNil)
		})

		Convey("An absent table should decode to no rules", func() {
			viper.Set(key.Links, nil)

			rules, err := Rules()
			So(err, ShouldBeNil)
			So(rules, ShouldBeEmpty)
		})
	})
}
