package config

import (
	"testing"

	"github.com/obsidian-link/obsidian-link/filesystem"
	"github.com/obsidian-link/obsidian-link/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	// Use in-memory filesystem for tests to avoid touching real config files
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			// After setup, viper should have defaults from Default map
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should register every defined field exactly once", func() {
			So(Default, ShouldHaveLength, key.DefinedFieldsCount)
		})

		Convey("Should register the vault and rule table keys", func() {
			So(Default, ShouldContainKey, key.Vault)
			So(Default, ShouldContainKey, key.NoteTimezone)
			So(Default, ShouldContainKey, key.YouTubeAPIKey)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("note.canonical_url")
			So(result, ShouldEqual, "note_canonical_url")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field Env", t, func() {
		Convey("Should prefix and uppercase the key", func() {
			field := Default[key.NoteTimezone]
			So(field.Env(), ShouldEqual, "OBSIDIAN_LINK_NOTE_TIMEZONE")
		})

		Convey("Should not double an existing prefix", func() {
			field := Field{Key: "obsidian_link.custom", Value: ""}
			So(field.Env(), ShouldEqual, "OBSIDIAN_LINK_CUSTOM")
		})
	})
}
