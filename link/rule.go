// Package link classifies captured URLs against the user-configured rule table.
package link

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/obsidian-link/obsidian-link/key"
	"github.com/spf13/viper"
)

// Reserved rule names with dedicated handling. Every other name classifies
// as a plain web link.
const (
	NameYouTube = "youtube"
	NameShorts  = "shorts"
	NameDefault = "default"
)

// Rule binds a URL pattern to a handler family, a resolution tag and a
// destination folder inside the vault. Rules are evaluated in the order
// they appear in the configuration.
type Rule struct {
	Name       string `mapstructure:"name" json:"name" yaml:"name"`
	Pattern    string `mapstructure:"regex" json:"regex" yaml:"regex"`
	Resolution string `mapstructure:"resolution" json:"resolution" yaml:"resolution"`
	Folder     string `mapstructure:"folder" json:"folder" yaml:"folder"`
}

// Validate reports the first configuration problem with the rule. Default
// rules may omit the resolution tag since the fallback never consults it.
func (r Rule) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Pattern, validation.Required, validation.By(patternCompiles)),
		validation.Field(&r.Resolution, validation.Required.When(r.Name != NameDefault)),
		validation.Field(&r.Folder, validation.Required),
	)
}

func patternCompiles(value any) error {
	pattern, _ := value.(string)
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("must be a valid regular expression: %v", err)
	}
	return nil
}

// Rules loads and validates the ordered rule table from configuration.
func Rules() ([]Rule, error) {
	var rules []Rule
	if err := viper.UnmarshalKey(key.Links, &rules); err != nil {
		return nil, fmt.Errorf("parse %s: %w", key.Links, err)
	}

	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("%s[%d] %q: %w", key.Links, i, rule.Name, err)
		}
	}

	return rules, nil
}
