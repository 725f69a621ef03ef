// Package resolution defines the fixed lookup tables that translate resolution tags into embed dimensions.
package resolution

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// ErrUnknown indicates a rule references a tag that is absent from its table.
var ErrUnknown = errors.New("unknown resolution")

// Size is an embed width and height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Table maps resolution tags to embed sizes.
type Table map[string]Size

// Tables bundles the two disjoint lookup tables. The vertical table serves
// shorts rules, the standard table everything else.
type Tables struct {
	Standard Table
	Vertical Table
}

// Defaults returns the canonical tables.
func Defaults() Tables {
	return Tables{
		Standard: Table{
			"nHD":   {Width: 640, Height: 360},
			"FWVGA": {Width: 854, Height: 480},
			"qHD":   {Width: 960, Height: 540},
			"SD":    {Width: 1280, Height: 720},
			"WXGA":  {Width: 1366, Height: 768},
			"HD+":   {Width: 1600, Height: 900},
			"FHD":   {Width: 1920, Height: 1080},
			"WQHD":  {Width: 2560, Height: 1440},
			"QHD+":  {Width: 3200, Height: 1800},
			"4K":    {Width: 3840, Height: 2160},
			"5K":    {Width: 5120, Height: 2880},
			"8K":    {Width: 7680, Height: 4320},
			"16K":   {Width: 15360, Height: 8640},
		},
		Vertical: Table{
			"480p":  {Width: 480, Height: 854},
			"720p":  {Width: 720, Height: 1280},
			"1080p": {Width: 1080, Height: 1920},
			"1440p": {Width: 1440, Height: 2560},
			"2160p": {Width: 2160, Height: 3840},
		},
	}
}

// Lookup resolves a tag to its size. Tags are matched case-sensitively, and
// a miss is reported as a configuration error rather than a zero size.
func (t Table) Lookup(tag string) (Size, error) {
	size, ok := t[tag]
	if !ok {
		return Size{}, fmt.Errorf("%w: %q", ErrUnknown, tag)
	}
	return size, nil
}

// Names returns the table's tags in sorted order for diagnostics and shell completion.
func (t Table) Names() []string {
	names := lo.Keys(t)
	sort.Strings(names)
	return names
}
