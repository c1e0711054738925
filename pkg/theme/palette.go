package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/errors"
)

// Palette is the color set a theme draws from. Palettes are plain data
// and can be loaded from YAML files, so applications can restyle the
// toolkit without code.
type Palette struct {
	Background   display.Color `yaml:"background"`
	Surface      display.Color `yaml:"surface"`
	Border       display.Color `yaml:"border"`
	Text         display.Color `yaml:"text"`
	TextDisabled display.Color `yaml:"text_disabled"`
	Primary      display.Color `yaml:"primary"`
	OnPrimary    display.Color `yaml:"on_primary"`
	Danger       display.Color `yaml:"danger"`
	Hover        display.Color `yaml:"hover"`
	Pressed      display.Color `yaml:"pressed"`
	Focus        display.Color `yaml:"focus"`
}

// DefaultPalette returns the built-in slate palette.
func DefaultPalette() Palette {
	return Palette{
		Background:   display.RGB(0xF6, 0xF8, 0xFA),
		Surface:      display.RGB(0xFF, 0xFF, 0xFF),
		Border:       display.RGB(0xD1, 0xD5, 0xDA),
		Text:         display.RGB(0x24, 0x29, 0x2E),
		TextDisabled: display.RGB(0x95, 0x9D, 0xA5),
		Primary:      display.RGB(0x03, 0x66, 0xD6),
		OnPrimary:    display.RGB(0xFF, 0xFF, 0xFF),
		Danger:       display.RGB(0xD7, 0x3A, 0x49),
		Hover:        display.RGB(0xE9, 0xEC, 0xEF),
		Pressed:      display.RGB(0xD9, 0xDE, 0xE3),
		Focus:        display.RGBA8(0x03, 0x66, 0xD6, 0x66),
	}
}

// ParsePalette decodes a YAML palette. Colors missing from the document
// keep their value from the default palette.
func ParsePalette(data []byte) (Palette, error) {
	p := DefaultPalette()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("failed to parse palette: %w", err)
	}
	return p, nil
}

// LoadPalette reads a YAML palette file.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, &errors.LoftError{
			Op:   "theme.LoadPalette",
			Kind: errors.KindTheme,
			Err:  err,
		}
	}
	p, err := ParsePalette(data)
	if err != nil {
		return Palette{}, &errors.LoftError{
			Op:   "theme.LoadPalette",
			Kind: errors.KindTheme,
			Err:  err,
		}
	}
	return p, nil
}
