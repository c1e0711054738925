package theme

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-loft/loft/pkg/errors"
	"github.com/go-loft/loft/pkg/geometry"
)

// DefaultFontSize is the UI font size in logical points.
const DefaultFontSize = 13

// LoadUIFont returns the regular interface font at the given point size,
// scaled by the HiDPI factor.
func LoadUIFont(points, scale float64) (font.Face, error) {
	return loadFace("theme.LoadUIFont", goregular.TTF, points*scale)
}

// LoadSemiboldUIFont returns the heavier interface font variant at the
// given point size, scaled by the HiDPI factor.
func LoadSemiboldUIFont(points, scale float64) (font.Face, error) {
	return loadFace("theme.LoadSemiboldUIFont", gomedium.TTF, points*scale)
}

func loadFace(op string, ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, &errors.LoftError{Op: op, Kind: errors.KindTheme, Err: err}
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &errors.LoftError{Op: op, Kind: errors.KindTheme, Err: err}
	}
	return face, nil
}

// MeasureText returns the advance width and line height of s in the given
// face, in logical pixels.
func MeasureText(face font.Face, s string) geometry.Size {
	if face == nil {
		return geometry.Size{}
	}
	metrics := face.Metrics()
	return geometry.Size{
		Width:  fixedToFloat(font.MeasureString(face, s)),
		Height: fixedToFloat(metrics.Height),
	}
}

// Ascent returns the baseline offset from the top of a line of text.
func Ascent(face font.Face) float64 {
	if face == nil {
		return 0
	}
	return fixedToFloat(face.Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
