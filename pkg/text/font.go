package text

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Weight is the font weight axis of a style triple.
type Weight string

const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"
)

// Slant is the font slant axis of a style triple.
type Slant string

const (
	SlantRoman  Slant = "roman"
	SlantItalic Slant = "italic"
)

// Metrics are the vertical measurements of a font: distance from baseline
// to the top of the tallest glyph, baseline to the bottom of the deepest
// glyph, and the recommended baseline-to-baseline distance.
type Metrics struct {
	Ascent    float64
	Descent   float64
	Linespace float64
}

// Font is a measurable, drawable font handle for one (size, weight, slant)
// triple. Handles are owned by the Cache; callers borrow them and must not
// retain them across cache replacement.
type Font struct {
	size    int
	weight  Weight
	slant   Slant
	face    font.Face
	metrics Metrics
}

func (f *Font) Size() int      { return f.size }
func (f *Font) Weight() Weight { return f.weight }
func (f *Font) Slant() Slant   { return f.slant }

// Face returns the underlying face for glyph rendering.
func (f *Font) Face() font.Face { return f.face }

// Measure returns the advance width of s in pixels.
func (f *Font) Measure(s string) float64 {
	return fixedToFloat(font.MeasureString(f.face, s))
}

// Metrics returns the font's vertical metrics.
func (f *Font) Metrics() Metrics { return f.metrics }

// FontConfig names the font files backing each weight/slant combination.
// Empty fields fall back to the bundled Go fonts, so a zero FontConfig is
// fully usable without any files on disk.
type FontConfig struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// source returns the raw TTF bytes for one weight/slant combination.
func (fc FontConfig) source(weight Weight, slant Slant) ([]byte, error) {
	var path string
	var fallback []byte
	switch {
	case weight == WeightBold && slant == SlantItalic:
		path, fallback = fc.BoldItalic, gobolditalic.TTF
	case weight == WeightBold:
		path, fallback = fc.Bold, gobold.TTF
	case slant == SlantItalic:
		path, fallback = fc.Italic, goitalic.TTF
	default:
		path, fallback = fc.Regular, goregular.TTF
	}
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file %s: %w", path, err)
	}
	return data, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// newFont constructs a Font for the given triple from raw TTF bytes.
func newFont(data []byte, size int, weight Weight, slant Slant) (*Font, error) {
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font for %d/%s/%s: %w", size, weight, slant, err)
	}
	face := truetype.NewFace(parsed, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	m := face.Metrics()
	return &Font{
		size:   size,
		weight: weight,
		slant:  slant,
		face:   face,
		metrics: Metrics{
			Ascent:    fixedToFloat(m.Ascent),
			Descent:   fixedToFloat(m.Descent),
			Linespace: fixedToFloat(m.Height),
		},
	}, nil
}
