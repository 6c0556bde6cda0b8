// Package render draws positioned text runs onto a raster surface. It
// performs no measurement and no layout: the display list arrives fully
// positioned and styled.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/miguel-lattuada/ewb/pkg/text"
)

// Renderer rasterizes draw commands into an RGBA image.
type Renderer struct {
	dc *gg.Context
}

// NewRenderer creates a renderer with a blank surface of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{dc: gg.NewContext(width, height)}
}

// Clear paints the whole surface white.
func (r *Renderer) Clear() {
	r.dc.SetRGB(1, 1, 1)
	r.dc.Clear()
}

// DrawText draws s in black with its top-left corner at (x, y). gg anchors
// strings at the baseline, so the y coordinate is shifted down by the
// font's ascent.
func (r *Renderer) DrawText(x, y float64, s string, font *text.Font) {
	r.dc.SetFontFace(font.Face())
	r.dc.SetRGB(0, 0, 0)
	r.dc.DrawString(s, x, y+font.Metrics().Ascent)
}

// Image returns the current surface contents.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the current surface to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}
