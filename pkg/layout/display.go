package layout

import "github.com/miguel-lattuada/ewb/pkg/text"

// DisplayItem is one positioned, styled text run of the display list.
// X and Y are the top-left corner of the run; Y already accounts for
// baseline alignment within the run's line. Immutable once appended.
type DisplayItem struct {
	X    float64
	Y    float64
	Text string
	Font *text.Font
}

// Visible reports whether the item intersects the viewport band
// [scroll, scroll+viewportHeight). Items entirely above or entirely below
// the band are culled before drawing.
func (d DisplayItem) Visible(scroll, viewportHeight float64) bool {
	if d.Y > scroll+viewportHeight {
		return false
	}
	if d.Y+d.Font.Metrics().Linespace < scroll {
		return false
	}
	return true
}
