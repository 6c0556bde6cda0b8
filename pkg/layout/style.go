package layout

import "github.com/miguel-lattuada/ewb/pkg/text"

// DefaultFontSize is the running text size before any tag adjusts it.
const DefaultFontSize = 16

// Style is the running text-rendering context of the layout pass: size,
// weight, and slant. It is not a cascade. Tags mutate the ambient style at
// encounter time and nothing restores it on exit; closing-tag tokens carry
// the explicit inverse adjustments. Replacing this with an enter/exit
// stack would change observable output.
type Style struct {
	Size   int
	Weight text.Weight
	Slant  text.Slant
}

// DefaultStyle is the style in effect at the start of a layout pass.
func DefaultStyle() Style {
	return Style{
		Size:   DefaultFontSize,
		Weight: text.WeightNormal,
		Slant:  text.SlantRoman,
	}
}

// Apply returns the style produced by encountering tag with s as the
// ambient style. Unknown tags leave the style unchanged.
func (s Style) Apply(tag string) Style {
	switch tag {
	case "i":
		s.Slant = text.SlantItalic
	case "/i":
		s.Slant = text.SlantRoman
	case "b":
		s.Weight = text.WeightBold
	case "/b":
		s.Weight = text.WeightNormal
	case "small":
		s.Size -= 2
	case "/small":
		s.Size += 2
	case "big":
		s.Size += 4
	case "/big":
		s.Size -= 4
	case "h1":
		s.Size += 10
	case "/h1":
		s.Size -= 10
	}
	return s
}
