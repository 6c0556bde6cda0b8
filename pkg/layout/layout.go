package layout

import (
	"fmt"
	"strings"

	"github.com/miguel-lattuada/ewb/pkg/html"
	"github.com/miguel-lattuada/ewb/pkg/text"
)

// Horizontal and vertical step units, in pixels. HStep doubles as the left
// and right margin; VStep is the paragraph gap and the initial vertical
// offset.
const (
	HStep = 13.0
	VStep = 18.0
)

// lineHeight is the factor applied to ascent and descent when computing
// baseline placement. Fixed, not configurable.
const lineHeight = 1.25

// word is one word box pending on the current line: its x position, text,
// and the font it was measured with. Created at placement, consumed at
// flush, never mutated.
type word struct {
	x    float64
	text string
	font *text.Font
}

// Engine lays out a flattened document token stream against a fixed
// viewport width, producing a display list. An Engine performs a single
// pass; create a new one per layout.
type Engine struct {
	width float64
	fonts *text.Cache

	style   Style
	cursorX float64
	cursorY float64
	line    []word
	display []DisplayItem
}

// NewEngine creates a layout engine for the given viewport width, drawing
// font handles from fonts.
func NewEngine(width float64, fonts *text.Cache) *Engine {
	return &Engine{
		width:   width,
		fonts:   fonts,
		style:   DefaultStyle(),
		cursorX: HStep,
		cursorY: VStep,
	}
}

// Layout walks the document-order token stream under root and returns the
// display list. A font acquisition failure aborts the whole pass: a
// partially laid out document is not a usable result.
func (e *Engine) Layout(root *html.Node) ([]DisplayItem, error) {
	for _, tok := range html.Flatten(root) {
		if err := e.token(tok); err != nil {
			return nil, err
		}
	}
	// The trailing line is flushed unconditionally; an unflushed tail
	// would silently drop the last words of the document.
	e.flush()
	return e.display, nil
}

func (e *Engine) token(tok html.Token) error {
	switch tok.Type {
	case html.TextToken:
		font, err := e.font()
		if err != nil {
			return err
		}
		for _, w := range strings.Fields(tok.Text) {
			e.placeWord(w, font)
		}
	case html.TagToken:
		e.style = e.style.Apply(tok.Tag)
		switch tok.Tag {
		case "p", "/p":
			// Paragraph boundary: finish the line, then open a gap of
			// one vertical step beyond the flush position.
			e.flush()
			e.cursorY += VStep
		case "br", "/h1":
			e.flush()
		}
	}
	return nil
}

// font resolves the current running style to a cached font handle.
func (e *Engine) font() (*text.Font, error) {
	f, err := e.fonts.Font(e.style.Size, e.style.Weight, e.style.Slant)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return f, nil
}

// placeWord appends one word to the current line, wrapping first if it
// would overflow the right margin. The wrap check uses the pre-placement
// cursor: the overflowing word becomes the first word of the new line.
// Words are never split; a word wider than the viewport still gets placed.
func (e *Engine) placeWord(s string, font *text.Font) {
	w := font.Measure(s)
	if e.cursorX+w > e.width-HStep {
		e.flush()
	}
	e.line = append(e.line, word{x: e.cursorX, text: s, font: font})
	e.cursorX += w + font.Measure(" ")
}

// flush finalizes the pending line: all words are aligned to a shared
// baseline computed from the tallest ascent, emitted as display items, and
// the cursor advances below the deepest descent. After flush the line is
// empty and cursorX is back at the left margin.
func (e *Engine) flush() {
	if len(e.line) == 0 {
		return
	}

	var maxAscent float64
	for _, w := range e.line {
		if a := w.font.Metrics().Ascent; a > maxAscent {
			maxAscent = a
		}
	}
	baseline := e.cursorY + lineHeight*maxAscent

	for _, w := range e.line {
		e.display = append(e.display, DisplayItem{
			X:    w.x,
			Y:    baseline - w.font.Metrics().Ascent,
			Text: w.text,
			Font: w.font,
		})
	}

	var maxDescent float64
	for _, w := range e.line {
		if d := w.font.Metrics().Descent; d > maxDescent {
			maxDescent = d
		}
	}
	e.cursorY = baseline + lineHeight*maxDescent
	e.cursorX = HStep
	e.line = e.line[:0]
}
