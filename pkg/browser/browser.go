// Package browser glues the pipeline together: fetch, normalize, parse,
// layout, and the scrollable draw loop over the resulting display list.
package browser

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/miguel-lattuada/ewb/pkg/html"
	"github.com/miguel-lattuada/ewb/pkg/layout"
	"github.com/miguel-lattuada/ewb/pkg/render"
	"github.com/miguel-lattuada/ewb/pkg/text"
	stdnet "github.com/miguel-lattuada/ewb/std/net"
)

// DefaultScrollStep is how far one scroll event moves the viewport, in
// pixels.
const DefaultScrollStep = 100.0

// Surface is the drawing target for a Browser: a clearable canvas that can
// place styled text runs at absolute coordinates. render.Renderer
// implements it.
type Surface interface {
	Clear()
	DrawText(x, y float64, s string, font *text.Font)
}

// Fetcher retrieves raw markup by URL. The default implementation is
// stdnet.Request; tests substitute in-memory documents.
type Fetcher func(url string) (string, error)

// Options configures a Browser session.
type Options struct {
	Width      float64
	Height     float64
	ScrollStep float64
	Fonts      text.FontConfig
	Fetcher    Fetcher
	Surface    Surface
	Logger     *log.Logger
}

// Browser is one single-threaded browsing session: a viewport over the
// display list of the most recently loaded document. Events (load, scroll)
// are dispatched strictly sequentially by the caller.
type Browser struct {
	width      float64
	height     float64
	scrollStep float64
	fetch      Fetcher
	surface    Surface
	fonts      *text.Cache
	logger     *log.Logger

	display []layout.DisplayItem
	scroll  float64
}

// New creates a browser session. Width, height, and surface are required;
// the fetcher, scroll step, and logger default sensibly.
func New(opts Options) *Browser {
	if opts.Fetcher == nil {
		opts.Fetcher = stdnet.Request
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = DefaultScrollStep
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Browser{
		width:      opts.Width,
		height:     opts.Height,
		scrollStep: opts.ScrollStep,
		fetch:      opts.Fetcher,
		surface:    opts.Surface,
		fonts:      text.NewCache(opts.Fonts),
		logger:     opts.Logger,
	}
}

// Load runs the full pipeline for url: fetch, normalize, parse, layout,
// then replaces the display list and redraws. An error at any stage aborts
// the load before the display list is touched; the previous document stays
// valid and displayed. There are no partial results.
func (b *Browser) Load(url string) error {
	b.logger.Info("loading", "url", url)

	raw, err := b.fetch(url)
	if err != nil {
		return fmt.Errorf("loading %s: %w", url, err)
	}

	normalized, err := html.Normalize(raw)
	if err != nil {
		return fmt.Errorf("loading %s: %w", url, err)
	}

	doc, err := html.Parse(normalized)
	if err != nil {
		return fmt.Errorf("loading %s: %w", url, err)
	}

	display, err := layout.NewEngine(b.width, b.fonts).Layout(doc.Root)
	if err != nil {
		return fmt.Errorf("loading %s: %w", url, err)
	}

	b.display = display
	b.scroll = 0
	b.logger.Debug("layout complete", "items", len(display))
	b.Draw()
	return nil
}

// Draw clears the surface and issues draw commands for the display-list
// entries intersecting the visible band. Pure culling: no layout or
// measurement happens here, so scrolling stays cheap regardless of
// document length.
func (b *Browser) Draw() {
	b.surface.Clear()
	for _, item := range b.display {
		if !item.Visible(b.scroll, b.height) {
			continue
		}
		b.surface.DrawText(item.X, item.Y-b.scroll, item.Text, item.Font)
	}
}

// ScrollDown advances the scroll offset by one step and redraws. The
// offset has no upper clamp: scrolling past the document shows a blank
// viewport.
func (b *Browser) ScrollDown() {
	b.scroll += b.scrollStep
	b.Draw()
}

// ScrollUp moves the viewport back by one step, clamped at the top of the
// document, and redraws.
func (b *Browser) ScrollUp() {
	b.scroll -= b.scrollStep
	if b.scroll < 0 {
		b.scroll = 0
	}
	b.Draw()
}

// Scroll returns the current scroll offset.
func (b *Browser) Scroll() float64 { return b.scroll }

// SetScroll positions the viewport at an absolute offset (clamped at zero)
// and redraws. Used by the headless snapshot command.
func (b *Browser) SetScroll(offset float64) {
	if offset < 0 {
		offset = 0
	}
	b.scroll = offset
	b.Draw()
}

// Display returns the current display list. The slice is owned by the
// browser and replaced wholesale on the next successful load.
func (b *Browser) Display() []layout.DisplayItem { return b.display }

// interface check
var _ Surface = (*render.Renderer)(nil)
