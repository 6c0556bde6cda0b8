package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"github.com/miguel-lattuada/ewb/internal/config"
	"github.com/miguel-lattuada/ewb/pkg/browser"
	"github.com/miguel-lattuada/ewb/pkg/render"
)

// newOpenCmd builds the windowed browser command. The window hosts a URL
// bar, the rendered viewport, and a status line; Down/Up keys scroll.
func newOpenCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "open [url]",
		Short: "Open a document in a browser window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			width, height := cfg.Viewport.Width, cfg.Viewport.Height

			a := app.New()
			w := a.NewWindow("ewb")
			w.Resize(fyne.NewSize(float32(width), float32(height)+80))

			renderer := render.NewRenderer(width, height)
			renderer.Clear()

			canvasImg := canvas.NewImageFromImage(renderer.Image())
			canvasImg.FillMode = canvas.ImageFillOriginal

			status := widget.NewLabel("Enter a URL and press Enter")

			b := browser.New(browser.Options{
				Width:      float64(width),
				Height:     float64(height),
				ScrollStep: cfg.Scroll.Step,
				Fonts:      cfg.FontConfig(),
				Surface:    renderer,
				Logger:     logger,
			})

			refresh := func() {
				canvasImg.Image = renderer.Image()
				canvasImg.Refresh()
			}

			load := func(url string) {
				if err := b.Load(url); err != nil {
					logger.Error("load failed", "url", url, "err", err)
					status.SetText("Error: " + err.Error())
					return
				}
				refresh()
				status.SetText(url)
				w.SetTitle(fmt.Sprintf("ewb - %s", url))
			}

			urlEntry := widget.NewEntry()
			urlEntry.SetPlaceHolder("http://example.com")
			urlEntry.OnSubmitted = load

			w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
				switch ev.Name {
				case fyne.KeyDown:
					b.ScrollDown()
					refresh()
				case fyne.KeyUp:
					b.ScrollUp()
					refresh()
				}
			})

			content := container.NewBorder(urlEntry, status, nil, nil, canvasImg)
			w.SetContent(content)

			if len(args) == 1 {
				urlEntry.SetText(args[0])
				load(args[0])
			} else {
				w.Canvas().Focus(urlEntry)
			}

			w.ShowAndRun()
			return nil
		},
	}
}
