package cli

import (
	"github.com/spf13/cobra"

	"github.com/miguel-lattuada/ewb/internal/config"
	"github.com/miguel-lattuada/ewb/pkg/browser"
	"github.com/miguel-lattuada/ewb/pkg/render"
)

// newShotCmd builds the headless snapshot command: load a document, scroll
// to an offset, and write the viewport to a PNG file.
func newShotCmd(configPath *string) *cobra.Command {
	var (
		output string
		scroll float64
	)

	cmd := &cobra.Command{
		Use:   "shot <url>",
		Short: "Render a document viewport to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			url := args[0]

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			width, height := cfg.Viewport.Width, cfg.Viewport.Height

			renderer := render.NewRenderer(width, height)
			b := browser.New(browser.Options{
				Width:      float64(width),
				Height:     float64(height),
				ScrollStep: cfg.Scroll.Step,
				Fonts:      cfg.FontConfig(),
				Surface:    renderer,
				Logger:     logger,
			})

			if err := b.Load(url); err != nil {
				return err
			}
			if scroll != 0 {
				b.SetScroll(scroll)
			}

			if err := renderer.SavePNG(output); err != nil {
				return err
			}
			logger.Info("saved", "path", output, "items", len(b.Display()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "output.png", "output PNG file path")
	cmd.Flags().Float64Var(&scroll, "scroll", 0, "scroll offset in pixels")
	return cmd
}
