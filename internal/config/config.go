// Package config loads browser settings from an optional TOML file.
// Every field has a compiled-in default, so no file is required.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/miguel-lattuada/ewb/pkg/text"
)

// Config holds the externally tunable constants of the engine: viewport
// geometry, scroll step, and font file overrides.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	Scroll   Scroll   `toml:"scroll"`
	Fonts    Fonts    `toml:"fonts"`
}

type Viewport struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Scroll struct {
	Step float64 `toml:"step"`
}

type Fonts struct {
	Regular    string `toml:"regular"`
	Bold       string `toml:"bold"`
	Italic     string `toml:"italic"`
	BoldItalic string `toml:"bold_italic"`
}

// Default returns the built-in configuration: an 800x600 viewport, a
// 100px scroll step, and the bundled fonts.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 800, Height: 600},
		Scroll:   Scroll{Step: 100},
	}
}

// Load reads path and overlays it on the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		return Config{}, fmt.Errorf("config %s: viewport must be positive, got %dx%d",
			path, cfg.Viewport.Width, cfg.Viewport.Height)
	}
	return cfg, nil
}

// FontConfig converts the font overrides to the text package's form.
func (c Config) FontConfig() text.FontConfig {
	return text.FontConfig{
		Regular:    c.Fonts.Regular,
		Bold:       c.Fonts.Bold,
		Italic:     c.Fonts.Italic,
		BoldItalic: c.Fonts.BoldItalic,
	}
}
