// Copyright (c) 2025 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml"
)

// Default config file location relative to the xdg config dirs
const DefaultPath = "gayshell/config.toml"

type Config struct {
	// Size of the menu font in points
	FontSize float64 `envconfig:"FONT_SIZE,omitempty" toml:"font_size,omitempty"`
	// Empty space in pixels between the surface edges and the menu rows
	MenuPadding float64 `envconfig:"MENU_PADDING,omitempty" toml:"menu_padding,omitempty"`
	// Size of the pointer cursor images in pixels
	CursorSize int `envconfig:"CURSOR_SIZE,omitempty" toml:"cursor_size,omitempty"`
	// Name of the cursor shown over the background ("pointer", "left_ptr", ...)
	CursorName string `envconfig:"CURSOR_NAME,omitempty" toml:"cursor_name,omitempty"`
	// Where the compositor should place its panel: top, bottom, left or right
	PanelPosition string `envconfig:"PANEL_POSITION,omitempty" toml:"panel_position,omitempty"`
	// Colors as #rrggbb strings
	BackgroundColor string `envconfig:"BACKGROUND_COLOR,omitempty" toml:"background_color,omitempty"`
	TextColor       string `envconfig:"TEXT_COLOR,omitempty" toml:"text_color,omitempty"`
	HighlightColor  string `envconfig:"HIGHLIGHT_COLOR,omitempty" toml:"highlight_color,omitempty"`
}

func Default() Config {
	return Config{
		FontSize:        20,
		MenuPadding:     10,
		CursorSize:      32,
		CursorName:      "pointer",
		PanelPosition:   "top",
		BackgroundColor: "#808080",
		TextColor:       "#000000",
		HighlightColor:  "#00ffff",
	}
}

// Load reads the config from the given path
// An empty path means "search the xdg config dirs", and a config file that
// doesn't exist anywhere just yields the defaults
// A file that exists but doesn't parse or validate is an error
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(DefaultPath)
		if err != nil {
			conf := Default()
			return &conf, nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	conf := Default()
	if err = toml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err = conf.Validate(); err != nil {
		return nil, fmt.Errorf("bad config file %s: %w", path, err)
	}
	return &conf, nil
}

func (c *Config) Validate() error {
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %v", c.FontSize)
	}
	if c.MenuPadding < 0 {
		return fmt.Errorf("menu_padding must not be negative, got %v", c.MenuPadding)
	}
	if c.CursorSize <= 0 {
		return fmt.Errorf("cursor_size must be positive, got %v", c.CursorSize)
	}
	switch c.PanelPosition {
	case "top", "bottom", "left", "right":
	default:
		return fmt.Errorf("unknown panel_position %q", c.PanelPosition)
	}
	for _, raw := range []string{c.BackgroundColor, c.TextColor, c.HighlightColor} {
		if _, err := ParseColor(raw); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor turns a #rrggbb string into a fully opaque RGBA color
func ParseColor(raw string) (color.RGBA, error) {
	var r, g, b uint8
	if n, err := fmt.Sscanf(raw, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 || len(raw) != 7 {
		return color.RGBA{}, fmt.Errorf("color %q is not of the form #rrggbb", raw)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
