package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func TestDefaultsAreValid(t *testing.T) {
	conf := Default()
	if err := conf.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
	if conf.FontSize != 20 || conf.MenuPadding != 10 {
		t.Errorf("unexpected menu defaults: font %v, padding %v", conf.FontSize, conf.MenuPadding)
	}
	if conf.CursorName != "pointer" || conf.CursorSize != 32 {
		t.Errorf("unexpected cursor defaults: %q at %d", conf.CursorName, conf.CursorSize)
	}
	if conf.PanelPosition != "top" {
		t.Errorf("unexpected panel default %q", conf.PanelPosition)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	// Point the search at empty config dirs
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	defer xdg.Reload()

	conf, err := Load("")
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if *conf != Default() {
		t.Errorf("got %+v instead of the defaults", *conf)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
font_size = 14.5
panel_position = "bottom"
highlight_color = "#ff00ff"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if conf.FontSize != 14.5 {
		t.Errorf("font_size not applied: %v", conf.FontSize)
	}
	if conf.PanelPosition != "bottom" {
		t.Errorf("panel_position not applied: %q", conf.PanelPosition)
	}
	if conf.HighlightColor != "#ff00ff" {
		t.Errorf("highlight_color not applied: %q", conf.HighlightColor)
	}
	// Untouched keys keep their defaults
	if conf.MenuPadding != 10 {
		t.Errorf("menu_padding lost its default: %v", conf.MenuPadding)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, content := range map[string]string{
		"negative font":  `font_size = -3.0`,
		"bad position":   `panel_position = "sideways"`,
		"bad color":      `text_color = "red"`,
		"alpha color":    `text_color = "#11223344"`,
		"malformed toml": `font_size = = 3`,
	} {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#00ffff")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got != (color.RGBA{G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("got %v", got)
	}

	for _, bad := range []string{"", "#fff", "00ffff", "#gggggg", "#00ffff00"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) accepted garbage", bad)
		}
	}
}
