package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/mstarongithub/gayshell/config"
	"github.com/mstarongithub/gayshell/menu"
)

// Painter draws menu frames: background fill plus one text row per entry,
// with the row under the pointer highlighted
// One Painter is shared by all backgrounds since font and colors are global
type Painter struct {
	face       font.Face
	padding    float64
	background color.RGBA
	text       color.RGBA
	highlight  color.RGBA
}

// NewPainter parses the embedded Go Regular face at the configured size
// and resolves the configured colors
func NewPainter(conf *config.Config) (*Painter, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    conf.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build font face: %w", err)
	}
	p := &Painter{face: face, padding: conf.MenuPadding}
	if p.background, err = config.ParseColor(conf.BackgroundColor); err != nil {
		return nil, err
	}
	if p.text, err = config.ParseColor(conf.TextColor); err != nil {
		return nil, err
	}
	if p.highlight, err = config.ParseColor(conf.HighlightColor); err != nil {
		return nil, err
	}
	return p, nil
}

// RowMetrics reports the row height and baseline offset of the menu font in pixels
func (p *Painter) RowMetrics() (rowHeight, ascent float64) {
	metrics := p.face.Metrics()
	return fixedToFloat(metrics.Height), fixedToFloat(metrics.Ascent)
}

// Paint renders one full frame of the given menu state into the canvas
// cursorY is the pointer's surface y coordinate, negative when the pointer
// is elsewhere
// The caller is expected to have clamped the scroll offset already
func (p *Painter) Paint(canvas *Canvas, model *menu.Model, cursorY float64) {
	canvas.Fill(p.background)

	rowHeight, ascent := p.RowMetrics()
	surfaceHeight := float64(canvas.Height())
	drawer := font.Drawer{Dst: canvas, Face: p.face}

	for i := 0; i < model.Len(); i++ {
		top := model.RowTop(i)
		// Skip rows fully outside the surface
		if top+rowHeight < 0 || top > surfaceHeight {
			continue
		}
		col := p.text
		if cursorY > top && cursorY <= top+rowHeight {
			col = p.highlight
		}
		drawer.Src = image.NewUniform(col)
		drawer.Dot = fixed.Point26_6{
			X: floatToFixed(p.padding),
			Y: floatToFixed(top + ascent),
		}
		drawer.DrawString(model.Entry(i).Name)
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
