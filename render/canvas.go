// Package render paints menu frames into shared memory pixel buffers
package render

import (
	"image"
	"image/color"
)

// Canvas is a draw target over a raw XRGB8888 pixel buffer
// The byte order is little endian, so each pixel is stored B, G, R, X
// It implements draw.Image which lets font.Drawer render straight into
// compositor-visible memory
type Canvas struct {
	pix    []byte
	width  int
	height int
	stride int
}

// NewCanvas wraps pix, which must hold at least height*stride bytes
func NewCanvas(pix []byte, width, height, stride int) *Canvas {
	return &Canvas{pix: pix, width: width, height: height, stride: stride}
}

func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	o := y*c.stride + x*4
	return color.RGBA{
		B: c.pix[o],
		G: c.pix[o+1],
		R: c.pix[o+2],
		A: 0xff,
	}
}

func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	r, g, b, _ := col.RGBA()
	o := y*c.stride + x*4
	c.pix[o] = byte(b >> 8)
	c.pix[o+1] = byte(g >> 8)
	c.pix[o+2] = byte(r >> 8)
	c.pix[o+3] = 0xff
}

// Fill covers the whole canvas with one color
// Writes the first row pixel by pixel, then copies it down
func (c *Canvas) Fill(col color.RGBA) {
	if c.height == 0 || c.width == 0 {
		return
	}
	row := c.pix[:c.width*4]
	for x := 0; x < c.width; x++ {
		o := x * 4
		row[o] = col.B
		row[o+1] = col.G
		row[o+2] = col.R
		row[o+3] = 0xff
	}
	for y := 1; y < c.height; y++ {
		copy(c.pix[y*c.stride:y*c.stride+c.width*4], row)
	}
}
