package app

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// hud draws text overlays into the staged RGBA frame, after the 3D pass
// and before the frame is handed to the HAL.
type hud struct {
	width      int
	height     int
	font       tinyfont.Fonter
	fontHeight int16
}

func newHUD(width, height int) *hud {
	return &hud{
		width:      width,
		height:     height,
		font:       &tinyfont.TomThumb,
		fontHeight: 6,
	}
}

func (h *hud) drawText(dst []byte, x, y int, s string, c color.RGBA) {
	d := &bufDisplayer{buf: dst, width: h.width, height: h.height}
	tinyfont.WriteLine(d, h.font, int16(x), int16(y)+h.fontHeight, s, c)
}

// bufDisplayer adapts a tightly packed RGBA slice to the Displayer shape
// tinyfont draws through.
type bufDisplayer struct {
	buf    []byte
	width  int
	height int
}

func (d *bufDisplayer) Size() (x, y int16) {
	return int16(d.width), int16(d.height)
}

func (d *bufDisplayer) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.width || iy < 0 || iy >= d.height {
		return
	}

	off := (iy*d.width + ix) * 4
	if off < 0 || off+3 >= len(d.buf) {
		return
	}
	d.buf[off] = c.R
	d.buf[off+1] = c.G
	d.buf[off+2] = c.B
	d.buf[off+3] = 0xFF
}

func (d *bufDisplayer) Display() error { return nil }
