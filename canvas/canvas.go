/*
NAME
  canvas.go

DESCRIPTION
  canvas.go provides Bitmap, an RGBA8888 pixel buffer
  satisfying image.Image and draw.Image, and Canvas, the small set of
  drawing primitives (draw_rect/draw_bitmap/fill_line) the region and
  DRCS renderers composite onto it. Blending is classic non-
  premultiplied SRC_OVER (out = src*src_a + dst*(1-src_a)), performed
  in the blend helpers rather than assumed pre-applied, matching the
  source's explicit non-premultiplied-alpha contract.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package canvas provides the RGBA8888 bitmap buffer and
// SRC_OVER compositing primitives the render package draws caption
// regions and DRCS glyphs onto.
package canvas

import (
	"image"
	"image/color"

	"github.com/ausocean/captionvid/caption"
)

const align = 32

// Bitmap is a heap-allocated RGBA8888 buffer whose stride is always
// >= 4*width (its start is not forced onto a 32-byte boundary),
// satisfying image.Image and draw.Image so it composes with
// golang.org/x/image/draw and other image/draw-based tooling.
type Bitmap struct {
	W, H   int
	Stride int
	// raw is the full over-allocated buffer; Pix is its first
	// Stride*H bytes, which the pixel data occupies.
	raw []byte
	Pix []byte
}

// NewBitmap allocates a transparent w x h bitmap.
func NewBitmap(w, h int) *Bitmap {
	if w <= 0 || h <= 0 {
		return &Bitmap{}
	}
	stride := w * 4
	size := stride * h
	// The buffer is over-allocated by one alignment unit of slack, but
	// Pix is sliced from offset 0, so its start is not forced onto a
	// 32-byte boundary; it has whatever alignment the allocator gives.
	raw := make([]byte, size+align)
	return &Bitmap{W: w, H: h, Stride: stride, raw: raw, Pix: raw[:size]}
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.W, b.H) }

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return color.RGBA{}
	}
	i := y*b.Stride + x*4
	return color.RGBA{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// Set implements draw.Image.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	r, g, bl, a := c.RGBA()
	i := y*b.Stride + x*4
	b.Pix[i] = uint8(r >> 8)
	b.Pix[i+1] = uint8(g >> 8)
	b.Pix[i+2] = uint8(bl >> 8)
	b.Pix[i+3] = uint8(a >> 8)
}

// SetRGBA8 writes c at (x,y) without the color.Color interface
// indirection, used by the hot paths in the DRCS and region
// renderers.
func (b *Bitmap) SetRGBA8(x, y int, c caption.RGBA8) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	i := y*b.Stride + x*4
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = c.R, c.G, c.B, c.A
}

// GetRGBA8 reads the pixel at (x,y); out-of-bounds reads return
// transparent black.
func (b *Bitmap) GetRGBA8(x, y int) caption.RGBA8 {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return caption.RGBA8{}
	}
	i := y*b.Stride + x*4
	return caption.RGBA8{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// Canvas draws onto a target Bitmap using SRC_OVER compositing.
type Canvas struct {
	Dst *Bitmap
}

// New returns a Canvas drawing onto dst.
func New(dst *Bitmap) *Canvas { return &Canvas{Dst: dst} }

// blend computes SRC_OVER of src atop dst, both non-premultiplied.
func blend(src, dst caption.RGBA8) caption.RGBA8 {
	if src.A == 0xFF {
		return src
	}
	if src.A == 0 {
		return dst
	}
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		return caption.RGBA8{}
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(v + 0.5)
	}
	return caption.RGBA8{mix(src.R, dst.R), mix(src.G, dst.G), mix(src.B, dst.B), uint8(oa*255 + 0.5)}
}

// DrawRect SRC_OVER-fills rect with color, clipped to the destination
// bounds.
func (c *Canvas) DrawRect(color caption.RGBA8, rect image.Rectangle) {
	r := rect.Intersect(c.Dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		c.FillLine(y, r.Min.X, r.Max.X, color)
	}
}

// FillLine SRC_OVER-fills the horizontal run [x0,x1) on row y.
func (c *Canvas) FillLine(y, x0, x1 int, color caption.RGBA8) {
	if y < 0 || y >= c.Dst.H {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > c.Dst.W {
		x1 = c.Dst.W
	}
	for x := x0; x < x1; x++ {
		if color.A == 0xFF {
			c.Dst.SetRGBA8(x, y, color)
			continue
		}
		c.Dst.SetRGBA8(x, y, blend(color, c.Dst.GetRGBA8(x, y)))
	}
}

// DrawBitmap composites src onto the destination at (x,y), clipped to
// the destination bounds. A source row that is fully opaque and lies
// wholly inside the destination horizontally is copied directly
// instead of blended pixel by pixel.
func (c *Canvas) DrawBitmap(src *Bitmap, x, y int) {
	if src == nil {
		return
	}
	for sy := 0; sy < src.H; sy++ {
		dy := y + sy
		if dy < 0 || dy >= c.Dst.H {
			continue
		}
		opaqueRow := true
		for sx := 0; sx < src.W; sx++ {
			if src.GetRGBA8(sx, sy).A != 0xFF {
				opaqueRow = false
				break
			}
		}
		if opaqueRow && x >= 0 && x+src.W <= c.Dst.W {
			si := sy * src.Stride
			di := dy*c.Dst.Stride + x*4
			copy(c.Dst.Pix[di:di+src.W*4], src.Pix[si:si+src.W*4])
			continue
		}
		for sx := 0; sx < src.W; sx++ {
			dx := x + sx
			if dx < 0 || dx >= c.Dst.W {
				continue
			}
			sp := src.GetRGBA8(sx, sy)
			if sp.A == 0 {
				continue
			}
			c.Dst.SetRGBA8(dx, dy, blend(sp, c.Dst.GetRGBA8(dx, dy)))
		}
	}
}
