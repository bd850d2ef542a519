/*
NAME
  basic.go

DESCRIPTION
  basic.go implements BasicTextRenderer, a TextRenderer built on
  golang.org/x/image/font/basicfont and golang.org/x/image/font's
  Drawer, for callers that don't need platform-accurate text shaping
  (headless rendering, tests, the capshot CLI). Glyph fill colour is
  applied by drawing the fixed-width bitmap face through an
  image.Uniform source; a stroke is drawn the same way before the
  glyph, and an underline is painted directly onto the canvas after
  it.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package font

import (
	"image"
	"image/color"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ausocean/captionvid/canvas"
	"github.com/ausocean/captionvid/caption"
)

// BasicTextRenderer draws every code point using
// basicfont.Face7x13, ignoring family/language selection (there is
// only ever one face); it exists so the renderer core and region
// renderer can be exercised end to end without a platform font
// backend.
type BasicTextRenderer struct {
	face *basicfont.Face
}

// NewBasicTextRenderer returns a BasicTextRenderer using
// basicfont.Face7x13.
func NewBasicTextRenderer() *BasicTextRenderer {
	return &BasicTextRenderer{face: basicfont.Face7x13}
}

func (r *BasicTextRenderer) SetLanguage(uint32)          {}
func (r *BasicTextRenderer) SetFontFamily(_ []string)    {}

type basicDrawContext struct {
	bmp *canvas.Bitmap
}

func (r *BasicTextRenderer) BeginDraw(bmp *canvas.Bitmap) DrawContext {
	return &basicDrawContext{bmp: bmp}
}

func (r *BasicTextRenderer) EndDraw(DrawContext) {}

// DrawChar rasterizes codepoint at (x,y) in the fixed 7x13 face,
// filled with color, and paints the underline segment if supplied.
// The glyph is not scaled to cellW x cellH; cellH only places the
// baseline 3 pixels above the cell's bottom edge.
// Stroke is approximated by drawing the glyph a second time in
// strokeColor offset by strokeWidth in the four cardinal directions
// before the main glyph, the same dilation technique the DRCS
// renderer uses for its stroke border.
func (r *BasicTextRenderer) DrawChar(ctxIface DrawContext, x, y int, codepoint rune, style caption.CharStyle,
	col, strokeColor caption.RGBA8, strokeWidth float32, cellW, cellH int,
	underline *UnderlineInfo, policy FallbackPolicy) error {
	ctx, ok := ctxIface.(*basicDrawContext)
	if !ok || ctx.bmp == nil {
		return ErrFontNotFound
	}

	if style&caption.CharStyleStroke != 0 && strokeWidth > 0 {
		sw := int(strokeWidth + 0.5)
		if sw < 1 {
			sw = 1
		}
		for _, off := range [][2]int{{sw, 0}, {-sw, 0}, {0, sw}, {0, -sw}} {
			r.drawGlyph(ctx.bmp, x+off[0], y+off[1], codepoint, strokeColor, cellW, cellH)
		}
	}
	r.drawGlyph(ctx.bmp, x, y, codepoint, col, cellW, cellH)

	if underline != nil {
		cv := canvas.New(ctx.bmp)
		cv.FillLine(underline.Y, underline.X, underline.X+underline.Width, col)
	}
	return nil
}

// drawGlyph draws one glyph of basicfont.Face7x13 at (x,y) tinted to
// color, using golang.org/x/image/font's Drawer over an image.Uniform
// source so the monochrome bitmap face picks up the requested colour.
func (r *BasicTextRenderer) drawGlyph(bmp *canvas.Bitmap, x, y int, codepoint rune, col caption.RGBA8, cellW, cellH int) {
	d := &xfont.Drawer{
		Dst:  bmp,
		Src:  image.NewUniform(color.RGBA{col.R, col.G, col.B, col.A}),
		Face: r.face,
		Dot:  fixed.P(x, y+cellH-3),
	}
	d.DrawString(string(codepoint))
}
