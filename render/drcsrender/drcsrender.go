/*
NAME
  drcsrender.go

DESCRIPTION
  drcsrender.go upscales a caption.DRCS 1/2/4-bpp pixel grid to a
  target cell size via nearest-neighbour sampling, tinted to the
  requested text colour, with an optional 4-neighbour dilation stroke
  border drawn first so it shows through around the glyph's edges.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package drcsrender rasterizes DRCS (Dynamically Redefinable
// Character Set) downloaded glyphs into coloured bitmaps at a target
// cell size.
package drcsrender

import (
	"github.com/ausocean/captionvid/canvas"
	"github.com/ausocean/captionvid/caption"
)

// sample reads the depth-bit pixel at (sx,sy) from a row-major,
// most-significant-bit-first packed bitplane.
func sample(pixels []byte, width, depth, sx, sy int) int {
	bitIndex := (sy*width + sx) * depth
	byteIndex := bitIndex / 8
	bitOffset := 8 - depth - (bitIndex % 8)
	if byteIndex >= len(pixels) {
		return 0
	}
	mask := byte(1<<depth - 1)
	return int((pixels[byteIndex] >> uint(bitOffset)) & mask)
}

// Render rasterizes glyph to a tw x th bitmap tinted with textColor.
// When stroke is true, a second pass in strokeColor is painted first,
// offset by strokeWidth pixels in each of the four cardinal
// directions, so the stroke shows as a border dilation around the
// glyph.
func Render(glyph caption.DRCS, tw, th int, textColor, strokeColor caption.RGBA8, stroke bool, strokeWidth int) *canvas.Bitmap {
	bmp := canvas.NewBitmap(tw, th)
	if glyph.Width == 0 || glyph.Height == 0 || tw == 0 || th == 0 {
		return bmp
	}
	maxSample := (1 << glyph.Depth) - 1

	paint := func(dx, dy int, color caption.RGBA8) {
		for ty := 0; ty < th; ty++ {
			sy := ty * glyph.Height / th
			for tx := 0; tx < tw; tx++ {
				sx := tx * glyph.Width / tw
				v := sample(glyph.Pixels, glyph.Width, glyph.Depth, sx, sy)
				if v == 0 {
					continue
				}
				alpha := uint8(v * 255 / maxSample)
				px, py := tx+dx, ty+dy
				if px < 0 || py < 0 || px >= tw || py >= th {
					continue
				}
				bmp.SetRGBA8(px, py, caption.RGBA8{color.R, color.G, color.B, alpha})
			}
		}
	}

	if stroke && strokeWidth > 0 {
		for _, off := range [][2]int{{strokeWidth, 0}, {-strokeWidth, 0}, {0, strokeWidth}, {0, -strokeWidth}} {
			paint(off[0], off[1], strokeColor)
		}
	}
	paint(0, 0, textColor)
	return bmp
}
