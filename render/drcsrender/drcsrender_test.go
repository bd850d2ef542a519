/*
NAME
  drcsrender_test.go

DESCRIPTION
  drcsrender_test.go covers nearest-neighbour upscaling of a packed
  bitplane DRCS glyph and the stroke dilation pass.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package drcsrender

import (
	"testing"

	"github.com/ausocean/captionvid/caption"
)

// a 2x2 1bpp glyph with pixels set in the top-left and bottom-right
// corners: 0b1001_0000 -> row0 = [1,0], row1 = [0,1].
func checkerGlyph() caption.DRCS {
	return caption.DRCS{Width: 2, Height: 2, Depth: 1, Pixels: []byte{0x90}}
}

func TestSamplePackedBits(t *testing.T) {
	g := checkerGlyph()
	cases := []struct{ x, y, want int }{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 1},
	}
	for _, c := range cases {
		if got := sample(g.Pixels, g.Width, g.Depth, c.x, c.y); got != c.want {
			t.Errorf("sample(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestRenderUpscalesNearestNeighbour(t *testing.T) {
	g := checkerGlyph()
	textColor := caption.RGBA8{R: 255, G: 255, B: 255, A: 255}
	bmp := Render(g, 4, 4, textColor, caption.RGBA8{}, false, 0)
	if bmp.W != 4 || bmp.H != 4 {
		t.Fatalf("bitmap size = %dx%d, want 4x4", bmp.W, bmp.H)
	}
	// Top-left source pixel (set) maps to the top-left 2x2 quadrant.
	if got := bmp.GetRGBA8(0, 0); got.A == 0 {
		t.Error("(0,0) transparent, want opaque (sourced from a set pixel)")
	}
	// Top-right source pixel (unset) maps to the top-right quadrant.
	if got := bmp.GetRGBA8(3, 0); got.A != 0 {
		t.Errorf("(3,0) = %+v, want transparent (sourced from an unset pixel)", got)
	}
}

func TestRenderZeroSizeGlyphIsNoOp(t *testing.T) {
	bmp := Render(caption.DRCS{}, 4, 4, caption.RGBA8{}, caption.RGBA8{}, false, 0)
	if bmp.W != 4 || bmp.H != 4 {
		t.Fatalf("bitmap size = %dx%d, want 4x4", bmp.W, bmp.H)
	}
	if got := bmp.GetRGBA8(0, 0); got.A != 0 {
		t.Errorf("(0,0) = %+v, want transparent", got)
	}
}

func TestRenderStrokeDilatesBeforeMainColor(t *testing.T) {
	// A 3-pixel-wide glyph with only the centre pixel set, rendered at
	// native scale: the centre keeps the main text colour, and the
	// stroke dilation (offset +-1) paints only the two neighbouring
	// columns the glyph itself never covers.
	g := caption.DRCS{Width: 3, Height: 1, Depth: 1, Pixels: []byte{0x40}}
	textColor := caption.RGBA8{R: 255, A: 255}
	strokeColor := caption.RGBA8{B: 255, A: 255}
	bmp := Render(g, 3, 1, textColor, strokeColor, true, 1)
	if got := bmp.GetRGBA8(1, 0); got != textColor {
		t.Errorf("centre = %+v, want main text colour %+v", got, textColor)
	}
	if got := bmp.GetRGBA8(0, 0); got != strokeColor {
		t.Errorf("left = %+v, want stroke colour %+v (dilated)", got, strokeColor)
	}
	if got := bmp.GetRGBA8(2, 0); got != strokeColor {
		t.Errorf("right = %+v, want stroke colour %+v (dilated)", got, strokeColor)
	}
}
