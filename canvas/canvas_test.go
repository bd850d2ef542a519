/*
NAME
  canvas_test.go

DESCRIPTION
  canvas_test.go covers Bitmap's image.Image/draw.Image conformance and
  Canvas's SRC_OVER compositing primitives.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/ausocean/captionvid/caption"
)

func TestBitmapSetAtRoundTrip(t *testing.T) {
	b := NewBitmap(4, 4)
	b.Set(1, 2, color.RGBA{10, 20, 30, 255})
	got := b.At(1, 2)
	want := color.RGBA{10, 20, 30, 255}
	if got != want {
		t.Errorf("At(1,2) = %+v, want %+v", got, want)
	}
}

func TestBitmapOutOfBoundsIsNoOp(t *testing.T) {
	b := NewBitmap(2, 2)
	b.Set(-1, 0, color.RGBA{1, 2, 3, 255})
	b.Set(5, 5, color.RGBA{1, 2, 3, 255})
	if got := b.At(-1, 0); got != (color.RGBA{}) {
		t.Errorf("At(-1,0) = %+v, want zero value", got)
	}
	if got := b.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("At(5,5) = %+v, want zero value", got)
	}
}

func TestBitmapRGBA8RoundTrip(t *testing.T) {
	b := NewBitmap(3, 3)
	c := caption.RGBA8{R: 1, G: 2, B: 3, A: 4}
	b.SetRGBA8(2, 1, c)
	if got := b.GetRGBA8(2, 1); got != c {
		t.Errorf("GetRGBA8(2,1) = %+v, want %+v", got, c)
	}
	if got := b.GetRGBA8(10, 10); got != (caption.RGBA8{}) {
		t.Errorf("GetRGBA8 out of bounds = %+v, want zero value", got)
	}
}

func TestBitmapZeroSize(t *testing.T) {
	b := NewBitmap(0, 0)
	if b.W != 0 || b.H != 0 {
		t.Errorf("W/H = %d/%d, want 0/0", b.W, b.H)
	}
	// Must not panic.
	b.SetRGBA8(0, 0, caption.RGBA8{R: 1})
}

func TestDrawRectOpaque(t *testing.T) {
	b := NewBitmap(4, 4)
	cv := New(b)
	red := caption.RGBA8{R: 255, A: 255}
	cv.DrawRect(red, image.Rect(1, 1, 3, 3))
	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			if got := b.GetRGBA8(x, y); got != red {
				t.Errorf("(%d,%d) = %+v, want %+v", x, y, got, red)
			}
		}
	}
	if got := b.GetRGBA8(0, 0); got.A != 0 {
		t.Errorf("(0,0) = %+v, want untouched transparent", got)
	}
}

func TestDrawRectClipsToBounds(t *testing.T) {
	b := NewBitmap(2, 2)
	cv := New(b)
	// Must not panic despite extending well past the bitmap.
	cv.DrawRect(caption.RGBA8{R: 1, A: 255}, image.Rect(-5, -5, 100, 100))
	if got := b.GetRGBA8(0, 0); got.R != 1 {
		t.Errorf("(0,0).R = %d, want 1", got.R)
	}
}

func TestFillLineHalfAlphaBlend(t *testing.T) {
	b := NewBitmap(2, 1)
	b.SetRGBA8(0, 0, caption.RGBA8{R: 0, G: 0, B: 0, A: 255})
	cv := New(b)
	cv.FillLine(0, 0, 1, caption.RGBA8{R: 255, G: 255, B: 255, A: 128})
	got := b.GetRGBA8(0, 0)
	if got.A != 255 {
		t.Errorf("A = %d, want 255 (opaque dst stays opaque)", got.A)
	}
	if got.R < 120 || got.R > 135 {
		t.Errorf("R = %d, want roughly half-blended toward 255", got.R)
	}
}

func TestDrawBitmapOpaqueFastPath(t *testing.T) {
	src := NewBitmap(2, 2)
	fill := caption.RGBA8{R: 9, G: 9, B: 9, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA8(x, y, fill)
		}
	}
	dst := NewBitmap(4, 4)
	cv := New(dst)
	cv.DrawBitmap(src, 1, 1)
	if got := dst.GetRGBA8(1, 1); got != fill {
		t.Errorf("(1,1) = %+v, want %+v", got, fill)
	}
	if got := dst.GetRGBA8(2, 2); got != fill {
		t.Errorf("(2,2) = %+v, want %+v", got, fill)
	}
	if got := dst.GetRGBA8(3, 3); got.A != 0 {
		t.Errorf("(3,3) = %+v, want untouched transparent", got)
	}
}

func TestDrawBitmapTransparentSourceIsNoOp(t *testing.T) {
	src := NewBitmap(1, 1)
	dst := NewBitmap(2, 2)
	cv := New(dst)
	cv.DrawBitmap(src, 0, 0)
	if got := dst.GetRGBA8(0, 0); got.A != 0 {
		t.Errorf("(0,0) = %+v, want untouched transparent", got)
	}
}

func TestDrawBitmapNilSourceIsNoOp(t *testing.T) {
	dst := NewBitmap(2, 2)
	cv := New(dst)
	cv.DrawBitmap(nil, 0, 0) // must not panic
}

func TestBitmapSatisfiesDrawImage(t *testing.T) {
	var _ draw.Image = NewBitmap(1, 1)
}
