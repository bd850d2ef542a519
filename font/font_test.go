/*
NAME
  font_test.go

DESCRIPTION
  font_test.go covers NullProvider's always-miss contract and
  BasicTextRenderer's glyph and underline drawing against a canvas.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package font

import (
	"testing"

	"github.com/ausocean/captionvid/canvas"
	"github.com/ausocean/captionvid/caption"
)

func TestNullProviderAlwaysMisses(t *testing.T) {
	var p NullProvider
	if _, err := p.GetFontFace("Arial", 'A'); err != ErrFontNotFound {
		t.Errorf("err = %v, want ErrFontNotFound", err)
	}
}

func TestBasicTextRendererDrawsNonEmptyPixels(t *testing.T) {
	r := NewBasicTextRenderer()
	bmp := canvas.NewBitmap(16, 16)
	ctx := r.BeginDraw(bmp)
	defer r.EndDraw(ctx)

	err := r.DrawChar(ctx, 2, 2, 'A', caption.CharStyleDefault,
		caption.RGBA8{R: 255, G: 255, B: 255, A: 255}, caption.RGBA8{}, 0, 14, 14, nil, AutoFallback)
	if err != nil {
		t.Fatalf("DrawChar: %v", err)
	}

	var painted bool
	for y := 0; y < bmp.H && !painted; y++ {
		for x := 0; x < bmp.W; x++ {
			if bmp.GetRGBA8(x, y).A != 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("DrawChar left every pixel transparent")
	}
}

func TestBasicTextRendererUnderline(t *testing.T) {
	r := NewBasicTextRenderer()
	bmp := canvas.NewBitmap(10, 10)
	ctx := r.BeginDraw(bmp)
	defer r.EndDraw(ctx)

	col := caption.RGBA8{R: 1, G: 2, B: 3, A: 255}
	ul := &UnderlineInfo{X: 0, Y: 5, Width: 10}
	if err := r.DrawChar(ctx, 0, 0, 'x', caption.CharStyleUnderline, col, caption.RGBA8{}, 0, 10, 10, ul, AutoFallback); err != nil {
		t.Fatalf("DrawChar: %v", err)
	}
	if got := bmp.GetRGBA8(0, 5); got != col {
		t.Errorf("underline pixel = %+v, want %+v", got, col)
	}
}

func TestBasicTextRendererRejectsForeignContext(t *testing.T) {
	r := NewBasicTextRenderer()
	err := r.DrawChar(nil, 0, 0, 'A', caption.CharStyleDefault, caption.RGBA8{}, caption.RGBA8{}, 0, 10, 10, nil, AutoFallback)
	if err != ErrFontNotFound {
		t.Errorf("err = %v, want ErrFontNotFound", err)
	}
}
