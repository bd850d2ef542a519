/*
NAME
  region_test.go

DESCRIPTION
  region_test.go covers CaptionRegion layout: ruby suppression, scaled
  background painting, the DRCS-vs-text dispatch, and underline-run
  merging.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package region

import (
	"testing"

	"github.com/ausocean/captionvid/caption"
	"github.com/ausocean/captionvid/font"
)

func baseOptions() Options {
	return Options{
		XMag: 1, YMag: 1,
		TextRenderer: font.NewBasicTextRenderer(),
	}
}

func TestRenderSkipsRubyWhenForced(t *testing.T) {
	r := caption.CaptionRegion{IsRuby: true, Width: 10, Height: 10}
	opts := baseOptions()
	opts.ForceNoRuby = true
	_, _, _, ok := Render(r, opts)
	if ok {
		t.Error("ok = true, want false: ruby region should be skipped")
	}
}

func TestRenderEmptyRegionReturnsZeroBitmap(t *testing.T) {
	r := caption.CaptionRegion{Width: 0, Height: 0}
	bmp, dstX, dstY, ok := Render(r, baseOptions())
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if bmp.W != 0 || bmp.H != 0 {
		t.Errorf("bitmap = %dx%d, want 0x0", bmp.W, bmp.H)
	}
	if dstX != 0 || dstY != 0 {
		t.Errorf("dst = (%d,%d), want (0,0)", dstX, dstY)
	}
}

func TestRenderPaintsBackgroundColor(t *testing.T) {
	back := caption.RGBA8{R: 10, G: 20, B: 30, A: 255}
	ch := caption.CaptionChar{
		X: 0, Y: 0,
		CharWidth: 4, CharHeight: 4,
		CharHScale: 1, CharVScale: 1,
		BackColor: back,
	}
	r := caption.CaptionRegion{Width: 4, Height: 4, Chars: []caption.CaptionChar{ch}}
	bmp, _, _, ok := Render(r, baseOptions())
	if !ok {
		t.Fatal("ok = false")
	}
	if got := bmp.GetRGBA8(0, 0); got != back {
		t.Errorf("(0,0) = %+v, want background %+v", got, back)
	}
}

func TestRenderForceNoBackgroundSkipsFill(t *testing.T) {
	back := caption.RGBA8{R: 10, G: 20, B: 30, A: 255}
	ch := caption.CaptionChar{
		X: 0, Y: 0,
		CharWidth: 4, CharHeight: 4,
		CharHScale: 1, CharVScale: 1,
		BackColor: back,
	}
	r := caption.CaptionRegion{Width: 4, Height: 4, Chars: []caption.CaptionChar{ch}}
	opts := baseOptions()
	opts.ForceNoBackground = true
	bmp, _, _, ok := Render(r, opts)
	if !ok {
		t.Fatal("ok = false")
	}
	if got := bmp.GetRGBA8(0, 0); got.A != 0 {
		t.Errorf("(0,0) = %+v, want transparent (background suppressed)", got)
	}
}

func TestRenderDRCSCharUsesGlyphMap(t *testing.T) {
	glyph := caption.DRCS{Width: 2, Height: 2, Depth: 1, Pixels: []byte{0xC0}}
	ch := caption.CaptionChar{
		X: 0, Y: 0,
		CharWidth: 4, CharHeight: 4,
		CharHScale: 1, CharVScale: 1,
		Type:      caption.CharTypeDRCS,
		DRCSCode:  0x41,
		TextColor: caption.RGBA8{R: 255, A: 255},
	}
	r := caption.CaptionRegion{Width: 4, Height: 4, Chars: []caption.CaptionChar{ch}}
	opts := baseOptions()
	opts.DRCSMap = map[uint32]caption.DRCS{0x41: glyph}
	bmp, _, _, ok := Render(r, opts)
	if !ok {
		t.Fatal("ok = false")
	}
	if got := bmp.GetRGBA8(0, 0); got.A == 0 {
		t.Error("(0,0) transparent, want the DRCS glyph's top-left sample painted")
	}
}

func TestRenderDRCSCharMissingGlyphSkipped(t *testing.T) {
	ch := caption.CaptionChar{
		X: 0, Y: 0,
		CharWidth: 4, CharHeight: 4,
		CharHScale: 1, CharVScale: 1,
		Type:     caption.CharTypeDRCS,
		DRCSCode: 0x99,
	}
	r := caption.CaptionRegion{Width: 4, Height: 4, Chars: []caption.CaptionChar{ch}}
	opts := baseOptions()
	opts.DRCSMap = map[uint32]caption.DRCS{} // no entry for 0x99
	bmp, _, _, ok := Render(r, opts)
	if !ok {
		t.Fatal("ok = false")
	}
	if got := bmp.GetRGBA8(0, 0); got.A != 0 {
		t.Errorf("(0,0) = %+v, want transparent (missing glyph skipped)", got)
	}
}

func TestMergeUnderlinesGroupsConsecutiveRuns(t *testing.T) {
	mk := func(x int, underline bool) caption.CaptionChar {
		style := caption.CharStyleDefault
		if underline {
			style = caption.CharStyleUnderline
		}
		return caption.CaptionChar{X: x, Y: 0, CharWidth: 10, CharHScale: 1, Style: style}
	}
	chars := []caption.CaptionChar{mk(0, true), mk(10, true), mk(20, false), mk(30, true)}
	out := mergeUnderlines(chars, 0, 0, baseOptions())
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2 (one run of two, one run of one)", len(out))
	}
	first, ok := out[0]
	if !ok {
		t.Fatal("missing underline run starting at index 0")
	}
	if first.Width != 20 {
		t.Errorf("first run width = %d, want 20 (two merged 10-wide cells)", first.Width)
	}
	second, ok := out[3]
	if !ok {
		t.Fatal("missing underline run starting at index 3")
	}
	if second.Width != 10 {
		t.Errorf("second run width = %d, want 10", second.Width)
	}
}
