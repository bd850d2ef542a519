/*
NAME
  render_test.go

DESCRIPTION
  render_test.go covers the Renderer cache (PTS ordering, the
  INDEFINITE-duration retroactive stitch, storage-policy eviction),
  the knob-setter dirty-invalidation contract, and a full Render pass
  producing a composited image.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package render

import (
	"testing"

	"github.com/ausocean/captionvid/caption"
	"github.com/ausocean/captionvid/decoder"
	"github.com/ausocean/captionvid/internal/logctx"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r := New(logctx.New(nil))
	if !r.Initialize(decoder.CaptionTypeCaption, NullFontProvider, BasicTextRenderer) {
		t.Fatal("Initialize failed")
	}
	if !r.SetFrameSize(100, 100) {
		t.Fatal("SetFrameSize failed")
	}
	return r
}

// simpleCaption builds a minimal one-region, one-character caption
// sized so a Render call against a 100x100 frame with no margins
// produces exactly one non-empty image.
func simpleCaption(pts, wait int64) *caption.Caption {
	ch := caption.CaptionChar{
		Codepoint:  'A',
		CharWidth:  10,
		CharHeight: 10,
		CharHScale: 1,
		CharVScale: 1,
		TextColor:  caption.ColorWhite,
	}
	return &caption.Caption{
		Type:         caption.TypeCaption,
		PTS:          pts,
		WaitDuration: wait,
		PlaneWidth:   100,
		PlaneHeight:  100,
		Regions:      []caption.CaptionRegion{{Width: 10, Height: 10, Chars: []caption.CaptionChar{ch}}},
		DRCSMap:      map[uint32]caption.DRCS{},
	}
}

func TestAppendCaptionRejectsNoPTS(t *testing.T) {
	r := newTestRenderer(t)
	if r.AppendCaption(simpleCaption(caption.PTSNoPTS, caption.DurationIndefinite)) {
		t.Error("AppendCaption(NOPTS) = true, want false")
	}
}

func TestAppendCaptionRequiresFrameSize(t *testing.T) {
	r := New(logctx.New(nil))
	r.Initialize(decoder.CaptionTypeCaption, NullFontProvider, BasicTextRenderer)
	if r.AppendCaption(simpleCaption(1000, caption.DurationIndefinite)) {
		t.Error("AppendCaption before SetFrameSize = true, want false")
	}
}

// An INDEFINITE-duration predecessor's WaitDuration is stitched to the
// gap once a successor with a greater PTS arrives, and containing()
// reports each caption's window correctly at the stitched boundary.
func TestAppendCaptionIndefiniteStitch(t *testing.T) {
	r := newTestRenderer(t)
	r.AppendCaption(simpleCaption(1000, caption.DurationIndefinite))
	r.AppendCaption(simpleCaption(3500, 2000))

	c1, ok := r.containing(1000)
	if !ok {
		t.Fatal("containing(1000) not found")
	}
	if c1.WaitDuration != 2500 {
		t.Errorf("stitched WaitDuration = %d, want 2500", c1.WaitDuration)
	}

	cases := []struct {
		query    int64
		wantPTS  int64
		wantOK   bool
	}{
		{3499, 1000, true},
		{3500, 3500, true},
		{5499, 3500, true},
		{5500, 0, false},
	}
	for _, c := range cases {
		got, ok := r.containing(c.query)
		if ok != c.wantOK {
			t.Errorf("containing(%d) ok = %v, want %v", c.query, ok, c.wantOK)
			continue
		}
		if ok && got.PTS != c.wantPTS {
			t.Errorf("containing(%d).PTS = %d, want %d", c.query, got.PTS, c.wantPTS)
		}
	}
}

// The stitch only applies when the predecessor is strictly before the
// new caption's PTS and still carries an INDEFINITE duration; a
// successor with an equal or lesser PTS must not rewrite it.
func TestAppendCaptionStitchIgnoresNonIncreasingPTS(t *testing.T) {
	r := newTestRenderer(t)
	r.AppendCaption(simpleCaption(1000, caption.DurationIndefinite))
	r.AppendCaption(simpleCaption(1000, 500)) // same PTS: replaces, doesn't stitch a distinct predecessor
	c, ok := r.containing(1000)
	if !ok {
		t.Fatal("containing(1000) not found")
	}
	if c.WaitDuration != 500 {
		t.Errorf("WaitDuration = %d, want 500 (the second caption replaced the first)", c.WaitDuration)
	}
}

func TestStoragePolicyUpperLimitCount(t *testing.T) {
	r := newTestRenderer(t)
	r.SetStoragePolicy(PolicyUpperLimitCount, 2)
	r.AppendCaption(simpleCaption(1000, 100))
	r.AppendCaption(simpleCaption(2000, 100))
	r.AppendCaption(simpleCaption(3000, 100))
	if got := r.keys; len(got) != 2 || got[0] != 2000 || got[1] != 3000 {
		t.Errorf("keys = %v, want [2000 3000]", got)
	}
}

func TestStoragePolicyUpperLimitDuration(t *testing.T) {
	r := newTestRenderer(t)
	r.SetStoragePolicy(PolicyUpperLimitDuration, 1500)
	r.AppendCaption(simpleCaption(1000, 100))
	r.AppendCaption(simpleCaption(2000, 100))
	r.AppendCaption(simpleCaption(3000, 100))
	// Window is [last-limit+1, last] = [1501, 3000]; 1000 falls outside.
	if _, ok := r.captions[1000]; ok {
		t.Error("PTS 1000 should have been evicted")
	}
	if _, ok := r.captions[3000]; !ok {
		t.Error("PTS 3000 should remain")
	}
}

func TestStoragePolicyUnlimitedKeepsEverything(t *testing.T) {
	r := newTestRenderer(t)
	r.SetStoragePolicy(PolicyUnlimited, 0)
	for _, pts := range []int64{1000, 2000, 3000, 4000} {
		r.AppendCaption(simpleCaption(pts, 100))
	}
	if len(r.keys) != 4 {
		t.Errorf("len(keys) = %d, want 4", len(r.keys))
	}
}

// Boolean knob setters only flip dirty when the value actually
// changes; setting the same value again is a no-op.
func TestSetKnobOnlyInvalidatesOnChange(t *testing.T) {
	r := newTestRenderer(t)
	r.AppendCaption(simpleCaption(1000, caption.DurationIndefinite))
	var out Output
	if status := r.Render(1000, &out); status != StatusGotImage {
		t.Fatalf("priming Render status = %v, want StatusGotImage", status)
	}
	if r.dirty {
		t.Fatal("dirty = true immediately after a successful Render")
	}

	r.SetForceNoRuby(false) // already false: no-op
	if r.dirty {
		t.Error("dirty = true after setting a knob to its current value")
	}

	r.SetForceNoRuby(true) // actual change
	if !r.dirty {
		t.Error("dirty = false after setting a knob to a new value")
	}
}

func TestRenderProducesImageAndCachesUnchanged(t *testing.T) {
	r := newTestRenderer(t)
	r.AppendCaption(simpleCaption(1000, caption.DurationIndefinite))

	var out Output
	status := r.Render(1000, &out)
	if status != StatusGotImage {
		t.Fatalf("status = %v, want StatusGotImage", status)
	}
	if len(out.Images) != 1 {
		t.Fatalf("len(Images) = %d, want 1", len(out.Images))
	}
	im := out.Images[0]
	if im.Width <= 0 || im.Height <= 0 {
		t.Errorf("image size = %dx%d, want positive", im.Width, im.Height)
	}

	var out2 Output
	status2 := r.Render(1000, &out2)
	if status2 != StatusGotImageUnchanged {
		t.Errorf("second Render status = %v, want StatusGotImageUnchanged", status2)
	}
}

func TestRenderNoImageOutsideWindow(t *testing.T) {
	r := newTestRenderer(t)
	r.AppendCaption(simpleCaption(1000, 500))

	var out Output
	if status := r.Render(2000, &out); status != StatusNoImage {
		t.Errorf("status = %v, want StatusNoImage", status)
	}
}

func TestRenderBeforeFrameSizeErrors(t *testing.T) {
	r := New(logctx.New(nil))
	r.Initialize(decoder.CaptionTypeCaption, NullFontProvider, BasicTextRenderer)
	var out Output
	if status := r.Render(0, &out); status != StatusError {
		t.Errorf("status = %v, want StatusError", status)
	}
}

func TestTryRenderMatchesRenderWithoutComputingImages(t *testing.T) {
	r := newTestRenderer(t)
	r.AppendCaption(simpleCaption(1000, caption.DurationIndefinite))

	if status := r.TryRender(1000); status != StatusGotImage {
		t.Fatalf("TryRender before any Render = %v, want StatusGotImage", status)
	}
	var out Output
	r.Render(1000, &out)
	if status := r.TryRender(1000); status != StatusGotImageUnchanged {
		t.Errorf("TryRender after Render = %v, want StatusGotImageUnchanged", status)
	}
}

func TestSetFrameSizeRejectsNonPositive(t *testing.T) {
	r := New(logctx.New(nil))
	r.Initialize(decoder.CaptionTypeCaption, NullFontProvider, BasicTextRenderer)
	if r.SetFrameSize(0, 100) {
		t.Error("SetFrameSize(0, 100) = true, want false")
	}
	if r.SetFrameSize(100, -1) {
		t.Error("SetFrameSize(100, -1) = true, want false")
	}
}

func TestSetStrokeWidthRejectsNegative(t *testing.T) {
	r := newTestRenderer(t)
	if r.SetStrokeWidth(-1) {
		t.Error("SetStrokeWidth(-1) = true, want false")
	}
	if !r.SetStrokeWidth(2) {
		t.Error("SetStrokeWidth(2) = false, want true")
	}
}
