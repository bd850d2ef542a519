/*
NAME
  render.go

DESCRIPTION
  render.go implements Renderer, the caption-to-bitmap cache and
  scheduler: a PTS-ordered map of decoded captions, the INDEFINITE-
  duration retroactive stitch, storage-policy eviction, and the
  TryRender/Render resolution that decides whether a render at a given
  PTS would change the previously produced output. Renderer follows the
  same New(ctx)-then-Initialize-then-knob-setters shape as
  decoder.Decoder.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package render lays out a decoded caption.Caption onto a virtual
// plane and composites it into absolutely-positioned RGBA8888 images,
// caching by PTS so repeated renders at an unchanged configuration are
// cheap.
package render

import (
	"sort"

	"github.com/ausocean/captionvid/canvas"
	"github.com/ausocean/captionvid/caption"
	"github.com/ausocean/captionvid/decoder"
	"github.com/ausocean/captionvid/font"
	"github.com/ausocean/captionvid/internal/logctx"
	"github.com/ausocean/captionvid/render/region"
)

// StoragePolicy selects how AppendCaption evicts old cached captions.
type StoragePolicy int

const (
	PolicyMinimum StoragePolicy = iota
	PolicyUnlimited
	PolicyUpperLimitCount
	PolicyUpperLimitDuration
)

// RenderStatus discriminates the outcome of TryRender/Render.
type RenderStatus int

const (
	StatusError RenderStatus = iota
	StatusNoImage
	StatusGotImage
	StatusGotImageUnchanged
)

// FontProviderType selects a built-in font.FontProvider at Initialize.
type FontProviderType int

const (
	NullFontProvider FontProviderType = iota
)

// TextRendererType selects a built-in font.TextRenderer at Initialize.
type TextRendererType int

const (
	BasicTextRenderer TextRendererType = iota
)

// Output receives the images produced by a Render call.
type Output struct {
	Images []caption.Image
}

// Renderer owns a PTS-ordered cache of decoded captions and the
// knobs controlling how they're laid out and composited. A Renderer
// must not be called from multiple goroutines concurrently.
type Renderer struct {
	ctx *logctx.Context

	capType decoder.CaptionType

	keys     []int64 // sorted ascending
	captions map[int64]*caption.Caption

	prevRenderedPTS int64
	prevCaptionPTS  int64
	prevImages      []caption.Image
	dirty           bool

	frameW, frameH                         int
	marginTop, marginBottom, marginLeft, marginRight int

	defaultFontFamily      []string
	forceDefaultFontFamily bool
	langFontFamily         map[uint32][]string

	storagePolicy StoragePolicy
	storageLimit  int64

	strokeWidth       float32
	replaceDRCS       bool
	forceStrokeText   bool
	forceNoRuby       bool
	forceNoBackground bool
	mergeRegionImages bool

	fontProvider font.FontProvider
	textRenderer font.TextRenderer
}

// New returns a Renderer bound to ctx. ctx must outlive the Renderer.
func New(ctx *logctx.Context) *Renderer {
	r := &Renderer{ctx: ctx}
	r.reset()
	return r
}

func (r *Renderer) reset() {
	r.captions = make(map[int64]*caption.Caption)
	r.keys = nil
	r.prevRenderedPTS = caption.PTSNoPTS
	r.prevCaptionPTS = caption.PTSNoPTS
	r.prevImages = nil
	r.dirty = true
	if r.langFontFamily == nil {
		r.langFontFamily = make(map[uint32][]string)
	}
}

// Initialize configures the caption type Renderer expects and
// constructs the font provider/text renderer backends.
func (r *Renderer) Initialize(capType decoder.CaptionType, fpType FontProviderType, trType TextRendererType) bool {
	switch capType {
	case decoder.CaptionTypeCaption, decoder.CaptionTypeSuperimpose:
	default:
		return false
	}
	r.capType = capType

	switch fpType {
	case NullFontProvider:
		r.fontProvider = font.NullProvider{}
	default:
		return false
	}
	switch trType {
	case BasicTextRenderer:
		r.textRenderer = font.NewBasicTextRenderer()
	default:
		return false
	}
	r.reset()
	return true
}

// Flush clears the caption cache and all memoized render state; knob
// configuration is retained.
func (r *Renderer) Flush() { r.reset() }

func setKnob(changed *bool, cur *bool, v bool) {
	if *cur != v {
		*cur = v
		*changed = true
	}
}

// SetStrokeWidth sets the stroke border width in pixels; w must be >= 0.
func (r *Renderer) SetStrokeWidth(w float32) bool {
	if w < 0 {
		return false
	}
	if r.strokeWidth != w {
		r.strokeWidth = w
		r.dirty = true
	}
	return true
}

func (r *Renderer) SetReplaceDRCS(b bool)       { setKnob(&r.dirty, &r.replaceDRCS, b) }
func (r *Renderer) SetForceStrokeText(b bool)   { setKnob(&r.dirty, &r.forceStrokeText, b) }
func (r *Renderer) SetForceNoRuby(b bool)       { setKnob(&r.dirty, &r.forceNoRuby, b) }
func (r *Renderer) SetForceNoBackground(b bool) { setKnob(&r.dirty, &r.forceNoBackground, b) }
func (r *Renderer) SetMergeRegionImages(b bool) { setKnob(&r.dirty, &r.mergeRegionImages, b) }

// SetDefaultFontFamily sets the fallback family chain used when no
// language-specific chain is registered, or when force is set.
func (r *Renderer) SetDefaultFontFamily(family []string, force bool) {
	r.defaultFontFamily = family
	r.forceDefaultFontFamily = force
	r.dirty = true
}

// SetLanguageSpecificFontFamily registers a family chain for captions
// declaring iso6392LanguageCode.
func (r *Renderer) SetLanguageSpecificFontFamily(iso6392 uint32, family []string) {
	r.langFontFamily[iso6392] = family
	r.dirty = true
}

// SetFrameSize sets the target video frame dimensions Render composes
// onto; both must be positive.
func (r *Renderer) SetFrameSize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if r.frameW != w || r.frameH != h {
		r.frameW, r.frameH = w, h
		r.dirty = true
	}
	return true
}

// SetMargins sets the caption-area inset from the frame edges; the
// resulting area must remain positive in both dimensions given the
// current frame size (checked at Render time, since margins may be
// set before SetFrameSize).
func (r *Renderer) SetMargins(top, bottom, left, right int) bool {
	if top < 0 || bottom < 0 || left < 0 || right < 0 {
		return false
	}
	if r.marginTop != top || r.marginBottom != bottom || r.marginLeft != left || r.marginRight != right {
		r.marginTop, r.marginBottom, r.marginLeft, r.marginRight = top, bottom, left, right
		r.dirty = true
	}
	return true
}

// SetStoragePolicy sets the cache eviction policy; limit is the
// UpperLimitCount entry count or UpperLimitDuration millisecond span,
// ignored by Minimum/Unlimited.
func (r *Renderer) SetStoragePolicy(p StoragePolicy, limit int64) {
	r.storagePolicy = p
	r.storageLimit = limit
	r.evict()
}

// AppendCaption inserts c into the cache, keyed by c.PTS, performing
// the INDEFINITE-duration retroactive stitch against its predecessor
// and then evicting per the configured storage policy. It returns
// false (no side effects) if c.PTS is the NOPTS sentinel or the frame
// size has not yet been configured.
func (r *Renderer) AppendCaption(c *caption.Caption) bool {
	if c == nil || c.PTS == caption.PTSNoPTS || r.frameW <= 0 || r.frameH <= 0 {
		return false
	}

	if pred, ok := r.predecessorStrictlyBefore(c.PTS); ok {
		if pred.WaitDuration == caption.DurationIndefinite && pred.PTS < c.PTS {
			pred.WaitDuration = c.PTS - pred.PTS
		}
	}

	clone := c.Clone()
	if _, existed := r.captions[c.PTS]; !existed {
		r.insertKey(c.PTS)
	}
	r.captions[c.PTS] = clone

	if r.prevRenderedPTS != caption.PTSNoPTS && c.PTS <= r.prevRenderedPTS {
		r.dirty = true
	}

	r.evict()
	return true
}

func (r *Renderer) insertKey(pts int64) {
	i := sort.Search(len(r.keys), func(i int) bool { return r.keys[i] >= pts })
	r.keys = append(r.keys, 0)
	copy(r.keys[i+1:], r.keys[i:])
	r.keys[i] = pts
}

// predecessorStrictlyBefore returns the cached caption with the
// greatest PTS strictly less than pts.
func (r *Renderer) predecessorStrictlyBefore(pts int64) (*caption.Caption, bool) {
	i := sort.Search(len(r.keys), func(i int) bool { return r.keys[i] >= pts })
	if i == 0 {
		return nil, false
	}
	return r.captions[r.keys[i-1]], true
}

// containing returns the cached caption whose [pts, pts+duration)
// window contains query, if any.
func (r *Renderer) containing(query int64) (*caption.Caption, bool) {
	i := sort.Search(len(r.keys), func(i int) bool { return r.keys[i] > query })
	if i == 0 {
		return nil, false
	}
	c := r.captions[r.keys[i-1]]
	if c.WaitDuration == caption.DurationIndefinite {
		return c, true
	}
	if query < c.PTS+c.WaitDuration {
		return c, true
	}
	return nil, false
}

func (r *Renderer) evict() {
	switch r.storagePolicy {
	case PolicyUnlimited:
		return
	case PolicyMinimum:
		if r.prevRenderedPTS == caption.PTSNoPTS {
			return
		}
		r.dropKeysBefore(r.prevRenderedPTS)
	case PolicyUpperLimitCount:
		n := int(r.storageLimit)
		if n < 0 {
			n = 0
		}
		for len(r.keys) > n {
			r.dropKey(r.keys[0])
		}
	case PolicyUpperLimitDuration:
		if len(r.keys) == 0 {
			return
		}
		last := r.keys[len(r.keys)-1]
		r.dropKeysBefore(last - r.storageLimit + 1)
	}
}

func (r *Renderer) dropKeysBefore(threshold int64) {
	i := sort.Search(len(r.keys), func(i int) bool { return r.keys[i] >= threshold })
	for _, k := range r.keys[:i] {
		delete(r.captions, k)
	}
	r.keys = append([]int64(nil), r.keys[i:]...)
}

func (r *Renderer) dropKey(k int64) {
	delete(r.captions, k)
	i := sort.Search(len(r.keys), func(i int) bool { return r.keys[i] >= k })
	if i < len(r.keys) && r.keys[i] == k {
		r.keys = append(r.keys[:i], r.keys[i+1:]...)
	}
}

// TryRender reports whether a Render call at pts would change the
// previously produced output, without performing the render.
func (r *Renderer) TryRender(pts int64) RenderStatus {
	c, ok := r.containing(pts)
	if !ok || decoder.CaptionType(c.Type) != r.capType {
		return StatusNoImage
	}
	if !r.dirty && c.PTS == r.prevCaptionPTS {
		return StatusGotImageUnchanged
	}
	return StatusGotImage
}

// Render resolves the caption active at pts, lays out and composites
// its regions, and writes the result to out.
func (r *Renderer) Render(pts int64, out *Output) RenderStatus {
	if r.frameW <= 0 || r.frameH <= 0 {
		return StatusError
	}
	c, ok := r.containing(pts)
	if !ok || decoder.CaptionType(c.Type) != r.capType {
		return StatusNoImage
	}
	if !r.dirty && c.PTS == r.prevCaptionPTS {
		out.Images = r.prevImages
		return StatusGotImageUnchanged
	}

	areaX, areaY, areaW, areaH := r.captionAreaRect(c.PlaneWidth, c.PlaneHeight)
	if areaW <= 0 || areaH <= 0 {
		return StatusError
	}
	xMag := float64(areaW) / float64(c.PlaneWidth)
	yMag := float64(areaH) / float64(c.PlaneHeight)

	if r.textRenderer != nil {
		r.textRenderer.SetLanguage(c.ISO6392LanguageCode)
		r.textRenderer.SetFontFamily(r.fontFamilyFor(c.ISO6392LanguageCode))
	}

	opts := region.Options{
		XMag:              xMag,
		YMag:              yMag,
		ForceNoBackground: r.forceNoBackground,
		ForceNoRuby:       r.forceNoRuby,
		ReplaceDRCS:       r.replaceDRCS,
		ForceStrokeText:   r.forceStrokeText,
		StrokeWidth:       r.strokeWidth,
		DRCSMap:           c.DRCSMap,
		TextRenderer:      r.textRenderer,
	}

	var images []caption.Image
	for _, reg := range c.Regions {
		bmp, dx, dy, ok := region.Render(reg, opts)
		if !ok || bmp == nil || bmp.W == 0 || bmp.H == 0 {
			continue
		}
		images = append(images, caption.Image{
			PTS:         c.PTS,
			Duration:    c.WaitDuration,
			DstX:        areaX + dx,
			DstY:        areaY + dy,
			Width:       bmp.W,
			Height:      bmp.H,
			Stride:      bmp.Stride,
			PixelFormat: caption.PixelFormatRGBA8888,
			Pixels:      bmp.Pix,
		})
	}
	if len(images) == 0 {
		return StatusNoImage
	}
	if r.mergeRegionImages {
		images = []caption.Image{mergeImages(images)}
	}

	r.prevRenderedPTS = pts
	r.prevCaptionPTS = c.PTS
	r.prevImages = images
	r.dirty = false
	out.Images = images
	return StatusGotImage
}

// captionAreaRect fits a planeW x planeH aspect ratio inside the
// configured frame minus margins, returning the resulting rect's
// origin and size.
func (r *Renderer) captionAreaRect(planeW, planeH int) (x, y, w, h int) {
	availW := r.frameW - r.marginLeft - r.marginRight
	availH := r.frameH - r.marginTop - r.marginBottom
	if availW <= 0 || availH <= 0 || planeW <= 0 || planeH <= 0 {
		return 0, 0, 0, 0
	}
	planeAspect := float64(planeW) / float64(planeH)
	availAspect := float64(availW) / float64(availH)
	if availAspect > planeAspect {
		h = availH
		w = int(float64(h) * planeAspect)
	} else {
		w = availW
		h = int(float64(w) / planeAspect)
	}
	x = r.marginLeft + (availW-w)/2
	y = r.marginTop + (availH-h)/2
	return x, y, w, h
}

// fontFamilyFor resolves the family chain for a caption declaring
// iso6392LanguageCode, honouring forceDefaultFontFamily.
func (r *Renderer) fontFamilyFor(iso6392 uint32) []string {
	if r.forceDefaultFontFamily || iso6392 == 0 {
		return r.defaultFontFamily
	}
	if f, ok := r.langFontFamily[iso6392]; ok {
		return f
	}
	return r.defaultFontFamily
}

// mergeImages composites a set of absolutely-positioned images into
// one, painting in the supplied order (painter's algorithm) so later
// images overwrite earlier ones where they overlap.
func mergeImages(images []caption.Image) caption.Image {
	minX, minY := images[0].DstX, images[0].DstY
	maxX, maxY := images[0].DstX+images[0].Width, images[0].DstY+images[0].Height
	for _, im := range images[1:] {
		if im.DstX < minX {
			minX = im.DstX
		}
		if im.DstY < minY {
			minY = im.DstY
		}
		if im.DstX+im.Width > maxX {
			maxX = im.DstX + im.Width
		}
		if im.DstY+im.Height > maxY {
			maxY = im.DstY + im.Height
		}
	}
	bmp := canvas.NewBitmap(maxX-minX, maxY-minY)
	cv := canvas.New(bmp)
	for _, im := range images {
		src := &canvas.Bitmap{W: im.Width, H: im.Height, Stride: im.Stride, Pix: im.Pixels}
		cv.DrawBitmap(src, im.DstX-minX, im.DstY-minY)
	}
	return caption.Image{
		PTS: images[0].PTS, Duration: images[0].Duration,
		DstX: minX, DstY: minY, Width: bmp.W, Height: bmp.H, Stride: bmp.Stride,
		PixelFormat: caption.PixelFormatRGBA8888, Pixels: bmp.Pix,
	}
}
