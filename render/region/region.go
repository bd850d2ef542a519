/*
NAME
  region.go

DESCRIPTION
  region.go lays out and paints one caption.CaptionRegion onto a fresh
  canvas.Bitmap: background, per-cell DRCS or text glyph, enclosure
  lines, and merged underline runs, scaled from virtual plane pixels to
  the target caption-area rectangle by the caller-supplied magnification
  factors.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package region renders one decoded caption.CaptionRegion into an
// absolutely-positioned canvas.Bitmap.
package region

import (
	"image"
	"math"

	"github.com/ausocean/captionvid/canvas"
	"github.com/ausocean/captionvid/caption"
	"github.com/ausocean/captionvid/font"
	"github.com/ausocean/captionvid/render/drcsrender"
)

// Options configures one region render pass; Renderer core fills this
// in from its own knob state before calling Render.
type Options struct {
	XMag, YMag float64

	ForceNoBackground bool
	ForceNoRuby       bool
	ReplaceDRCS       bool
	ForceStrokeText   bool
	StrokeWidth       float32

	DRCSMap      map[uint32]caption.DRCS
	TextRenderer font.TextRenderer
}

func scale(v int, mag float64) int { return int(math.Floor(float64(v) * mag)) }

// Render paints region and returns the resulting bitmap and its
// absolute (dst_x, dst_y) on the target caption-area rect (relative to
// the region's own virtual-plane origin; the renderer core adds the
// caption-area's own offset). ok is false only when region.IsRuby and
// opts.ForceNoRuby are both true, in which case the region is skipped
// entirely as the component design requires.
func Render(region caption.CaptionRegion, opts Options) (bmp *canvas.Bitmap, dstX, dstY int, ok bool) {
	if opts.ForceNoRuby && region.IsRuby {
		return nil, 0, 0, false
	}

	dstX = scale(region.X, opts.XMag)
	dstY = scale(region.Y, opts.YMag)
	w := scale(region.Width, opts.XMag)
	h := scale(region.Height, opts.YMag)
	if w <= 0 || h <= 0 {
		return canvas.NewBitmap(0, 0), dstX, dstY, true
	}
	bmp = canvas.NewBitmap(w, h)
	cv := canvas.New(bmp)

	underlines := mergeUnderlines(region.Chars, region.X, region.Y, opts)

	var ctx font.DrawContext
	if opts.TextRenderer != nil {
		ctx = opts.TextRenderer.BeginDraw(bmp)
		defer opts.TextRenderer.EndDraw(ctx)
	}

	for i := range region.Chars {
		ch := &region.Chars[i]
		cx := scale(ch.X-region.X, opts.XMag)
		cy := scale(ch.Y-region.Y, opts.YMag)
		cw := scale(ch.SectionWidth(), opts.XMag)
		chh := scale(ch.SectionHeight(), opts.YMag)

		if !opts.ForceNoBackground && ch.BackColor.A > 0 {
			cv.DrawRect(ch.BackColor, rectAt(cx, cy, cw, chh))
		}

		style := ch.Style
		if opts.ForceStrokeText {
			style |= caption.CharStyleStroke
		}

		switch {
		case (ch.Type == caption.CharTypeDRCS || ch.Type == caption.CharTypeDRCSReplaced) && !opts.ReplaceDRCS:
			glyph, ok := opts.DRCSMap[ch.DRCSCode]
			if !ok {
				continue
			}
			g := drcsrender.Render(glyph, cw, chh, ch.TextColor, ch.StrokeColor, style&caption.CharStyleStroke != 0, int(opts.StrokeWidth+0.5))
			cv.DrawBitmap(g, cx, cy)
		default:
			if ch.Codepoint == 0 || opts.TextRenderer == nil {
				continue
			}
			var ul *font.UnderlineInfo
			if u, found := underlines[i]; found {
				ul = &u
			}
			_ = opts.TextRenderer.DrawChar(ctx, cx, cy, ch.Codepoint, style, ch.TextColor, ch.StrokeColor,
				opts.StrokeWidth, cw, chh, ul, font.AutoFallback)
		}

		drawEnclosure(cv, ch.Enclosure, cx, cy, cw, chh, ch.TextColor)
	}

	return bmp, dstX, dstY, true
}

// mergeUnderlines groups consecutive Underline-style characters into
// one UnderlineInfo per run, keyed by the index of the run's first
// character (the character DrawChar is called with).
func mergeUnderlines(chars []caption.CaptionChar, originX, originY int, opts Options) map[int]font.UnderlineInfo {
	out := make(map[int]font.UnderlineInfo)
	i := 0
	for i < len(chars) {
		if chars[i].Style&caption.CharStyleUnderline == 0 {
			i++
			continue
		}
		start := i
		width := 0
		y := chars[i].Y
		for i < len(chars) && chars[i].Style&caption.CharStyleUnderline != 0 && chars[i].Y == y {
			width += chars[i].SectionWidth()
			i++
		}
		x := scale(chars[start].X-originX, opts.XMag)
		uy := scale(y-originY, opts.YMag) + scale(chars[start].SectionHeight(), opts.YMag) - 1
		out[start] = font.UnderlineInfo{X: x, Y: uy, Width: scale(width, opts.XMag)}
	}
	return out
}

func rectAt(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// drawEnclosure paints a 1-pixel border on each side named by
// enclosure, after the glyph has been drawn so the border is not
// painted over.
func drawEnclosure(cv *canvas.Canvas, enclosure caption.EnclosureStyle, x, y, w, h int, color caption.RGBA8) {
	if enclosure == caption.EnclosureNone || w <= 0 || h <= 0 {
		return
	}
	if enclosure&caption.EnclosureTop != 0 {
		cv.FillLine(y, x, x+w, color)
	}
	if enclosure&caption.EnclosureBottom != 0 {
		cv.FillLine(y+h-1, x, x+w, color)
	}
	if enclosure&caption.EnclosureLeft != 0 {
		for ly := y; ly < y+h; ly++ {
			cv.FillLine(ly, x, x+1, color)
		}
	}
	if enclosure&caption.EnclosureRight != 0 {
		for ly := y; ly < y+h; ly++ {
			cv.FillLine(ly, x+w-1, x+w, color)
		}
	}
}
