/*
NAME
  font.go

DESCRIPTION
  font.go declares the FontProvider and TextRenderer interfaces the
  renderer consumes to resolve and rasterize glyphs; these are
  deliberately thin Go interfaces rather than concrete platform
  bindings, so CoreText/DirectWrite/Fontconfig/FreeType implementations
  can be supplied by a caller without the render package importing any
  platform package directly, the same abstraction boundary this
  toolkit draws around device/alsa for platform audio I/O.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package font declares the provider/rasterizer interfaces the render
// package consumes, plus a NullProvider and a BasicTextRenderer built
// on golang.org/x/image/font/basicfont for callers that don't need
// platform-accurate text shaping.
package font

import (
	"errors"

	"github.com/ausocean/captionvid/canvas"
	"github.com/ausocean/captionvid/caption"
)

// ErrFontNotFound is returned by FontProvider.GetFontFace when no face
// in family matches.
var ErrFontNotFound = errors.New("font: no matching face found")

// Face identifies a resolved font face.
type Face struct {
	Family         string
	PostscriptName string
	Filename       string
	FaceIndex      int
}

// FontProvider resolves a (family, optional codepoint) pair to a
// concrete font face, platform font-discovery mechanics kept entirely
// on the implementer's side of this interface.
type FontProvider interface {
	SetLanguage(iso6392 uint32)
	GetFontFace(family string, codepoint rune) (Face, error)
}

// FallbackPolicy controls TextRenderer.DrawChar's behaviour when the
// primary face lacks a glyph for the requested code point.
type FallbackPolicy int

const (
	AutoFallback FallbackPolicy = iota
	FailOnCodePointNotFound
)

// UnderlineInfo describes an underline segment spanning one or more
// consecutive Underline-style characters, merged before drawing so a
// run of underlined characters gets one continuous line rather than
// one per cell.
type UnderlineInfo struct {
	X, Y, Width int
}

// DrawContext is an opaque per-bitmap drawing session returned by
// TextRenderer.BeginDraw.
type DrawContext interface{}

// TextRenderer rasterizes glyphs onto a canvas.Bitmap.
type TextRenderer interface {
	SetLanguage(iso6392 uint32)
	SetFontFamily(family []string)
	BeginDraw(bmp *canvas.Bitmap) DrawContext
	DrawChar(ctx DrawContext, x, y int, codepoint rune, style caption.CharStyle,
		color, strokeColor caption.RGBA8, strokeWidth float32, cellW, cellH int,
		underline *UnderlineInfo, policy FallbackPolicy) error
	EndDraw(ctx DrawContext)
}

// NullProvider never resolves a face; useful for callers that render
// only DRCS bitmap characters and never plain text.
type NullProvider struct{}

func (NullProvider) SetLanguage(uint32) {}
func (NullProvider) GetFontFace(string, rune) (Face, error) {
	return Face{}, ErrFontNotFound
}
