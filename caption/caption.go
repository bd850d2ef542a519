/*
NAME
  caption.go

DESCRIPTION
  caption.go defines the decoded caption value model produced by the
  decoder package and consumed by the render package: CaptionChar,
  CaptionRegion, Caption, and DRCS.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package caption

import "math"

// PTSNoPTS marks an undefined presentation timestamp.
const PTSNoPTS int64 = math.MinInt64

// DurationIndefinite marks a caption whose end time is undetermined; it
// should be displayed until the next caption with a greater PTS appears.
const DurationIndefinite int64 = math.MaxInt64

// CharType distinguishes a CaptionChar's underlying glyph source.
type CharType int

const (
	CharTypeText CharType = iota
	CharTypeDRCS
	CharTypeDRCSReplaced
)

// CharStyle is a bitflag set of per-character text styles.
type CharStyle uint8

const (
	CharStyleDefault   CharStyle = 0
	CharStyleBold      CharStyle = 1 << 0
	CharStyleItalic    CharStyle = 1 << 1
	CharStyleUnderline CharStyle = 1 << 2
	CharStyleStroke    CharStyle = 1 << 3
)

// EnclosureStyle is a bitflag set of sides on which a character cell
// draws a 1-pixel enclosure border.
type EnclosureStyle uint8

const (
	EnclosureNone   EnclosureStyle = 0
	EnclosureBottom EnclosureStyle = 1 << 0
	EnclosureRight  EnclosureStyle = 1 << 1
	EnclosureTop    EnclosureStyle = 1 << 2
	EnclosureLeft   EnclosureStyle = 1 << 3
)

// Type is the caption stream type, carried on the wire as the PES
// data_identifier byte.
type Type uint8

const (
	TypeCaption     Type = 0x80
	TypeSuperimpose Type = 0x81
	TypeDefault          = TypeCaption
)

// Flags is a bitflag set of caption-level directives.
type Flags uint8

const (
	FlagsNone         Flags = 0
	FlagClearScreen   Flags = 1 << 0
	FlagDefault       Flags = 1 << 1
)

// CaptionChar is one logical glyph cell, positioned on the virtual
// caption plane.
type CaptionChar struct {
	Type CharType

	// Codepoint is the UCS-4 Unicode code point. Zero if Type is
	// CharTypeDRCS.
	Codepoint rune
	// PUACodepoint is non-zero only for ARIB Gaiji symbols that also
	// have a Private Use Area fallback mapping.
	PUACodepoint rune
	// DRCSCode keys into the enclosing Caption's DRCSMap; set when
	// Type is CharTypeDRCS or CharTypeDRCSReplaced.
	DRCSCode uint32

	X, Y                   int
	CharWidth, CharHeight  int
	CharHSpacing           int
	CharVSpacing           int
	CharHScale, CharVScale float32

	TextColor   RGBA8
	BackColor   RGBA8
	StrokeColor RGBA8

	Style     CharStyle
	Enclosure EnclosureStyle

	// UTF8 is the UTF-8 rendering of Codepoint; empty if Type is
	// CharTypeDRCS.
	UTF8 string

	PTS      int64
	Duration int64
}

// SectionWidth is the derived advance width of the character cell: it is
// always a function of the stored fields and is never itself stored.
func (c *CaptionChar) SectionWidth() int {
	return int(math.Floor(float64(c.CharWidth+c.CharHSpacing) * float64(c.CharHScale)))
}

// SectionHeight is the derived advance height of the character cell.
func (c *CaptionChar) SectionHeight() int {
	return int(math.Floor(float64(c.CharHeight+c.CharVSpacing) * float64(c.CharVScale)))
}

// CaptionRegion is a contiguous run of CaptionChars sharing the same
// layout attributes (position/size/ruby-ness); produced whenever those
// attributes change during decode.
type CaptionRegion struct {
	X, Y          int
	Width, Height int
	IsRuby        bool
	Chars         []CaptionChar
}

// DRCS is a downloaded raster glyph (Dynamically Redefinable Character
// Set). MD5 is content-hashed at load time so identical glyphs appearing
// across elementary streams can share a replacement lookup.
type DRCS struct {
	Width, Height int
	// Depth is bits per pixel: 1, 2 or 4.
	Depth int
	// Pixels holds Width*Height samples packed Depth bits per pixel,
	// row-major, most-significant-bit first within each byte.
	Pixels []byte
	// MD5 is the 128-bit content hash of Pixels.
	MD5 [16]byte
}

// Caption is one decoded caption unit: styled text plus layout, emitted
// fresh by each Decoder.Decode call. The decoder owns no caption memory
// across calls; the renderer that later ingests a Caption clones its
// DRCSMap so Captions can be handed off freely.
type Caption struct {
	Type                  Type
	Flags                 Flags
	ISO6392LanguageCode   uint32
	PTS                   int64
	// WaitDuration is the caption's intended display duration in
	// milliseconds, or DurationIndefinite.
	WaitDuration          int64
	PlaneWidth            int
	PlaneHeight           int
	HasBuiltinSound       bool
	BuiltinSoundID        uint8
	// Text is a plain-text rendering of all regions concatenated in
	// drawing order, primarily useful for logging/debugging.
	Text                  string
	// Regions is in drawing (painter's-algorithm) order: later regions
	// paint over earlier pixels of the same caption.
	Regions               []CaptionRegion
	// DRCSMap maps DRCSCode to the glyph data referenced by any
	// CaptionChar in Regions. Every DRCSCode used by a CaptionChar in
	// this Caption must have a corresponding entry here.
	DRCSMap               map[uint32]DRCS
}

// Clone returns a deep copy of c, including DRCSMap and all Regions.
func (c *Caption) Clone() *Caption {
	if c == nil {
		return nil
	}
	out := *c
	if c.Regions != nil {
		out.Regions = make([]CaptionRegion, len(c.Regions))
		for i, r := range c.Regions {
			rc := r
			rc.Chars = append([]CaptionChar(nil), r.Chars...)
			out.Regions[i] = rc
		}
	}
	if c.DRCSMap != nil {
		out.DRCSMap = make(map[uint32]DRCS, len(c.DRCSMap))
		for k, v := range c.DRCSMap {
			vc := v
			vc.Pixels = append([]byte(nil), v.Pixels...)
			out.DRCSMap[k] = vc
		}
	}
	return &out
}

// Image is a single rendered bitmap region, positioned absolutely on the
// target video frame.
type Image struct {
	PTS, Duration int64
	DstX, DstY    int
	Width, Height int
	Stride        int
	// PixelFormat is always RGBA8888; kept as a field for forward
	// compatibility with the public API described in the external
	// interface contract.
	PixelFormat string
	Pixels      []byte
}

const PixelFormatRGBA8888 = "RGBA8888"
