/*
NAME
  color.go

DESCRIPTION
  color.go defines the RGBA8888 colour type used throughout the caption DOM
  and rendering pipeline, along with the default ARIB STD-B24 / ABNT NBR
  15606-1 colour lookup table (CLUT) addressed by colour-index control sets.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package caption provides the decoded caption value model: CaptionChar,
// CaptionRegion, Caption and DRCS. Types here are plain data; equality
// ignores derived fields and there are no back-references, keeping the
// Caption -> CaptionRegion -> CaptionChar containment tree-shaped.
package caption

// RGBA8 is a non-premultiplied 8-bit-per-channel colour, kept as a plain
// 4-byte struct (rather than stdlib image/color.RGBA) so that CaptionChar,
// DRCS and Image stay POD-compatible for zero-copy bridging to a C ABI.
type RGBA8 struct {
	R, G, B, A uint8
}

// Opaque returns true if the colour is fully opaque.
func (c RGBA8) Opaque() bool { return c.A == 0xFF }

// Transparent returns true if the colour is fully transparent.
func (c RGBA8) Transparent() bool { return c.A == 0 }

var (
	// ColorTransparent is fully-transparent black, used as the default
	// back_color before any SCR/raster-colour control has been seen.
	ColorTransparent = RGBA8{0, 0, 0, 0}
	// ColorBlack and ColorWhite are opaque black and white; ColorWhite
	// is the decoder's default text_color.
	ColorBlack = RGBA8{0, 0, 0, 0xFF}
	ColorWhite = RGBA8{0xFF, 0xFF, 0xFF, 0xFF}
)

// B24Palette is the default ARIB STD-B24 8-colour CLUT addressed by the
// low 3 bits of a colour-control byte (BKF/RDF/GRF/YLF/BLF/MGF/CNF/WHF in
// the C0/C1 table, and the SCR/ORN/colour-map CSI extension beyond
// index 7). Index 0 is black, matching the C1 control byte ordering
// Black/Red/Green/Yellow/Blue/Magenta/Cyan/White.
var B24Palette = [128]RGBA8{
	0: {0x00, 0x00, 0x00, 0xFF}, // Black
	1: {0xFF, 0x00, 0x00, 0xFF}, // Red
	2: {0x00, 0xFF, 0x00, 0xFF}, // Green
	3: {0xFF, 0xFF, 0x00, 0xFF}, // Yellow
	4: {0x00, 0x00, 0xFF, 0xFF}, // Blue
	5: {0xFF, 0x00, 0xFF, 0xFF}, // Magenta
	6: {0x00, 0xFF, 0xFF, 0xFF}, // Cyan
	7: {0xFF, 0xFF, 0xFF, 0xFF}, // White
}

func init() {
	// Indices 8..127 form the extended CLUT addressed by the colour-map
	// ("CSI ... SSM"/colour extension) control sequences, generated the
	// same way the 8-colour base is built: the low 3 bits switch R/G/B
	// on (0xFF) or off (0x00), bit 3 halves all three channels, and every
	// entry is opaque. Higher bits are ignored, so the 16-entry pattern
	// repeats up to index 127.
	for i := 8; i < 128; i++ {
		lo := i & 0x7
		half := i&0x8 != 0
		r, g, b := component(lo, 0), component(lo, 1), component(lo, 2)
		if half {
			r, g, b = r/2, g/2, b/2
		}
		B24Palette[i] = RGBA8{r, g, b, 0xFF}
	}
}

func component(idx int, shift uint) uint8 {
	if idx&(1<<shift) != 0 {
		return 0xFF
	}
	return 0x00
}
