/*
NAME
  drcs.go

DESCRIPTION
  drcs.go decodes DRCS (Dynamically Redefinable Character Set)
  data_unit payloads (parameter tags 0x30 for 1-byte character codes,
  0x31 for 2-byte) into caption.DRCS glyphs, content-hashed with
  crypto/md5 so identical glyphs retransmitted across management
  packets or appearing in multiple elementary streams share one
  replacement lookup, per the Caption DOM's md5 field.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decoder

import (
	"crypto/md5"

	"github.com/ausocean/captionvid/caption"
)

// data_unit_parameter tags, as declared in the statement/management
// data_unit framing.
const (
	dataUnitStatementBody = 0x20
	dataUnitDRCS1         = 0x30
	dataUnitDRCS2         = 0x31
	dataUnitBitmap        = 0x35
)

// decodeDRCSUnit parses a DRCS data_unit payload (one or more
// code/font sections, each listing one or more characters) and
// installs each glyph into d.drcsTables keyed by its DRCS code (the
// two code bytes big-endian for 2-byte DRCS, or the raw 1-byte code
// for 1-byte DRCS). Truncated or malformed entries are
// dropped with a warning; other entries in the same unit still load.
func (d *Decoder) decodeDRCSUnit(buf []byte, twoByte bool) {
	if len(buf) < 1 {
		return
	}
	numCodes := int(buf[0])
	off := 1
	for i := 0; i < numCodes; i++ {
		if off+3 > len(buf) {
			d.ctx.Log().Warning("decoder: DRCS unit truncated at code header")
			return
		}
		var code uint32
		if twoByte {
			if off+2 > len(buf) {
				return
			}
			code = uint32(buf[off])<<8 | uint32(buf[off+1])
			off += 2
		} else {
			code = uint32(buf[off])
			off++
		}
		if off >= len(buf) {
			d.ctx.Log().Warning("decoder: DRCS unit truncated before font count")
			return
		}
		numFonts := int(buf[off])
		off++
		for f := 0; f < numFonts; f++ {
			if off+5 > len(buf) {
				d.ctx.Log().Warning("decoder: DRCS unit truncated at font header")
				return
			}
			// fontID/mode byte carries the DRCS mode (uncompressed
			// bitmap vs. the rarely-used run-length variants); only
			// the uncompressed 1/2/4bpp bitmap mode is supported here.
			off++ // fontID
			mode := buf[off]
			off++
			depthCode := buf[off]
			off++
			width := int(buf[off])
			off++
			height := int(buf[off])
			off++
			if mode != 0 {
				d.ctx.Log().Warning("decoder: unsupported DRCS font mode, skipping")
				continue
			}
			depth := drcsDepth(depthCode)
			if depth == 0 {
				d.ctx.Log().Warning("decoder: unsupported DRCS depth, skipping")
				continue
			}
			bits := width * height * depth
			n := (bits + 7) / 8
			if off+n > len(buf) {
				d.ctx.Log().Warning("decoder: DRCS bitmap truncated")
				return
			}
			pixels := append([]byte(nil), buf[off:off+n]...)
			off += n

			glyph := caption.DRCS{
				Width:  width,
				Height: height,
				Depth:  depth,
				Pixels: pixels,
				MD5:    md5.Sum(pixels),
			}
			d.drcsTables[code] = glyph
		}
	}
}

// drcsDepth maps the DRCS depth_code byte (as declared per-font in the
// data_unit) to bits-per-pixel; 0 means unsupported.
func drcsDepth(code byte) int {
	switch code {
	case 0:
		return 1
	case 1:
		return 2
	case 3:
		return 4
	default:
		return 0
	}
}
