/*
NAME
  statement.go

DESCRIPTION
  statement.go is the statement-body escape-sequence interpreter: the
  byte-dispatch loop over C0/GL/C1/GR bytes described in the decoder's
  framing table and ESC-sequence code-set designation. Turning the
  interpreter's current register state into a caption.CaptionChar
  (pushCaptionChar) lives in char.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decoder

import (
	"strings"

	"github.com/ausocean/captionvid/caption"
	"github.com/ausocean/captionvid/decoder/tables"
)

// session holds the per-Decode-call output being built; unlike
// statementState it is never retained across calls; each Decode call
// builds a fresh session and hands its regions to a fresh
// caption.Caption.
type session struct {
	regions      []caption.CaptionRegion
	cur          *caption.CaptionRegion
	text         strings.Builder
	flags        caption.Flags
	waitDuration int64
	usedDRCS     map[uint32]bool
	sawChar      bool
}

func newSession() *session {
	return &session{
		waitDuration: caption.DurationIndefinite,
		usedDRCS:     make(map[uint32]bool),
	}
}

// decodeStatementData scans a caption-statement data group's payload
// (a sequence of data_unit records) for a statement-body unit (tag
// 0x20) and any bundled DRCS units, running the statement body through
// the escape-sequence interpreter. It always updates the shared
// register file in d.state, even for a language the caller is not
// currently selecting, so GX/DRCS state stays coherent if the caller
// later switches language; it returns a Caption only when the body
// produced at least one visible character.
func (d *Decoder) decodeStatementData(payload []byte, pts int64, lang LanguageId) (*caption.Caption, error) {
	const unitHdrLen = 5
	sess := newSession()

	off := 0
	for off+unitHdrLen <= len(payload) {
		if payload[off] != 0x1F {
			return nil, ErrMalformedGroup
		}
		tag := payload[off+1]
		size := int(payload[off+2])<<16 | int(payload[off+3])<<8 | int(payload[off+4])
		start := off + unitHdrLen
		end := start + size
		if end > len(payload) {
			return nil, ErrMalformedGroup
		}
		body := payload[start:end]

		switch tag {
		case dataUnitStatementBody:
			d.runStatementBody(body, pts, sess)
		case dataUnitDRCS1, dataUnitDRCS2:
			d.decodeDRCSUnit(body, tag == dataUnitDRCS2)
		case dataUnitBitmap:
			d.ctx.Log().Warning("decoder: bitmap data unit not supported, ignoring")
		}
		off = end
	}

	if !sess.sawChar {
		return nil, nil
	}
	sess.closeRegion()

	c := &caption.Caption{
		Type:                caption.Type(d.capType),
		Flags:               sess.flags,
		ISO6392LanguageCode: d.langCodes[lang],
		PTS:                 pts,
		WaitDuration:        sess.waitDuration,
		PlaneWidth:          d.state.planeWidth,
		PlaneHeight:         d.state.planeHeight,
		Text:                sess.text.String(),
		Regions:             sess.regions,
		DRCSMap:             make(map[uint32]caption.DRCS, len(sess.usedDRCS)),
	}
	for code := range sess.usedDRCS {
		if g, ok := d.drcsTables[code]; ok {
			c.DRCSMap[code] = g
		}
	}
	return c, nil
}

// closeRegion appends the in-progress region (if any) to sess.regions.
func (s *session) closeRegion() {
	if s.cur != nil {
		s.regions = append(s.regions, *s.cur)
		s.cur = nil
	}
}

// runStatementBody executes the byte-dispatch loop over one
// statement-body data_unit's bytes.
func (d *Decoder) runStatementBody(body []byte, pts int64, sess *session) {
	i := 0
	for i < len(body) {
		b := body[i]
		switch {
		case b == c0ESC:
			i += 1 + d.decodeEscape(body[i+1:])
		case b == c1CSI:
			i += 1 + d.decodeCSI(body[i+1:])
		case b < c0SP:
			i += 1 + d.handleC0(b, body[i+1:], sess)
		case b == c0SP:
			d.pushSpace(pts, sess)
			i++
		case b >= 0x21 && b <= 0x7E:
			i += d.emitGL(body[i:], d.state.gl, pts, sess)
		case b == c0DEL:
			d.state.posX += d.state.sectionWidth()
			i++
		case b >= 0x80 && b <= 0x9F:
			i += 1 + d.handleC1(b, body[i+1:], sess)
		case b == 0xA0 || b == 0xFF:
			i++
		default: // 0xA1-0xFE: GR
			i += d.emitGR(body[i:], pts, sess)
		}
	}
}

// handleC0 applies a C0 control byte (other than ESC/CSI/SP/DEL, which
// runStatementBody dispatches directly) and returns how many
// additional parameter bytes it consumed.
func (d *Decoder) handleC0(b byte, rest []byte, sess *session) int {
	switch b {
	case c0NUL, c0BEL:
		return 0
	case c0APB:
		d.state.posX -= d.state.sectionWidth()
		return 0
	case c0APF:
		d.state.posX += d.state.sectionWidth()
		return 0
	case c0APD:
		d.state.posY += d.state.sectionHeight()
		return 0
	case c0APU:
		d.state.posY -= d.state.sectionHeight()
		return 0
	case c0APR:
		sess.closeRegion()
		d.state.posX = 0
		d.state.posY += d.state.sectionHeight()
		return 0
	case c0CS:
		sess.closeRegion()
		sess.regions = nil
		sess.flags |= caption.FlagClearScreen
		d.state.posX, d.state.posY = 0, 0
		return 0
	case c0LS0:
		d.state.gl = 0
		return 0
	case c0LS1:
		d.state.gl = 1
		return 0
	case c0PAPF:
		if len(rest) == 0 {
			return 0
		}
		count := int(rest[0] & 0x3F)
		d.state.posX += count * d.state.sectionWidth()
		return 1
	case c0CAN:
		sess.cur = nil
		return 0
	case c0SS2, c0SS3:
		// SS2/SS3 are handled as locking shifts: GL is set to G2/G3
		// and stays there until the next LS0/LS1/LS2/LS3, so every
		// following GL-range byte, not only the next character, is
		// looked up in G2/G3.
		if b == c0SS2 {
			d.state.gl = 2
		} else {
			d.state.gl = 3
		}
		return 0
	case c0APS:
		if len(rest) < 2 {
			return 0
		}
		row, col := int(rest[0]), int(rest[1])
		d.state.posY = row * d.state.sectionHeight()
		d.state.posX = col * d.state.sectionWidth()
		return 2
	default:
		return 0
	}
}

// handleC1 applies a C1 control byte and returns how many additional
// parameter bytes it consumed.
func (d *Decoder) handleC1(b byte, rest []byte, sess *session) int {
	switch b {
	case c1BKF:
		d.state.textColor = caption.B24Palette[0]
	case c1RDF:
		d.state.textColor = caption.B24Palette[1]
	case c1GRF:
		d.state.textColor = caption.B24Palette[2]
	case c1YLF:
		d.state.textColor = caption.B24Palette[3]
	case c1BLF:
		d.state.textColor = caption.B24Palette[4]
	case c1MGF:
		d.state.textColor = caption.B24Palette[5]
	case c1CNF:
		d.state.textColor = caption.B24Palette[6]
	case c1WHF:
		d.state.textColor = caption.B24Palette[7]
	case c1SSZ:
		d.state.applySizeMode(sizeSmall)
	case c1MSZ:
		d.state.applySizeMode(sizeMiddle)
	case c1NSZ:
		d.state.applySizeMode(sizeNormal)
	case c1COL:
		if len(rest) > 0 {
			d.state.textColor = caption.B24Palette[rest[0]&0x7F]
			return 1
		}
	case c1HLC:
		if len(rest) > 0 {
			d.state.enclosure = caption.EnclosureStyle(rest[0] & 0x0F)
			return 1
		}
	case c1SPL:
		d.state.style &^= caption.CharStyleUnderline
	case c1STL:
		d.state.style |= caption.CharStyleUnderline
	case c1TIME:
		if len(rest) >= 2 {
			ms := int64(rest[0])<<8 | int64(rest[1])
			if ms == 0 {
				sess.waitDuration = caption.DurationIndefinite
			} else {
				sess.waitDuration = ms
			}
			return 2
		}
	}
	return 0
}

// decodeEscape interprets the byte(s) following an ESC (0x1B) and
// returns how many bytes it consumed.
func (d *Decoder) decodeEscape(rest []byte) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case 0x24: // two/three-byte 2-byte-set G-register designation
		return 1 + d.decodeDesignate2Byte(rest[1:])
	case 0x28, 0x29, 0x2A, 0x2B: // 1-byte-set designation into G0..G3
		return 1 + d.decodeDesignate1Byte(int(rest[0]-0x28), rest[1:])
	case 0x6E: // LS2
		d.state.gl = 2
		return 1
	case 0x6F: // LS3
		d.state.gl = 3
		return 1
	case 0x7E: // LS1R
		d.state.gr = 1
		return 1
	case 0x7D:
		// This decoder treats ESC 0x7D as selecting middle size,
		// the same as the C1 MSZ control.
		d.state.applySizeMode(sizeMiddle)
		return 1
	case 0x7C: // LS3R
		d.state.gr = 3
		return 1
	default:
		d.ctx.Log().Warning("decoder: unsupported escape sequence, ignoring")
		return 1
	}
}

// decodeDesignate2Byte handles ESC 0x24 ..., designating a two-byte
// code set into G0 (bare final byte) or into G0..G3 (intermediate byte
// 0x28..0x2B then final byte).
func (d *Decoder) decodeDesignate2Byte(rest []byte) int {
	if len(rest) == 0 {
		return 0
	}
	if rest[0] >= 0x28 && rest[0] <= 0x2B {
		if len(rest) < 2 {
			return 1
		}
		g := int(rest[0] - 0x28)
		d.state.gx[g] = codeset{finalByteToSet(rest[1]), 2}
		return 2
	}
	d.state.gx[0] = codeset{finalByteToSet(rest[0]), 2}
	return 1
}

// decodeDesignate1Byte handles ESC 0x28|0x29|0x2A|0x2B <final>,
// designating a one-byte code set into register g.
func (d *Decoder) decodeDesignate1Byte(g int, rest []byte) int {
	if len(rest) == 0 {
		return 0
	}
	set := finalByteToSet(rest[0])
	d.state.gx[g] = codeset{set, tables.BytesPerChar(set)}
	return 1
}

// finalByteToSet maps an ISO-2022-style final byte to the code table
// it designates. Unknown final bytes fall back to Alphanumeric so an
// unrecognised designation degrades to plain text instead of producing
// garbage lookups against the wrong table.
func finalByteToSet(final byte) tables.CodesetID {
	switch final {
	case 0x42: // 'B' Kanji
		return tables.Kanji
	case 0x30: // Hiragana
		return tables.Hiragana
	case 0x31: // Katakana
		return tables.Katakana
	case 0x4A, 0x40: // Alphanumeric / ASCII-compatible
		return tables.Alphanumeric
	case 0x49: // JIS X 0201
		return tables.JISX0201
	case 0x4B: // Latin Extension
		return tables.LatinExtension
	case 0x4C: // Latin Special
		return tables.LatinSpecial
	case 0x70: // 2-byte DRCS
		return tables.DRCS0
	case 0x71: // 1-byte DRCS
		return tables.DRCS1
	default:
		return tables.Alphanumeric
	}
}
