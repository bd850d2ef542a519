/*
NAME
  management.go

DESCRIPTION
  management.go parses caption management data groups
  (data_group_id&0x0F == 0): declared languages, per-language
  TCS/iso6392_language_code (the format byte is read only for its TCS
  bits), and any DRCS
  bundled with the management packet. Retransmissions (packets sharing
  data_group_id&0xF0 with the previous accepted management packet) are
  idempotent-skipped, matching broadcast practice of repeating
  management data for channel-change resilience.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decoder

// tcsUTF8 is the TCS (Text Coding Scheme) value a management packet
// uses to declare that a language's statement data is UTF-8 rather
// than the two-byte JIS/Latin code-table scheme.
const tcsUTF8 = 1

// decodeManagementData parses one caption management data group's
// payload and updates decoder-wide state (declared language codes,
// resolved encoding scheme when Auto, DRCS tables). It never fails
// outright: malformed management data is logged and ignored, since a
// single bad management packet should not abort an otherwise healthy
// stream.
func (d *Decoder) decodeManagementData(groupID byte, payload []byte) {
	retransmission := groupID&0xF0
	if d.haveMgmt && retransmission == byte(d.lastMgmtID) {
		return
	}

	if len(payload) < 1 {
		d.ctx.Log().Warning("decoder: management data group too short")
		return
	}
	// payload[0]: TMD (Timing Mode Dependent) in bits 7-6.
	off := 1
	tmd := payload[0] >> 6
	if tmd == 1 || tmd == 2 { // OTM or timing-specified: an OTM field follows.
		off += 5
	}
	if off >= len(payload) {
		d.ctx.Log().Warning("decoder: management data truncated before num_languages")
		return
	}
	numLang := int(payload[off])
	off++

	var detectedTCS, detectedUTF8, detectedJIS, detectedLatin bool
	for i := 0; i < numLang && off < len(payload); i++ {
		if off+4 > len(payload) {
			d.ctx.Log().Warning("decoder: management data truncated in language block")
			break
		}
		languageTag := payload[off] >> 5
		dmf := payload[off] & 0x0F
		off++
		if dmf == 0x0C || dmf == 0x0D || dmf == 0x0E {
			off++ // optional DMF byte present for these display modes.
		}
		iso6392 := uint32(payload[off])<<16 | uint32(payload[off+1])<<8 | uint32(payload[off+2])
		off += 3
		if off >= len(payload) {
			break
		}
		format := payload[off]
		off++
		tcs := (format >> 5) & 0x3

		lang := LanguageId(languageTag + 1)
		if lang == LanguageFirst || lang == LanguageSecond {
			d.langCodes[lang] = iso6392
		}

		switch iso6392 {
		case isoJPN:
			detectedJIS = true
		case isoPOR, isoSPA:
			detectedLatin = true
		case isoENG, isoTGL:
			detectedUTF8 = true
		}
		if tcs == tcsUTF8 {
			detectedTCS = true
		}
	}

	if d.scheme == EncodingAuto {
		switch {
		case detectedTCS:
			d.activScheme = EncodingUTF8
		case detectedJIS:
			d.activScheme = EncodingJIS
		case detectedLatin:
			d.activScheme = EncodingABNTLatin
		case detectedUTF8:
			d.activScheme = EncodingUTF8
		default:
			d.activScheme = EncodingJIS
		}
	}

	d.lastMgmtID = int(retransmission)
	d.haveMgmt = true

	// Any data_unit entries following the language block (e.g. a
	// bundled DRCS table) are handled the same way a statement body's
	// DRCS data units are: scan for data_unit headers in the
	// remainder and dispatch by tag.
	if off < len(payload) {
		d.scanDataUnits(payload[off:])
	}
}

// ISO 639-2 three-letter codes packed big-endian into 3 bytes, as
// management data declares them.
const (
	isoJPN = uint32('j')<<16 | uint32('p')<<8 | uint32('n')
	isoENG = uint32('e')<<16 | uint32('n')<<8 | uint32('g')
	isoPOR = uint32('p')<<16 | uint32('o')<<8 | uint32('r')
	isoSPA = uint32('s')<<16 | uint32('p')<<8 | uint32('a')
	isoTGL = uint32('t')<<16 | uint32('g')<<8 | uint32('l')
)

// scanDataUnits walks a sequence of data_unit records (each
// {unit_separator=0x1F, data_unit_parameter, data_unit_size(3 bytes
// big-endian), data_unit_data}) and dispatches DRCS units to
// decodeDRCSUnit; other tags are ignored here (statement bodies are
// handled by decodeStatementData's own copy of this scan, since only
// a statement body's 0x20 units feed the escape-sequence interpreter).
func (d *Decoder) scanDataUnits(buf []byte) {
	const unitHdrLen = 5
	off := 0
	for off+unitHdrLen <= len(buf) {
		if buf[off] != 0x1F {
			break
		}
		tag := buf[off+1]
		size := int(buf[off+2])<<16 | int(buf[off+3])<<8 | int(buf[off+4])
		start := off + unitHdrLen
		end := start + size
		if end > len(buf) {
			d.ctx.Log().Warning("decoder: data unit truncated")
			break
		}
		switch tag {
		case dataUnitDRCS1, dataUnitDRCS2:
			d.decodeDRCSUnit(buf[start:end], tag == dataUnitDRCS2)
		}
		off = end
	}
}
