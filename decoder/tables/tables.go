/*
NAME
  tables.go

DESCRIPTION
  tables.go provides the static code tables mapping ARIB STD-B24 /
  ABNT NBR 15606-1 byte sequences to Unicode code points, addressed by
  the (row, col) scheme used throughout the decoder's G0..G3 code-set
  invocation machine: row = b1-0x21, col = b2-0x21, table index =
  row*94+col for two-byte sets, or the byte itself for one-byte sets.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tables provides the static ARIB/ABNT code tables consulted by
// the decoder's graphics-set invocation machine: Kanji/Symbol,
// Hiragana, Katakana, JIS-X-0201, Alphanumeric, Latin/Latin-Extension/
// Latin-Special, and the ARIB Gaiji extension (with its PUA fallback
// mapping), plus the MSZ half-width replacement rule.
package tables

// CodesetID names one of the fixed ARIB/ABNT code tables.
type CodesetID int

const (
	Kanji CodesetID = iota
	Hiragana
	Katakana
	JISX0201      // 1-byte halfwidth katakana, invoked into GL/GR.
	Alphanumeric  // 1-byte, identical to ASCII (0x5C and 0x7E included).
	Macro         // Not a lookup table; macros expand to control-code sequences.
	LatinExtension
	LatinSpecial
	DRCS0 // Placeholder entries; actual glyph data lives in the decoder's DRCS map, not here.
	DRCS1
)

// width94 converts a two-byte JIS pair (row/col bytes, GL range
// 0x21-0x7E) into a zero-based table index. Callers must range-check.
func width94(b1, b2 byte) int {
	return int(b1-0x21)*94 + int(b2-0x21)
}

// Lookup resolves a two-byte code point from the two-byte table
// identified by set. ok is false if set is not a two-byte table or the
// bytes are out of the valid GL range or unmapped.
func Lookup(set CodesetID, b1, b2 byte) (codepoint rune, pua rune, ok bool) {
	if b1 < 0x21 || b1 > 0x7E || b2 < 0x21 || b2 > 0x7E {
		return 0, 0, false
	}
	idx := width94(b1, b2)
	switch set {
	case Kanji:
		if cp, found := kanjiCodepoint(idx); found {
			return cp, 0, true
		}
		if e, found := gaijiTable[idx]; found {
			return e.codepoint, e.pua, true
		}
		return 0, 0, false
	case Hiragana:
		if r, found := hiraganaTable[idx]; found {
			return r, 0, true
		}
		return 0, 0, false
	case Katakana:
		if r, found := katakanaTable[idx]; found {
			return r, 0, true
		}
		return 0, 0, false
	case LatinExtension:
		if r, found := latinExtensionTable[idx]; found {
			return r, 0, true
		}
		return 0, 0, false
	case LatinSpecial:
		if r, found := latinSpecialTable[idx]; found {
			return r, 0, true
		}
		return 0, 0, false
	default:
		return 0, 0, false
	}
}

// LookupByte resolves a one-byte code point from a one-byte table
// identified by set (JISX0201 or Alphanumeric).
func LookupByte(set CodesetID, b byte) (codepoint rune, ok bool) {
	switch set {
	case JISX0201:
		if b < 0x21 || b > 0x5F {
			return 0, false
		}
		return jisX0201Table[b-0x21], true
	case Alphanumeric:
		if b < 0x20 || b > 0x7E {
			return 0, false
		}
		return alphanumericTable[b-0x20], true
	default:
		return 0, false
	}
}

// BytesPerChar reports how many bytes a character in set occupies.
// DRCS1 names the 1-byte-code DRCS variant (data_unit tag 0x30); DRCS0
// the 2-byte-code variant (tag 0x31).
func BytesPerChar(set CodesetID) int {
	switch set {
	case JISX0201, Alphanumeric, DRCS1:
		return 1
	default:
		return 2
	}
}
