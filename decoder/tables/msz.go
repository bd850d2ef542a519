/*
NAME
  msz.go

DESCRIPTION
  msz.go implements the MSZ (middle-size, half-width) replacement rule:
  when a broadcaster-declared MSZ character size is active and
  replace_msz_fullwidth_alphanumeric is enabled, full-width Latin
  digits, letters and ASCII punctuation are rewritten to their
  half-width equivalents so that half-height text also renders at
  half width instead of looking stretched.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tables

// MSZReplace returns the half-width equivalent of r if one is defined
// by the MSZ replacement rule. Only the Halfwidth and Fullwidth Forms
// block's Latin letters/digits/punctuation (U+FF01-U+FF5E, a fixed
// 0xFEE0 offset from ASCII 0x21-0x7E) and IDEOGRAPHIC SPACE (U+3000,
// replaced by SPACE) participate; any other r, including one already
// ASCII, is the common case when the decoder's alphanumeric table has
// been consulted directly and is returned unchanged with ok=false.
func MSZReplace(r rune) (rune, bool) {
	if r >= 0xFF01 && r <= 0xFF5E {
		return r - 0xFEE0, true
	}
	if r == 0x3000 {
		return 0x0020, true // IDEOGRAPHIC SPACE -> SPACE
	}
	return r, false
}
