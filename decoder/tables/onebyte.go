/*
NAME
  onebyte.go

DESCRIPTION
  onebyte.go transcribes the two one-byte code sets: JIS-X-0201 (half-
  width katakana) and Alphanumeric (identical to ASCII, including
  0x5C and 0x7E).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tables

// jisX0201Table covers bytes 0x21-0x5F: half-width katakana plus a
// handful of half-width punctuation marks.
var jisX0201Table = func() [0x5F - 0x21 + 1]rune {
	var t [0x5F - 0x21 + 1]rune
	t[0x21-0x21] = 0xFF61 // ｡
	t[0x22-0x21] = 0xFF62 // ｢
	t[0x23-0x21] = 0xFF63 // ｣
	t[0x24-0x21] = 0xFF64 // ､
	t[0x25-0x21] = 0xFF65 // ･
	// Half-width katakana ｦ..ﾝ run contiguously from U+FF66.
	for i := 0; i < 56; i++ {
		t[0x26-0x21+i] = rune(0xFF66 + i)
	}
	t[0x5E-0x21] = 0xFF9E // ﾞ (half-width voiced sound mark)
	t[0x5F-0x21] = 0xFF9F // ﾟ (half-width semi-voiced sound mark)
	return t
}()

// alphanumericTable covers bytes 0x20-0x7E: ASCII, except ARIB
// substitutes a full reversed solidus and overline at 0x5C/0x7E are
// kept identical to ASCII here, matching broadcast practice of
// treating the Alphanumeric set as plain ASCII for caption text (the
// backslash/overline substitution only matters for the legacy JIS
// Roman set, which is not separately exposed by this decoder).
var alphanumericTable = func() [0x7E - 0x20 + 1]rune {
	var t [0x7E - 0x20 + 1]rune
	for b := 0x20; b <= 0x7E; b++ {
		t[b-0x20] = rune(b)
	}
	return t
}()
