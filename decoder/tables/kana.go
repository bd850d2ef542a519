/*
NAME
  kana.go

DESCRIPTION
  kana.go transcribes the Hiragana and Katakana two-byte code tables
  (JIS rows 4 and 5 respectively), which cover the full modern kana
  repertoire used in broadcast captions.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tables

// hiraganaTable and katakanaTable are keyed by the two-byte table index
// (row*94+col); both sets are invoked as their own G0..G3 entry
// (kHiraganaEntry/kKatakanaEntry) rather than sharing the Kanji row, so
// indices here are relative to row 0 of each table's own invocation,
// i.e. computed the same way as width94(b1, b2) with b1 fixed per set.
var hiraganaTable = func() map[int]rune {
	// Hiragana runs contiguously from U+3041 (ぁ) through U+3093 (ん)
	// at JIS row 4, columns 1-83, followed by 3 punctuation marks.
	m := make(map[int]rune, 86)
	base := rune(0x3041)
	for col := 0; col < 83; col++ {
		m[col] = base + rune(col)
	}
	m[83] = 0x309B // ゛
	m[84] = 0x309C // ゜
	m[85] = 0x30FC // ー (prolonged sound mark, shared with katakana)
	return m
}()

var katakanaTable = func() map[int]rune {
	// Katakana runs contiguously from U+30A1 (ァ) through U+30F6 (ヶ)
	// at JIS row 5, columns 1-86.
	m := make(map[int]rune, 89)
	base := rune(0x30A1)
	for col := 0; col < 86; col++ {
		m[col] = base + rune(col)
	}
	m[86] = 0x309B // ゛
	m[87] = 0x309C // ゜
	m[88] = 0x30FC // ー
	return m
}()
