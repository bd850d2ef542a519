/*
NAME
  tables_test.go

DESCRIPTION
  tables_test.go covers the Lookup/LookupByte entry points and the
  per-set byte-width rule that the decoder's GL/GR dispatch depends on.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tables

import "testing"

func TestLookupKanjiSymbolRow(t *testing.T) {
	cp, pua, ok := Lookup(Kanji, 0x21, 0x21)
	if !ok {
		t.Fatal("Lookup(Kanji, 0x21, 0x21) not found")
	}
	if cp != 0x3000 {
		t.Errorf("codepoint = %#x, want 0x3000", cp)
	}
	if pua != 0 {
		t.Errorf("pua = %#x, want 0", pua)
	}
}

func TestLookupOutOfRangeBytes(t *testing.T) {
	cases := [][2]byte{{0x20, 0x21}, {0x21, 0x20}, {0x7F, 0x21}, {0x21, 0x7F}}
	for _, c := range cases {
		if _, _, ok := Lookup(Kanji, c[0], c[1]); ok {
			t.Errorf("Lookup(Kanji, %#x, %#x) = ok, want out-of-range miss", c[0], c[1])
		}
	}
}

func TestLookupUnsupportedSet(t *testing.T) {
	if _, _, ok := Lookup(Alphanumeric, 0x21, 0x21); ok {
		t.Error("Lookup(Alphanumeric, ...) should fail: Alphanumeric is a one-byte set")
	}
}

func TestLookupByteAlphanumeric(t *testing.T) {
	cp, ok := LookupByte(Alphanumeric, 0x41)
	if !ok || cp != 'A' {
		t.Errorf("LookupByte(Alphanumeric, 0x41) = %#x, %v, want 'A', true", cp, ok)
	}
}

func TestLookupByteJISX0201(t *testing.T) {
	if _, ok := LookupByte(JISX0201, 0x10); ok {
		t.Error("LookupByte(JISX0201, 0x10) should miss: byte is below the table's 0x21 floor")
	}
	if _, ok := LookupByte(JISX0201, 0x21); !ok {
		t.Error("LookupByte(JISX0201, 0x21) should hit: byte is the table's first valid code")
	}
}

func TestBytesPerChar(t *testing.T) {
	cases := map[CodesetID]int{
		JISX0201:     1,
		Alphanumeric: 1,
		DRCS1:        1,
		DRCS0:        2,
		Kanji:        2,
		Hiragana:     2,
		Katakana:     2,
	}
	for set, want := range cases {
		if got := BytesPerChar(set); got != want {
			t.Errorf("BytesPerChar(%v) = %d, want %d", set, got, want)
		}
	}
}
