/*
NAME
  csi_test.go

DESCRIPTION
  csi_test.go covers CSI parameter parsing and the handful of
  final-byte commands decodeCSI applies directly to a decoder's
  register state.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decoder

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/captionvid/internal/logctx"
)

func TestParseCSIParams(t *testing.T) {
	cases := []struct {
		name     string
		buf      []byte
		params   []int
		consumed int
	}{
		{"no params", []byte{csiPLD}, nil, 0},
		{"one param", []byte{'1', '2', csiSVS}, []int{12}, 2},
		{"two params", []byte{'3', '6', ';', '8', csiSSM}, []int{36, 8}, 4},
		{"trailing semicolon param", []byte{'5', ';', csiSHS}, []int{5, 0}, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			params, n := parseCSIParams(c.buf)
			if n != c.consumed {
				t.Errorf("consumed = %d, want %d", n, c.consumed)
			}
			if diff := cmp.Diff(c.params, params); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeCSISetDisplayFormat(t *testing.T) {
	d := New(logctx.New(nil))
	d.Initialize(EncodingJIS, CaptionTypeCaption, ProfileA, LanguageFirst)
	buf := []byte{'6', '4', '0', ';', '4', '8', '0', csiSDF}
	n := d.decodeCSI(buf)
	if n != len(buf) {
		t.Fatalf("consumed = %d, want %d", n, len(buf))
	}
	if d.state.planeWidth != 640 || d.state.planeHeight != 480 {
		t.Errorf("planeWidth/planeHeight = %d/%d, want 640/480", d.state.planeWidth, d.state.planeHeight)
	}
}

func TestDecodeCSIRubyDepth(t *testing.T) {
	d := New(logctx.New(nil))
	d.Initialize(EncodingJIS, CaptionTypeCaption, ProfileA, LanguageFirst)
	d.decodeCSI([]byte{csiPLD})
	d.decodeCSI([]byte{csiPLD})
	if d.state.rubyDepth != 2 {
		t.Fatalf("rubyDepth = %d, want 2", d.state.rubyDepth)
	}
	d.decodeCSI([]byte{csiPLU})
	if d.state.rubyDepth != 1 {
		t.Errorf("rubyDepth = %d, want 1", d.state.rubyDepth)
	}
	// PLU at zero depth must not underflow.
	d.state.rubyDepth = 0
	d.decodeCSI([]byte{csiPLU})
	if d.state.rubyDepth != 0 {
		t.Errorf("rubyDepth = %d, want 0 (no underflow)", d.state.rubyDepth)
	}
}

func TestDecodeCSIOrnamentSetsStroke(t *testing.T) {
	d := New(logctx.New(nil))
	d.Initialize(EncodingJIS, CaptionTypeCaption, ProfileA, LanguageFirst)
	d.decodeCSI([]byte{'2', csiORN})
	if d.state.style&0x08 == 0 { // caption.CharStyleStroke
		t.Error("CharStyleStroke not set after ORN")
	}
}

func TestDecodeCSIMissingFinalByte(t *testing.T) {
	d := New(logctx.New(nil))
	d.Initialize(EncodingJIS, CaptionTypeCaption, ProfileA, LanguageFirst)
	n := d.decodeCSI([]byte{'1', '2'})
	if n != 2 {
		t.Errorf("consumed = %d, want 2 (all bytes, no final found)", n)
	}
}
