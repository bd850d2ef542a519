/*
NAME
  decoder_test.go

DESCRIPTION
  decoder_test.go exercises the Decoder against hand-built PES fixtures
  covering the code-set designation, size-mode and region-splitting
  behaviours of the statement-body interpreter, plus basic framing
  error handling.

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
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ausocean/captionvid/caption"
	"github.com/ausocean/captionvid/internal/logctx"
)

// buildDataUnit wraps body in a statement-body data_unit record.
func buildDataUnit(tag byte, body []byte) []byte {
	n := len(body)
	out := []byte{0x1F, tag, byte(n >> 16), byte(n >> 8), byte(n)}
	return append(out, body...)
}

// buildDataGroup wraps payload in a data_group header addressed to
// groupID (language/management selector in the low nibble).
func buildDataGroup(groupID byte, payload []byte) []byte {
	n := len(payload)
	out := []byte{groupID, 0, 0, byte(n >> 8), byte(n)}
	return append(out, payload...)
}

// buildPES wraps one or more data groups in a minimal PES private-data
// header (data_identifier, private_stream_id, zero-length header).
func buildPES(dataID byte, groups ...[]byte) []byte {
	out := []byte{dataID, 0xFF, 0x00}
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// statementFixture builds a single-language (lang 1) statement PES
// payload whose statement body is body.
func statementFixture(body []byte) []byte {
	unit := buildDataUnit(dataUnitStatementBody, body)
	group := buildDataGroup(0x01, unit)
	return buildPES(byte(CaptionTypeCaption), group)
}

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	d := New(logctx.New(nil))
	if !d.Initialize(EncodingJIS, CaptionTypeCaption, ProfileA, LanguageFirst) {
		t.Fatal("Initialize failed")
	}
	return d
}

// S1: ESC $ B designates Kanji into G0; 0x21 0x21 resolves via JIS row
// 1 to the ideographic space, U+3000.
func TestDecodeKanjiDesignation(t *testing.T) {
	d := newTestDecoder(t)
	body := []byte{0x1B, 0x24, 0x42, 0x21, 0x21}
	status, c, err := d.Decode(statementFixture(body), 1000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if status != StatusGotCaption {
		t.Fatalf("status = %v, want StatusGotCaption", status)
	}
	if len(c.Regions) != 1 || len(c.Regions[0].Chars) != 1 {
		t.Fatalf("regions = %+v, want exactly one region with one char", c.Regions)
	}
	ch := c.Regions[0].Chars[0]
	if ch.Codepoint != 0x3000 {
		t.Errorf("codepoint = %#x, want 0x3000", ch.Codepoint)
	}
	if ch.Type != caption.CharTypeText {
		t.Errorf("type = %v, want CharTypeText", ch.Type)
	}
}

// S2: a bare LS0 (no-op, G0 already selected), the middle-size
// pseudo-escape, then "!" resolved from the default Alphanumeric G0.
func TestDecodeMiddleSizeAlphanumeric(t *testing.T) {
	d := newTestDecoder(t)
	body := []byte{c0LS0, c0ESC, 0x7D, 0x21}
	_, c, err := d.Decode(statementFixture(body), 2000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(c.Regions) != 1 || len(c.Regions[0].Chars) != 1 {
		t.Fatalf("regions = %+v, want exactly one region with one char", c.Regions)
	}
	ch := c.Regions[0].Chars[0]
	if ch.Codepoint != 0x21 {
		t.Errorf("codepoint = %#x, want 0x21", ch.Codepoint)
	}
	if ch.CharHScale != 0.5 {
		t.Errorf("CharHScale = %v, want 0.5", ch.CharHScale)
	}
}

// S4: a character at normal size followed by one at middle size must
// split into two regions, since the size transition changes
// section_height.
func TestDecodeSizeTransitionSplitsRegion(t *testing.T) {
	d := newTestDecoder(t)
	body := []byte{0x21, c1MSZ, 0x22}
	_, c, err := d.Decode(statementFixture(body), 3000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(c.Regions) != 2 {
		t.Fatalf("len(Regions) = %d, want 2", len(c.Regions))
	}
	if c.Regions[0].Height == c.Regions[1].Height {
		t.Errorf("Regions[0].Height == Regions[1].Height (%d), want a size-mode-driven change", c.Regions[0].Height)
	}
	if len(c.Regions[0].Chars) != 1 || len(c.Regions[1].Chars) != 1 {
		t.Fatalf("want one char per region, got %d and %d", len(c.Regions[0].Chars), len(c.Regions[1].Chars))
	}
}

// Consecutive characters at the same position/size/ruby state must
// stay in one region and accumulate width.
func TestDecodeSameStateMergesRegion(t *testing.T) {
	d := newTestDecoder(t)
	body := []byte{0x21, 0x22, 0x23}
	_, c, err := d.Decode(statementFixture(body), 4000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(c.Regions) != 1 {
		t.Fatalf("len(Regions) = %d, want 1", len(c.Regions))
	}
	if len(c.Regions[0].Chars) != 3 {
		t.Fatalf("len(Chars) = %d, want 3", len(c.Regions[0].Chars))
	}
	wantWidth := c.Regions[0].Chars[0].SectionWidth() * 3
	if c.Regions[0].Width != wantWidth {
		t.Errorf("Width = %d, want %d", c.Regions[0].Width, wantWidth)
	}
}

// An active position return control (APR) starts a new region even
// though size/ruby state is unchanged, because Y moves.
func TestDecodeActivePositionReturnStartsNewRegion(t *testing.T) {
	d := newTestDecoder(t)
	body := []byte{0x21, c0APR, 0x22}
	_, c, err := d.Decode(statementFixture(body), 5000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(c.Regions) != 2 {
		t.Fatalf("len(Regions) = %d, want 2", len(c.Regions))
	}
	if c.Regions[1].Y <= c.Regions[0].Y {
		t.Errorf("Regions[1].Y = %d, want greater than Regions[0].Y = %d", c.Regions[1].Y, c.Regions[0].Y)
	}
}

// A statement body producing no visible character returns NoCaption,
// not an empty Caption.
func TestDecodeEmptyStatementYieldsNoCaption(t *testing.T) {
	d := newTestDecoder(t)
	body := []byte{c0LS0, c0LS1}
	status, c, err := d.Decode(statementFixture(body), 6000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if status != StatusNoCaption {
		t.Errorf("status = %v, want StatusNoCaption", status)
	}
	if c != nil {
		t.Errorf("caption = %+v, want nil", c)
	}
}

func TestDecodeTooShortPayload(t *testing.T) {
	d := newTestDecoder(t)
	_, _, err := d.Decode([]byte{0x80, 0x00}, 0)
	if err != ErrTooShort {
		t.Errorf("err = %v, want ErrTooShort", err)
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	d := newTestDecoder(t)
	pes := statementFixture([]byte{0x21})
	pes[0] = byte(CaptionTypeSuperimpose)
	_, _, err := d.Decode(pes, 0)
	if err != ErrTypeMismatch {
		t.Errorf("err = %v, want ErrTypeMismatch", err)
	}
}

// A statement for the non-selected language must still update shared
// decoder state (here, a G0 designation) without producing a Caption.
func TestDecodeOtherLanguageUpdatesSharedStateOnly(t *testing.T) {
	d := newTestDecoder(t)
	group := buildDataGroup(0x02, buildDataUnit(dataUnitStatementBody, []byte{0x1B, 0x24, 0x42}))
	status, c, err := d.Decode(buildPES(byte(CaptionTypeCaption), group), 7000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if status != StatusNoCaption || c != nil {
		t.Fatalf("status/caption = %v/%+v, want StatusNoCaption/nil", status, c)
	}
	// Kanji is CodesetID(0); the G0 designation from the other
	// language's statement body must still have been applied to the
	// shared register file.
	if d.state.gx[0].id != 0 {
		t.Errorf("G0 = %v, want Kanji(0)", d.state.gx[0].id)
	}
}

// A management packet followed, in the same PES, by a statement for
// the configured language produces a caption using the declared
// ISO 639-2 code.
func TestDecodeManagementThenStatement(t *testing.T) {
	d := newTestDecoder(t)
	mgmt := buildDataGroup(0x00, managementFixture())
	stmt := buildDataGroup(0x01, buildDataUnit(dataUnitStatementBody, []byte{0x21}))
	_, c, err := d.Decode(buildPES(byte(CaptionTypeCaption), mgmt, stmt), 8000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.ISO6392LanguageCode != isoJPN {
		t.Errorf("ISO6392LanguageCode = %#x, want isoJPN", c.ISO6392LanguageCode)
	}
}

// managementFixture builds a one-language management payload declaring
// Japanese for language 1, no OTM field, no optional DMF byte.
func managementFixture() []byte {
	payload := []byte{
		0x00, // TMD=0 (free)
		0x01, // num_languages
	}
	// language_tag(3 bits)<<5 | DMF(4 bits); tag 0 -> LanguageFirst.
	payload = append(payload, 0x00)
	j := []byte("jpn")
	payload = append(payload, j[0], j[1], j[2])
	payload = append(payload, 0x00) // format byte, TCS=0
	return payload
}

func TestDecodeDataGroupMalformed(t *testing.T) {
	d := newTestDecoder(t)
	group := []byte{0x01, 0, 0, 0xFF, 0xFF} // size far exceeds remaining bytes
	_, _, err := d.decodeDataGroup(group, 0)
	if err != ErrMalformedGroup {
		t.Errorf("err = %v, want ErrMalformedGroup", err)
	}
}

func TestCaptionCloneIsIndependent(t *testing.T) {
	d := newTestDecoder(t)
	_, c, err := d.Decode(statementFixture([]byte{0x21}), 9000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	clone := c.Clone()
	clone.Regions[0].Chars[0].Codepoint = 0x41
	if cmp.Equal(c, clone, cmpopts.EquateEmpty()) {
		t.Error("mutating the clone's chars also changed the original")
	}
	if c.Regions[0].Chars[0].Codepoint == 0x41 {
		t.Error("Clone shares backing array with original region chars")
	}
}
