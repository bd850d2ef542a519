/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the ARIB STD-B24 / ABNT NBR 15606-1 byte-stream
  decoder: the stateful interpreter that turns a PES caption payload
  into a caption.Caption DOM. The public Decoder type follows the same
  construct-then-configure-then-run shape as container/mts.Encoder in
  the wider AusOcean av toolkit (New(ctx) constructor, small setter
  methods, one primary verb method), and reports failures as sentinel
  errors (created with github.com/pkg/errors and returned unwrapped)
  rather than panicking.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package decoder implements the ARIB STD-B24 / ABNT NBR 15606-1
// caption byte-stream decoder: PES/data-group/data-unit framing, the
// management-data parser, and the statement-body escape-sequence state
// machine that materializes a caption.Caption DOM from raw broadcast
// bytes.
package decoder

import (
	"github.com/pkg/errors"

	"github.com/ausocean/captionvid/caption"
	"github.com/ausocean/captionvid/internal/logctx"
)

// EncodingScheme names a caption stream's character encoding. The
// decoder records the configured scheme, and under EncodingAuto the
// scheme that management data declares, but statement decoding does
// not consult it: every statement body is decoded through the G0..G3
// code tables, and there is no separate UTF-8 decoding path.
type EncodingScheme int

const (
	EncodingAuto EncodingScheme = iota
	EncodingJIS
	EncodingUTF8
	EncodingABNTLatin
)

// CaptionType is the PES data_identifier byte, distinguishing the
// Caption and Superimpose streams.
type CaptionType uint8

const (
	CaptionTypeCaption     CaptionType = 0x80
	CaptionTypeSuperimpose CaptionType = 0x81
)

// Profile selects the broadcaster writing-format/colour-map profile.
type Profile uint16

const (
	ProfileA Profile = 0x0008
	ProfileC Profile = 0x0012
)

// LanguageId selects which of up to two declared languages a decoder
// emits captions for.
type LanguageId uint8

const (
	LanguageFirst  LanguageId = 1
	LanguageSecond LanguageId = 2
)

// DecodeStatus discriminates the outcome of a single Decode call.
type DecodeStatus int

const (
	StatusError DecodeStatus = iota
	StatusNoCaption
	StatusGotCaption
)

// Sentinel errors returned by Decode; none of these reset decoder
// state, matching the "errors are values, state survives" contract.
var (
	ErrTooShort          = errors.New("decoder: PES payload too short")
	ErrTypeMismatch      = errors.New("decoder: data_identifier does not match configured caption type")
	ErrMalformedGroup    = errors.New("decoder: malformed data group")
	ErrUnsupportedFormat = errors.New("decoder: unsupported data_identifier")
)

// Decoder is a stateful ARIB B24 byte-stream interpreter. A Decoder
// must not be called from multiple goroutines concurrently; distinct
// Decoders share no mutable state. Decode calls must be issued in
// wire-arrival order for a given elementary stream.
type Decoder struct {
	ctx *logctx.Context

	scheme      EncodingScheme
	activScheme EncodingScheme // resolved scheme once Auto has detected one
	capType     CaptionType
	profile     Profile
	lang        LanguageId

	replaceMSZAlnum bool

	langCodes  [3]uint32 // indexed by LanguageId (1,2); 0 unused
	lastMgmtID int        // data_group_id & 0xF0 of the last accepted management packet; -1 before any
	haveMgmt   bool

	drcsTables map[uint32]caption.DRCS

	state statementState
}

// New returns a Decoder bound to ctx. ctx must outlive the Decoder.
func New(ctx *logctx.Context) *Decoder {
	d := &Decoder{ctx: ctx}
	d.resetState()
	return d
}

// resetState returns the statement-body interpreter and management
// bookkeeping to their power-on defaults, without forgetting the
// caller's configured scheme/type/profile/language knobs.
func (d *Decoder) resetState() {
	d.lastMgmtID = -1
	d.haveMgmt = false
	d.drcsTables = make(map[uint32]caption.DRCS)
	d.state = newStatementState(d.profile)
}

// Initialize configures the decoder's encoding scheme, caption type,
// profile and active language, and resets all interpreter state. It
// reports false only if the caption type, profile or language is not
// one of the defined values; the scheme is not checked.
func (d *Decoder) Initialize(scheme EncodingScheme, capType CaptionType, profile Profile, lang LanguageId) bool {
	switch capType {
	case CaptionTypeCaption, CaptionTypeSuperimpose:
	default:
		return false
	}
	switch profile {
	case ProfileA, ProfileC:
	default:
		return false
	}
	switch lang {
	case LanguageFirst, LanguageSecond:
	default:
		return false
	}
	d.scheme = scheme
	d.activScheme = scheme
	d.capType = capType
	d.profile = profile
	d.lang = lang
	d.resetState()
	return true
}

// SetEncodingScheme changes the encoding scheme. Setting EncodingAuto
// re-enables per-management-packet detection; setting any fixed scheme
// takes effect immediately and resets interpreter state, matching the
// source's "scheme change invalidates in-flight state" behaviour.
func (d *Decoder) SetEncodingScheme(scheme EncodingScheme) {
	if d.scheme == scheme {
		return
	}
	d.scheme = scheme
	d.activScheme = scheme
	d.resetState()
}

// SetCaptionType changes which data_identifier value the decoder
// accepts.
func (d *Decoder) SetCaptionType(t CaptionType) { d.capType = t }

// SetProfile changes the default writing-format/colour-map profile.
// Takes effect on the next Flush; Initialize replaces it with its own
// profile argument.
func (d *Decoder) SetProfile(p Profile) { d.profile = p }

// SwitchLanguage changes which language's statement data the decoder
// emits captions for; statements for the other language are parsed
// (to keep shared state such as DRCS tables current) but do not
// produce a Caption.
func (d *Decoder) SwitchLanguage(lang LanguageId) { d.lang = lang }

// SetReplaceMSZFullWidthAlphanumeric enables the MSZ half-width
// replacement rule (see decoder/tables.MSZReplace) for characters
// sourced from the Kanji/Gaiji tables while a half-size mode is
// active.
func (d *Decoder) SetReplaceMSZFullWidthAlphanumeric(b bool) { d.replaceMSZAlnum = b }

// QueryISO6392LanguageCode returns the ISO 639-2 language code last
// declared by management data for lang, or 0 if none has been seen.
func (d *Decoder) QueryISO6392LanguageCode(lang LanguageId) uint32 {
	if lang != LanguageFirst && lang != LanguageSecond {
		return 0
	}
	return d.langCodes[lang]
}

// Flush resets all interpreter state; the next Decode call behaves as
// if freshly Initialized.
func (d *Decoder) Flush() {
	d.resetState()
}

// Decode parses one PES caption payload (the ARIB private-data bytes
// starting at data_identifier, not a full MPEG-TS PES packet header;
// see decoder/pes for extracting pts from a full PES header) and
// returns the resulting status and, on StatusGotCaption, a freshly
// allocated Caption. The returned Caption is never retained by the
// Decoder; callers own it outright.
func (d *Decoder) Decode(pesBytes []byte, pts int64) (DecodeStatus, *caption.Caption, error) {
	if len(pesBytes) < 3 {
		return StatusError, nil, ErrTooShort
	}
	dataID := pesBytes[0]
	if CaptionType(dataID) != d.capType {
		return StatusError, nil, ErrTypeMismatch
	}

	hdrLen := int(pesBytes[2] & 0x0F)
	off := 3 + hdrLen
	if off >= len(pesBytes) {
		return StatusError, nil, ErrMalformedGroup
	}

	var gotCaption *caption.Caption
	for off < len(pesBytes) {
		n, cap, err := d.decodeDataGroup(pesBytes[off:], pts)
		if err != nil {
			return StatusError, nil, err
		}
		if n == 0 {
			break
		}
		off += n
		if cap != nil {
			gotCaption = cap
		}
	}
	if gotCaption != nil {
		return StatusGotCaption, gotCaption, nil
	}
	return StatusNoCaption, nil, nil
}

// decodeDataGroup parses one data_group starting at buf[0] and returns
// the number of bytes consumed, and a Caption if the group was a
// statement body for the active language that produced visible
// output. n == 0 with a nil error means "no more groups in buf" (a
// trailing pad/short remainder).
func (d *Decoder) decodeDataGroup(buf []byte, pts int64) (n int, cap *caption.Caption, err error) {
	const groupHdrLen = 5 // data_group_id(1) + data_group_link_number(1) + last_data_group_link_number(1) + data_group_size(2)
	if len(buf) < groupHdrLen {
		return 0, nil, nil
	}
	groupID := buf[0]
	size := int(buf[3])<<8 | int(buf[4])
	total := groupHdrLen + size
	if total > len(buf) {
		return 0, nil, ErrMalformedGroup
	}
	payload := buf[groupHdrLen:total]

	dgiID := groupID & 0x0F
	switch {
	case dgiID == 0:
		d.decodeManagementData(groupID, payload)
		return total, nil, nil
	case dgiID == 1 || dgiID == 2:
		lang := LanguageId(dgiID)
		c, err := d.decodeStatementData(payload, pts, lang)
		if err != nil {
			return total, nil, err
		}
		if lang != d.lang {
			return total, nil, nil
		}
		return total, c, nil
	default:
		return total, nil, nil
	}
}
