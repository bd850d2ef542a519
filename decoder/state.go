/*
NAME
  state.go

DESCRIPTION
  state.go defines statementState, the persistent register file the
  B24 state machine carries across Decode calls: the four G0..G3
  code-set designations, the GL/GR invocation pointers, active
  position, character metrics, colours, style and enclosure flags.
  Only this register file survives between calls; the per-call output
  (regions, text) is built fresh by decodeStatementData.

  Default G0..G3 designation used by this decoder (G0=Alphanumeric,
  G1=Kanji, G2=Hiragana, G3=Katakana) is a documented simplification:
  broadcast streams in practice always designate the set they need
  with an explicit escape sequence before using it, so the only
  observable effect of the power-on default is which set a bare LS0/
  LS1 without a prior designation selects.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decoder

import (
	"github.com/ausocean/captionvid/caption"
	"github.com/ausocean/captionvid/decoder/tables"
)

// codeset is one GX register: which code table it names, and how many
// stream bytes one character of that table consumes.
type codeset struct {
	id           tables.CodesetID
	bytesPerChar int
}

// sizeMode names the active character-size control, carried as a
// distinct field from the derived hscale/vscale so CSI SSM (explicit
// cell size) can override it without losing track of which named mode
// was last selected.
type sizeMode int

const (
	sizeNormal sizeMode = iota
	sizeMiddle
	sizeSmall
)

// statementState is the decoder's persistent register file.
type statementState struct {
	gx [4]codeset
	gl int
	gr int

	posX, posY int

	planeWidth, planeHeight int
	// charWidth/charHeight are the base (NSZ) cell size in plane
	// pixels; charHSpacing/charVSpacing the inter-character padding
	// added by the writing format.
	charWidth, charHeight      int
	charHSpacing, charVSpacing int

	size         sizeMode
	hscale       float32
	vscale       float32

	textColor   caption.RGBA8
	backColor   caption.RGBA8
	strokeColor caption.RGBA8

	style     caption.CharStyle
	enclosure caption.EnclosureStyle

	rubyDepth int
}

// defaultProfileMetrics returns the default plane and cell geometry
// for profile; ProfileA is the 960x540 HD writing format, ProfileC the
// 720x480 SD format used by the ABNT/ISDB-Tb mobile (1seg) profile.
func defaultProfileMetrics(p Profile) (planeW, planeH, cellW, cellH, hSpace, vSpace int) {
	switch p {
	case ProfileC:
		return 720, 480, 18, 24, 4, 8
	default:
		return 960, 540, 36, 36, 4, 8
	}
}

// newStatementState returns the power-on register file for profile.
func newStatementState(p Profile) statementState {
	pw, ph, cw, ch, hs, vs := defaultProfileMetrics(p)
	return statementState{
		gx: [4]codeset{
			{tables.Alphanumeric, tables.BytesPerChar(tables.Alphanumeric)},
			{tables.Kanji, tables.BytesPerChar(tables.Kanji)},
			{tables.Hiragana, tables.BytesPerChar(tables.Hiragana)},
			{tables.Katakana, tables.BytesPerChar(tables.Katakana)},
		},
		gl: 0,
		gr: 2,

		planeWidth:    pw,
		planeHeight:   ph,
		charWidth:     cw,
		charHeight:    ch,
		charHSpacing:  hs,
		charVSpacing:  vs,

		size:   sizeNormal,
		hscale: 1.0,
		vscale: 1.0,

		textColor: caption.ColorWhite,
		backColor: caption.ColorTransparent,
	}
}

// applySizeMode sets s.size and its derived hscale/vscale. Middle size
// halves both dimensions (so a size change always changes
// section_height, forcing a new CaptionRegion at the transition, as
// required of any size-mode change); Small uses the same half scale
// in both dimensions.
func (s *statementState) applySizeMode(m sizeMode) {
	s.size = m
	switch m {
	case sizeMiddle:
		s.hscale, s.vscale = 0.5, 0.5
	case sizeSmall:
		s.hscale, s.vscale = 0.5, 0.5
	default:
		s.hscale, s.vscale = 1.0, 1.0
	}
}

// sectionWidth/sectionHeight return the current character cell's advance
// size, scaled by the active size mode.
func (s *statementState) sectionWidth() int {
	return int(float64(s.charWidth+s.charHSpacing) * float64(s.hscale))
}

func (s *statementState) sectionHeight() int {
	return int(float64(s.charHeight+s.charVSpacing) * float64(s.vscale))
}
