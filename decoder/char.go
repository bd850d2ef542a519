/*
NAME
  char.go

DESCRIPTION
  char.go resolves one GL/GR character (text table lookup or DRCS
  code), and implements push_caption_char: filling a CaptionChar from
  the interpreter's current register state, deciding whether it starts
  a new CaptionRegion, and advancing the active position.

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

// emitGL resolves and pushes one character sourced from GL register g,
// returning the number of bytes consumed from buf (at least 1).
func (d *Decoder) emitGL(buf []byte, g int, pts int64, sess *session) int {
	set := d.state.gx[g]
	if set.bytesPerChar == 2 {
		if len(buf) < 2 {
			d.ctx.Log().Warning("decoder: truncated two-byte GL character")
			return len(buf)
		}
		d.resolveAndPush(set, buf[0], buf[1], pts, sess)
		return 2
	}
	d.resolveAndPush(set, buf[0], 0, pts, sess)
	return 1
}

// emitGR mirrors emitGL for the GR bank, stripping the high bit from
// each byte before table lookup.
func (d *Decoder) emitGR(buf []byte, pts int64, sess *session) int {
	set := d.state.gx[d.state.gr]
	if set.bytesPerChar == 2 {
		if len(buf) < 2 {
			d.ctx.Log().Warning("decoder: truncated two-byte GR character")
			return len(buf)
		}
		d.resolveAndPush(set, buf[0]&0x7F, buf[1]&0x7F, pts, sess)
		return 2
	}
	d.resolveAndPush(set, buf[0]&0x7F, 0, pts, sess)
	return 1
}

// resolveAndPush looks b1/b2 up in set's table (or the DRCS map for a
// DRCS register) and, on success, pushes the resulting character; on a
// miss it logs a warning and still advances the active position, since
// a broadcast stream's reserved/unmapped code points must not desync
// subsequent layout.
func (d *Decoder) resolveAndPush(set codeset, b1, b2 byte, pts int64, sess *session) {
	switch set.id {
	case tables.DRCS0, tables.DRCS1:
		var code uint32
		if set.bytesPerChar == 2 {
			code = uint32(b1)<<8 | uint32(b2)
		} else {
			code = uint32(b1)
		}
		if _, ok := d.drcsTables[code]; ok {
			sess.usedDRCS[code] = true
			d.pushCaptionChar(caption.CharTypeDRCS, 0, 0, code, pts, sess)
			return
		}
		d.ctx.Log().Warning("decoder: undefined DRCS code referenced, skipping")
		d.advance()
		return
	}

	var r, pua rune
	var ok bool
	if set.bytesPerChar == 2 {
		r, pua, ok = tables.Lookup(set.id, b1, b2)
	} else {
		r, ok = tables.LookupByte(set.id, b1)
	}
	if !ok {
		d.ctx.Log().Warning("decoder: unmapped code point, skipping")
		d.advance()
		return
	}
	if d.replaceMSZAlnum && d.state.size == sizeMiddle && set.id != tables.Alphanumeric && set.id != tables.JISX0201 {
		if rr, replaced := tables.MSZReplace(r); replaced {
			r = rr
		}
	}
	d.pushCaptionChar(caption.CharTypeText, r, pua, 0, pts, sess)
}

// pushSpace emits the SP control's space character.
func (d *Decoder) pushSpace(pts int64, sess *session) {
	d.pushCaptionChar(caption.CharTypeText, 0x20, 0, 0, pts, sess)
}

// advance moves the active position forward by one cell without
// emitting a character, used for DEL and unmapped code points.
func (d *Decoder) advance() {
	d.state.posX += d.state.sectionWidth()
}

// pushCaptionChar implements the decoder's emission rule: fill a
// CaptionChar from current register state, decide whether it
// continues the in-progress region or starts a new one, append it,
// and advance the active position.
func (d *Decoder) pushCaptionChar(t caption.CharType, codepoint, pua rune, drcsCode uint32, pts int64, sess *session) {
	ch := caption.CaptionChar{
		Type:         t,
		Codepoint:    codepoint,
		PUACodepoint: pua,
		DRCSCode:     drcsCode,
		X:            d.state.posX,
		Y:            d.state.posY,
		CharWidth:    d.state.charWidth,
		CharHeight:   d.state.charHeight,
		CharHSpacing: d.state.charHSpacing,
		CharVSpacing: d.state.charVSpacing,
		CharHScale:   d.state.hscale,
		CharVScale:   d.state.vscale,
		TextColor:    d.state.textColor,
		BackColor:    d.state.backColor,
		StrokeColor:  d.state.strokeColor,
		Style:        d.state.style,
		Enclosure:    d.state.enclosure,
		PTS:          pts,
	}
	if t == caption.CharTypeText && codepoint != 0 {
		ch.UTF8 = string(codepoint)
		sess.text.WriteString(ch.UTF8)
	}

	isRuby := d.state.rubyDepth > 0
	sectionH := ch.SectionHeight()
	needNew := sess.cur == nil ||
		sess.cur.Y != ch.Y ||
		sess.cur.Height != sectionH ||
		sess.cur.IsRuby != isRuby ||
		ch.X != sess.cur.X+sess.cur.Width
	if needNew {
		sess.closeRegion()
		sess.cur = &caption.CaptionRegion{
			X:      ch.X,
			Y:      ch.Y,
			Width:  0,
			Height: sectionH,
			IsRuby: isRuby,
		}
	}
	sess.cur.Chars = append(sess.cur.Chars, ch)
	sess.cur.Width += ch.SectionWidth()
	sess.sawChar = true

	d.state.posX += ch.SectionWidth()
}
