/*
NAME
  pes.go

DESCRIPTION
  pes.go provides helpers for locating and extracting the presentation
  timestamp from a full MPEG-TS PES packet header, for callers that
  receive raw PES packets (rather than only the ARIB private-data
  payload the decoder package itself consumes). Adapted from the PES
  packet encoding in container/mts/pes of the wider AusOcean av
  toolkit, trimmed to the PTS concern needed here. ExtractPTS decodes
  the PTS bits itself; InsertPTS uses github.com/Comcast/gots' PES
  helpers.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pes provides PES-packet-header helpers used when a caller
// hands the decoder a full MPEG-TS PES packet instead of only the
// already-extracted ARIB private-data payload.
package pes

import (
	"errors"

	"github.com/Comcast/gots/v2"
)

// ErrTooShort is returned when a buffer is too small to contain a PES
// packet header.
var ErrTooShort = errors.New("pes: packet too short for header")

// ErrNoPTS is returned by ExtractPTS when the header's PTS_DTS
// indicator field reports no PTS is present.
var ErrNoPTS = errors.New("pes: no PTS present")

const (
	minHeaderLen = 14 // Start code + stream ID + length + flags + header length + 5-byte PTS.
	ptsDTSIdx    = 7
	headerLenIdx = 8
	ptsFieldIdx  = 9
)

// ExtractPTS parses a complete PES packet header (starting at the
// 0x00 0x00 0x01 start code) and returns its presentation timestamp in
// MPEG clock ticks (90kHz), as encoded by the standard 5-byte PTS
// field. Use InsertPTS to write a PTS field of the same shape.
func ExtractPTS(pesHeader []byte) (pts uint64, err error) {
	if len(pesHeader) < minHeaderLen {
		return 0, ErrTooShort
	}
	pdi := pesHeader[ptsDTSIdx] >> 6
	if pdi&0x2 == 0 {
		return 0, ErrNoPTS
	}
	b := pesHeader[ptsFieldIdx : ptsFieldIdx+5]
	pts = (uint64(b[0]&0x0E) << 29) |
		(uint64(b[1]) << 22) |
		(uint64(b[2]&0xFE) << 14) |
		(uint64(b[3]) << 7) |
		(uint64(b[4]) >> 1)
	return pts, nil
}

// InsertPTS writes pts into buf[off:off+5] using the standard 5-byte
// PES PTS bit layout (marker bits interleaved with a 33-bit value).
func InsertPTS(buf []byte, off int, pts uint64) error {
	if len(buf) < off+5 {
		return ErrTooShort
	}
	gots.InsertPTS(buf[off:off+5], pts)
	return nil
}
