/*
NAME
  controlsets.go

DESCRIPTION
  controlsets.go names the C0/C1 control-code byte values the
  statement-body interpreter dispatches on, grounded on the control
  set naming used by the original B24 control-set tables (NUL, BEL,
  APB, APF, APD, APU, CS, APR, SS2, ESC, APS, SS3, PAPF, CAN for C0;
  colour/size/flash/enclosure controls for C1).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decoder

// C0 control codes (0x00-0x1F).
const (
	c0NUL  = 0x00
	c0BEL  = 0x07
	c0APB  = 0x08 // active position backward
	c0APF  = 0x09 // active position forward
	c0APD  = 0x0A // active position down
	c0APU  = 0x0B // active position up
	c0CS   = 0x0C // clear screen
	c0APR  = 0x0D // active position return (newline)
	c0LS1  = 0x0E // locking shift 1 (GL <- G1)
	c0LS0  = 0x0F // locking shift 0 (GL <- G0)
	c0PAPF = 0x16 // parameterized active position forward
	c0CAN  = 0x18 // cancel
	c0SS2  = 0x19 // single shift 2
	c0ESC  = 0x1B
	c0APS  = 0x1C // active position set
	c0SS3  = 0x1D // single shift 3
)

const c0SP = 0x20
const c0DEL = 0x7F

// C1 control codes (0x80-0x9F). This decoder's assignment follows the
// same escape-free single-byte layout the source's control-set tables
// use for the colour/size/style family, with the CSI introducer at
// 0x9B as specified.
const (
	c1BKF  = 0x80 // set text colour: black
	c1RDF  = 0x81 // red
	c1GRF  = 0x82 // green
	c1YLF  = 0x83 // yellow
	c1BLF  = 0x84 // blue
	c1MGF  = 0x85 // magenta
	c1CNF  = 0x86 // cyan
	c1WHF  = 0x87 // white
	c1SSZ  = 0x88 // small size
	c1MSZ  = 0x89 // middle size
	c1NSZ  = 0x8A // normal size
	c1COL  = 0x90 // colour control (palette index follows as a parameter byte)
	c1FLC  = 0x91 // flashing control
	c1CDC  = 0x92 // conceal display control
	c1POL  = 0x93 // pattern polarity control
	c1WMM  = 0x94 // writing mode modification
	c1MACRO = 0x95
	c1HLC  = 0x97 // enclosure (highlight) control, one parameter byte
	c1RPC  = 0x98 // repeat character
	c1SPL  = 0x99 // stop lining (underline off)
	c1STL  = 0x9A // start lining (underline on)
	c1CSI  = 0x9B // control sequence introducer
	c1TIME = 0x9D // time control (wait_duration)
)

// CSI final bytes are assigned in csi.go alongside the parameter
// handler that interprets them.
