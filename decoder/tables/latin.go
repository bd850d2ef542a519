/*
NAME
  latin.go

DESCRIPTION
  latin.go provides the Latin-Extension and Latin-Special code tables
  used by the ABNT NBR 15606-1 profile (Brazilian ISDB-Tb), covering
  the accented Latin characters needed for Portuguese and Spanish
  captions that the plain Alphanumeric/JIS-X-0201 sets cannot express.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tables

// latinExtensionTable covers the accented Latin-1 Supplement and
// Latin Extended-A characters assigned to row 1 of the ABNT
// Latin-Extension set.
var latinExtensionTable = map[int]rune{
	idx(1, 0x21): 0x00C1, // Á
	idx(1, 0x22): 0x00C9, // É
	idx(1, 0x23): 0x00CD, // Í
	idx(1, 0x24): 0x00D3, // Ó
	idx(1, 0x25): 0x00DA, // Ú
	idx(1, 0x26): 0x00E1, // á
	idx(1, 0x27): 0x00E9, // é
	idx(1, 0x28): 0x00ED, // í
	idx(1, 0x29): 0x00F3, // ó
	idx(1, 0x2A): 0x00FA, // ú
	idx(1, 0x2B): 0x00E3, // ã
	idx(1, 0x2C): 0x00F5, // õ
	idx(1, 0x2D): 0x00E2, // â
	idx(1, 0x2E): 0x00EA, // ê
	idx(1, 0x2F): 0x00F4, // ô
	idx(1, 0x30): 0x00C0, // À
	idx(1, 0x31): 0x00C2, // Â
	idx(1, 0x32): 0x00C3, // Ã
	idx(1, 0x33): 0x00C7, // Ç
	idx(1, 0x34): 0x00D4, // Ô
	idx(1, 0x35): 0x00D5, // Õ
	idx(1, 0x36): 0x00E7, // ç
}

// latinSpecialTable covers Spanish-specific and miscellaneous Latin
// punctuation assigned to row 1 of the ABNT Latin-Special set.
var latinSpecialTable = map[int]rune{
	idx(1, 0x21): 0x00F1, // ñ
	idx(1, 0x22): 0x00D1, // Ñ
	idx(1, 0x23): 0x00BF, // ¿
	idx(1, 0x24): 0x00A1, // ¡
	idx(1, 0x25): 0x00FC, // ü
	idx(1, 0x26): 0x00DC, // Ü
}
