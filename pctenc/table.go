package pctenc

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/eposkus/whaturl/internal/tables"
)

// setMasks holds one 128-bit membership mask per table-backed encode
// set: the "64-bit-mask fast path per set (low/high halves of the
// 7-bit range)" that §4.1 allows as an optional hot-path alongside the
// table. Grounded on other_examples/nlnwa-whatwg-url's use of a
// bitset.BitSet for exactly this kind of fixed small-alphabet
// membership test (github.com/willf/bitset there; this module uses
// its current name, github.com/bits-and-blooms/bitset, per the
// pack's own go.mod manifests). Built once at init from
// tables.AsciiTable, which remains the single source of truth.
var setMasks [8]*bitset.BitSet

func init() {
	for i := range setMasks {
		m := bitset.New(128)
		for b := 0; b < 128; b++ {
			if tables.AsciiTable[b]&(1<<uint(i)) != 0 {
				m.Set(uint(b))
			}
		}
		setMasks[i] = m
	}
}

// tableReserves is the table-driven classification: the authoritative
// path every EncodeSet implementation in this package calls through
// reserves.
func tableReserves(id EncodeSetID, b byte) bool {
	if b >= 0x80 {
		return true
	}
	switch id {
	case Passthrough:
		return false
	case PathComponent:
		return tableReserves(Path, b) || b == '/' || b == '\\'
	default:
		return tables.AsciiTable[b]&(1<<uint(id)) != 0
	}
}

// maskReserves is the bitset-driven classification. It exists to be
// cross-checked against tableReserves (P4); production code paths use
// tableReserves via reserves.
func maskReserves(id EncodeSetID, b byte) bool {
	if b >= 0x80 {
		return true
	}
	switch id {
	case Passthrough:
		return false
	case PathComponent:
		return maskReserves(Path, b) || b == '/' || b == '\\'
	default:
		return setMasks[id].Test(uint(b))
	}
}

func reserves(id EncodeSetID, b byte) bool {
	return tableReserves(id, b)
}

// hexTriplet returns the uppercase "%XX" escape for b.
func hexTriplet(b byte) [3]byte {
	return tables.HexTriplet[b]
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
