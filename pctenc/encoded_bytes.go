package pctenc

import "bytes"

// EncodedBytes lazily transforms a source byte sequence into its
// percent-encoded form, one source byte at a time (§4.3). It is
// bidirectional: Next and Prev traverse the same logical sequence of
// output bytes in opposite directions.
//
// Position is tracked as (pos, off): pos indexes the source byte
// currently loaded into buf, off counts how many of that byte's
// 1-or-3 output bytes have already been consumed going forward. This
// is the "explicit cursor struct (source_pos, intra_byte_offset)"
// design note from spec.md §9.
type EncodedBytes struct {
	src []byte
	set EncodeSet
	pos int
	buf [3]byte
	n   int
	off int
}

// NewEncodedBytes returns a cursor positioned before the first output
// byte of encoding src against set.
func NewEncodedBytes(src []byte, set EncodeSet) *EncodedBytes {
	return &EncodedBytes{src: src, set: set}
}

func (e *EncodedBytes) load() {
	b := e.src[e.pos]
	if b < 0x80 {
		if sub, ok := e.set.Substitute(b); ok {
			e.buf[0] = sub
			e.n = 1
			return
		}
		if !e.set.ShouldPercentEncode(b) {
			e.buf[0] = b
			e.n = 1
			return
		}
	}
	t := hexTriplet(b)
	e.buf[0], e.buf[1], e.buf[2] = t[0], t[1], t[2]
	e.n = 3
}

// Next returns the next output byte, or ok=false at end of sequence.
func (e *EncodedBytes) Next() (b byte, ok bool) {
	if e.pos >= len(e.src) {
		return 0, false
	}
	if e.n == 0 {
		e.load()
	}
	if e.off == e.n {
		if e.pos+1 >= len(e.src) {
			return 0, false
		}
		e.pos++
		e.load()
		e.off = 0
	}
	b = e.buf[e.off]
	e.off++
	return b, true
}

// Prev returns the output byte immediately before the cursor's current
// position, moving the cursor backward, or ok=false at the start.
func (e *EncodedBytes) Prev() (b byte, ok bool) {
	if e.pos == 0 && e.off == 0 {
		return 0, false
	}
	if e.off == 0 {
		e.pos--
		e.load()
		e.off = e.n
	}
	e.off--
	return e.buf[e.off], true
}

// AppendEncoded appends the percent-encoded form of src to dst using
// set, reporting whether the result differs from src (the "did_encode"
// bit callers use to avoid reallocating when nothing changed).
func AppendEncoded(dst []byte, src []byte, set EncodeSet) (out []byte, didEncode bool) {
	start := len(dst)
	e := NewEncodedBytes(src, set)
	for {
		b, ok := e.Next()
		if !ok {
			break
		}
		dst = append(dst, b)
	}
	didEncode = len(dst)-start != len(src) || !bytes.Equal(dst[start:], src)
	return dst, didEncode
}

// Encode returns the percent-encoded form of src using set.
func Encode(src []byte, set EncodeSet) []byte {
	out, _ := AppendEncoded(nil, src, set)
	return out
}

// EncodedLength computes, in one pass, the length encoding src would
// produce and whether any byte needs encoding or substitution. Per
// §4.3 this is a saturating estimate a caller must treat as a lower
// bound against an adversarial source; here, over plain []byte input,
// it is exact.
func EncodedLength(src []byte, set EncodeSet) (n uint64, needsEncoding bool) {
	for _, b := range src {
		if b >= 0x80 {
			n += 3
			needsEncoding = true
			continue
		}
		if _, ok := set.Substitute(b); ok {
			n++
			needsEncoding = true
			continue
		}
		if set.ShouldPercentEncode(b) {
			n += 3
			needsEncoding = true
			continue
		}
		n++
	}
	return n, needsEncoding
}
