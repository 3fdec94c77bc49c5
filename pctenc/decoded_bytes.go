package pctenc

// DecodedUnit is one decoded byte plus a flag distinguishing
// "decoded-or-unsubstituted" output from a byte passed through
// verbatim (either because it needed no transformation, or because it
// was part of a malformed, unconsumed '%' escape).
type DecodedUnit struct {
	Byte     byte
	Verbatim bool
}

// DecodedBytes lazily reverses percent-encoding (and, per set,
// substitution) over a source byte sequence (§4.4). It is total: it
// never errors and always consumes its entire input. Malformed escapes
// (a '%' without two following hex digits) pass through as a single
// verbatim '%'.
type DecodedBytes struct {
	src []byte
	set EncodeSet
	pos int
}

// NewDecodedBytes returns a cursor positioned before the first decoded
// byte of src.
func NewDecodedBytes(src []byte, set EncodeSet) *DecodedBytes {
	return &DecodedBytes{src: src, set: set}
}

// NewDecodedBytesAtEnd returns a cursor positioned after the last
// decoded byte of src, ready for Prev.
func NewDecodedBytesAtEnd(src []byte, set EncodeSet) *DecodedBytes {
	return &DecodedBytes{src: src, set: set, pos: len(src)}
}

// Pos reports the current byte offset into src.
func (d *DecodedBytes) Pos() int { return d.pos }

func isTriplet(src []byte, i int) bool {
	return i+2 < len(src) && src[i] == '%' && ishex(src[i+1]) && ishex(src[i+2])
}

// Next decodes and returns the next unit, advancing forward.
func (d *DecodedBytes) Next() (DecodedUnit, bool) {
	if d.pos >= len(d.src) {
		return DecodedUnit{}, false
	}
	if isTriplet(d.src, d.pos) {
		v := unhex(d.src[d.pos+1])<<4 | unhex(d.src[d.pos+2])
		d.pos += 3
		return DecodedUnit{Byte: v}, true
	}
	b := d.src[d.pos]
	d.pos++
	if b == '%' {
		return DecodedUnit{Byte: '%', Verbatim: true}, true
	}
	if sub, ok := d.set.Unsubstitute(b); ok {
		return DecodedUnit{Byte: sub}, true
	}
	return DecodedUnit{Byte: b, Verbatim: true}, true
}

// Prev decodes and returns the unit immediately before the cursor,
// moving backward.
func (d *DecodedBytes) Prev() (DecodedUnit, bool) {
	if d.pos <= 0 {
		return DecodedUnit{}, false
	}
	if d.pos >= 3 && isTriplet(d.src, d.pos-3) {
		v := unhex(d.src[d.pos-2])<<4 | unhex(d.src[d.pos-1])
		d.pos -= 3
		return DecodedUnit{Byte: v}, true
	}
	b := d.src[d.pos-1]
	d.pos--
	if b == '%' {
		return DecodedUnit{Byte: '%', Verbatim: true}, true
	}
	if sub, ok := d.set.Unsubstitute(b); ok {
		return DecodedUnit{Byte: sub}, true
	}
	return DecodedUnit{Byte: b, Verbatim: true}, true
}

// Decode fully decodes src against set. It never fails.
func Decode(src []byte, set EncodeSet) []byte {
	if len(src) == 0 {
		return nil
	}
	out := make([]byte, 0, len(src))
	d := NewDecodedBytes(src, set)
	for {
		u, ok := d.Next()
		if !ok {
			break
		}
		out = append(out, u.Byte)
	}
	return out
}

// AppendDecoded appends the fully decoded form of src to dst.
func AppendDecoded(dst []byte, src []byte, set EncodeSet) []byte {
	d := NewDecodedBytes(src, set)
	for {
		u, ok := d.Next()
		if !ok {
			break
		}
		dst = append(dst, u.Byte)
	}
	return dst
}
