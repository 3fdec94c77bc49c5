package kvpairs

import (
	"github.com/eposkus/whaturl/pctenc"
	"github.com/eposkus/whaturl/urlstore"
)

// componentEncodeSet adapts a Schema plus the component it applies to
// into a pctenc.EncodeSet, so the same Encode/Decode/EncodedBytes
// machinery pctenc already provides for URL components also drives a
// key-value pair's individual keys and values. Grounded on
// pctenc.formEncodedSet, generalized from a fixed space/'+'
// substitution to whatever a Schema declares.
type componentEncodeSet struct {
	schema Schema
	base   pctenc.EncodeSet
}

// NewComponentEncodeSet returns the encode set a key or value of a
// key-value pair list is written/read through: schema's own rules
// layered on top of the component's base reserved set, so a pair's
// key or value is never escaped less strictly than the surrounding
// component would require on its own.
func NewComponentEncodeSet(schema Schema, component urlstore.Component) pctenc.EncodeSet {
	return componentEncodeSet{schema: schema, base: baseEncodeSet(component)}
}

func (c componentEncodeSet) ID() pctenc.EncodeSetID { return c.base.ID() }

func (c componentEncodeSet) ShouldPercentEncode(b byte) bool {
	if b >= 0x80 || b == '%' || b == '+' {
		return true // '+' is always escaped on write, regardless of schema, so it never collides with a +-as-space reading
	}
	if c.schema.IsPairDelimiter(b) || c.schema.IsKVDelimiter(b) {
		return true
	}
	if b == ' ' {
		if c.schema.EncodeSpaceAsPlus() {
			return true // never written raw; always substituted instead
		}
		return c.base.ShouldPercentEncode(b)
	}
	if c.schema.ShouldPercentEncode(b) {
		return true
	}
	return c.base.ShouldPercentEncode(b)
}

func (c componentEncodeSet) Substitute(b byte) (byte, bool) {
	if b == ' ' && c.schema.EncodeSpaceAsPlus() {
		return '+', true
	}
	return 0, false
}

func (c componentEncodeSet) Unsubstitute(b byte) (byte, bool) {
	if b == '+' && c.schema.DecodePlusAsSpace() {
		return ' ', true
	}
	return 0, false
}
