// Package kvpairs implements the key-value pairs view of spec.md
// §4.6-4.7: a schema describing how a key-value list is laid out
// inside a URL component, and a cursor-indexed view over that
// component built on pctenc and urlstore.
//
// Grounded on the teacher's Values map (values.go) and its
// ParseQuery/Encode pair, generalized from one fixed "&"/"="
// form-encoded layout to a pluggable Schema, and on
// ernestas-poskus-bytesurl's own escape/unescape machinery reused here
// through pctenc.
package kvpairs

import (
	"fmt"

	"github.com/eposkus/whaturl/pctenc"
	"github.com/eposkus/whaturl/urlstore"
)

// Schema describes how a key-value list is serialized inside a URL
// component (§4.6).
type Schema interface {
	PreferredPairDelimiter() byte
	PreferredKVDelimiter() byte
	IsPairDelimiter(b byte) bool
	IsKVDelimiter(b byte) bool
	DecodePlusAsSpace() bool
	EncodeSpaceAsPlus() bool
	ShouldPercentEncode(b byte) bool
}

// Reason names one of the well-formedness failures Verify can report
// (§7).
type Reason int

const (
	PreferredKvDelimiterInvalid Reason = iota
	PreferredKvDelimiterNotRecognized
	PreferredPairDelimiterInvalid
	PreferredPairDelimiterNotRecognized
	InvalidKvDelimiterRecognized
	InvalidPairDelimiterRecognized
	InconsistentSpaceEncoding
	SubstitutionNotReversible
)

func (r Reason) String() string {
	names := [...]string{
		"PreferredKvDelimiterInvalid",
		"PreferredKvDelimiterNotRecognized",
		"PreferredPairDelimiterInvalid",
		"PreferredPairDelimiterNotRecognized",
		"InvalidKvDelimiterRecognized",
		"InvalidPairDelimiterRecognized",
		"InconsistentSpaceEncoding",
		"SubstitutionNotReversible",
	}
	if int(r) < len(names) {
		return names[r]
	}
	return "Reason(?)"
}

// VerificationError reports why a Schema failed Verify. Per §7 this
// triggers a programmer error on a custom schema, not a normal,
// recoverable failure.
type VerificationError struct {
	Reason Reason
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("kvpairs: schema verification failed: %s", e.Reason)
}

func isDisallowedDelimiterByte(b byte) bool {
	if b == '%' || b == '+' || b == ' ' {
		return true
	}
	if b >= '0' && b <= '9' {
		return true
	}
	if b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F' {
		return true
	}
	return false
}

func baseEncodeSet(component urlstore.Component) pctenc.EncodeSet {
	switch component {
	case urlstore.CompQuery:
		return pctenc.SetSpecialQuery
	case urlstore.CompFragment:
		return pctenc.SetFragment
	default:
		panic("kvpairs: key-value pairs are only supported on Query and Fragment")
	}
}

// Verify checks the well-formedness conditions of §4.6 for schema
// against the URL component it would be used on.
func Verify(schema Schema, component urlstore.Component) error {
	base := baseEncodeSet(component)
	pairDelim := schema.PreferredPairDelimiter()
	kvDelim := schema.PreferredKVDelimiter()

	if pairDelim >= 0x80 || isDisallowedDelimiterByte(pairDelim) || base.ShouldPercentEncode(pairDelim) {
		return &VerificationError{PreferredPairDelimiterInvalid}
	}
	if kvDelim >= 0x80 || isDisallowedDelimiterByte(kvDelim) || base.ShouldPercentEncode(kvDelim) {
		return &VerificationError{PreferredKvDelimiterInvalid}
	}
	if !schema.IsPairDelimiter(pairDelim) {
		return &VerificationError{PreferredPairDelimiterNotRecognized}
	}
	if !schema.IsKVDelimiter(kvDelim) {
		return &VerificationError{PreferredKvDelimiterNotRecognized}
	}
	for b := 0; b < 0x80; b++ {
		if isDisallowedDelimiterByte(byte(b)) {
			if schema.IsPairDelimiter(byte(b)) {
				return &VerificationError{InvalidPairDelimiterRecognized}
			}
			if schema.IsKVDelimiter(byte(b)) {
				return &VerificationError{InvalidKvDelimiterRecognized}
			}
		}
	}
	if schema.EncodeSpaceAsPlus() && !schema.DecodePlusAsSpace() {
		return &VerificationError{InconsistentSpaceEncoding}
	}

	enc := NewComponentEncodeSet(schema, component)
	for b := 0; b < 0x80; b++ {
		sub, ok := enc.Substitute(byte(b))
		if !ok {
			continue
		}
		if !enc.ShouldPercentEncode(sub) {
			return &VerificationError{SubstitutionNotReversible}
		}
	}
	return nil
}

// formEncoded is the "&"/"=" schema with '+' meaning space on read,
// form-encoding's own extra escapes on write, and no space-as-plus on
// write (matching application/x-www-form-urlencoded output as the
// teacher's Values.Encode produces it).
type formEncoded struct{}

// FormEncoded is application/x-www-form-urlencoded: "&"/"=", '+' reads
// as space, and the component's own FormEncoded-reserved bytes are
// always escaped on write. Per §4.6 it does *not* encode a literal
// space as '+' on write, only on read: a newly written space comes out
// as "%20".
var FormEncoded Schema = formEncoded{}

func (formEncoded) PreferredPairDelimiter() byte   { return '&' }
func (formEncoded) PreferredKVDelimiter() byte     { return '=' }
func (formEncoded) IsPairDelimiter(b byte) bool    { return b == '&' || b == ';' }
func (formEncoded) IsKVDelimiter(b byte) bool      { return b == '=' }
func (formEncoded) DecodePlusAsSpace() bool        { return true }
func (formEncoded) EncodeSpaceAsPlus() bool        { return false }
func (formEncoded) ShouldPercentEncode(b byte) bool {
	return pctenc.SetFormEncoded.ShouldPercentEncode(b)
}

// percentEncoded is "&"/"=" with '+' literal and no extra escaping
// beyond what the containing component already requires.
type percentEncoded struct{}

// PercentEncoded is "&"/"=" with a literal '+' and no extra escaping.
var PercentEncoded Schema = percentEncoded{}

func (percentEncoded) PreferredPairDelimiter() byte    { return '&' }
func (percentEncoded) PreferredKVDelimiter() byte      { return '=' }
func (percentEncoded) IsPairDelimiter(b byte) bool     { return b == '&' }
func (percentEncoded) IsKVDelimiter(b byte) bool       { return b == '=' }
func (percentEncoded) DecodePlusAsSpace() bool         { return false }
func (percentEncoded) EncodeSpaceAsPlus() bool         { return false }
func (percentEncoded) ShouldPercentEncode(byte) bool   { return false }
