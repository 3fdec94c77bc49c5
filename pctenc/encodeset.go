// Package pctenc implements WHATWG-style percent-encoding: a closed
// family of encode sets, the lazy byte-sequence transforms built on
// them, and the constant tables that back byte classification.
//
// Grounded on the teacher's shouldEscape/escape/unescape trio in
// bytesurl.go, generalized from the teacher's four-member encoding
// enum (encodePath, encodeUserPassword, encodeQueryComponent,
// encodeFragment) to the full ten-member family spec.md §4.2 requires,
// and on terorie-oddb-go/fasturl/url.go's near-identical shouldEscape
// switch (same RFC 3986 section comments, wider mode set).
package pctenc

// EncodeSetID names one of the ten standard encode sets. The eight
// table-backed sets form the strict subset lattice required by §4.2;
// Passthrough and PathComponent are derived, not table entries.
type EncodeSetID uint8

const (
	C0Control EncodeSetID = iota
	Fragment
	Query
	SpecialQuery
	Path
	UserInfo
	Component
	FormEncoded
	Passthrough
	PathComponent
)

func (id EncodeSetID) String() string {
	switch id {
	case C0Control:
		return "C0Control"
	case Fragment:
		return "Fragment"
	case Query:
		return "Query"
	case SpecialQuery:
		return "SpecialQuery"
	case Path:
		return "Path"
	case UserInfo:
		return "UserInfo"
	case Component:
		return "Component"
	case FormEncoded:
		return "FormEncoded"
	case Passthrough:
		return "Passthrough"
	case PathComponent:
		return "PathComponent"
	default:
		return "EncodeSetID(?)"
	}
}

// EncodeSet classifies bytes for one URL context. Substitute/
// Unsubstitute let a set replace a byte instead of percent-encoding
// it (only FormEncoded does, mapping space to '+'); both default to
// "no substitution" via substitution-free embeddings below.
type EncodeSet interface {
	ID() EncodeSetID
	ShouldPercentEncode(b byte) bool
	Substitute(b byte) (sub byte, ok bool)
	Unsubstitute(b byte) (orig byte, ok bool)
}

// noSubstitution is embedded by every standard set except FormEncoded.
type noSubstitution struct{}

func (noSubstitution) Substitute(byte) (byte, bool)   { return 0, false }
func (noSubstitution) Unsubstitute(byte) (byte, bool) { return 0, false }

type standardSet struct {
	noSubstitution
	id EncodeSetID
}

func (s standardSet) ID() EncodeSetID            { return s.id }
func (s standardSet) ShouldPercentEncode(b byte) bool { return reserves(s.id, b) }

type formEncodedSet struct{}

func (formEncodedSet) ID() EncodeSetID                 { return FormEncoded }
func (formEncodedSet) ShouldPercentEncode(b byte) bool { return reserves(FormEncoded, b) }

// Substitute maps space to '+'. The precondition from §4.2 ("substitute
// outputs must themselves be encoded by should_percent_encode") holds:
// '+' is reserved by FormEncoded (it is in Component, a subset).
func (formEncodedSet) Substitute(b byte) (byte, bool) {
	if b == ' ' {
		return '+', true
	}
	return 0, false
}

func (formEncodedSet) Unsubstitute(b byte) (byte, bool) {
	if b == '+' {
		return ' ', true
	}
	return 0, false
}

// The closed family of standard encode sets, exposed as values per
// §6 ("Exactly the ten identifiers enumerated in §4.2").
var (
	SetC0Control     EncodeSet = standardSet{id: C0Control}
	SetFragment      EncodeSet = standardSet{id: Fragment}
	SetQuery         EncodeSet = standardSet{id: Query}
	SetSpecialQuery  EncodeSet = standardSet{id: SpecialQuery}
	SetPath          EncodeSet = standardSet{id: Path}
	SetUserInfo      EncodeSet = standardSet{id: UserInfo}
	SetComponent     EncodeSet = standardSet{id: Component}
	SetFormEncoded   EncodeSet = formEncodedSet{}
	SetPassthrough   EncodeSet = standardSet{id: Passthrough}
	SetPathComponent EncodeSet = standardSet{id: PathComponent}
)

// ByID resolves a standard encode set by its identifier. It panics on
// an unknown id; EncodeSetID is a closed enumeration, so an unknown
// value is a programmer error, not a recoverable one.
func ByID(id EncodeSetID) EncodeSet {
	switch id {
	case C0Control:
		return SetC0Control
	case Fragment:
		return SetFragment
	case Query:
		return SetQuery
	case SpecialQuery:
		return SetSpecialQuery
	case Path:
		return SetPath
	case UserInfo:
		return SetUserInfo
	case Component:
		return SetComponent
	case FormEncoded:
		return SetFormEncoded
	case Passthrough:
		return SetPassthrough
	case PathComponent:
		return SetPathComponent
	default:
		panic("pctenc: unknown EncodeSetID")
	}
}

// Decode namespace members named by §6: PercentEncodedOnly is
// Passthrough used as the decode-only identity set, Form is
// FormEncoded used for '+' unsubstitution.
var (
	DecodePercentEncodedOnly = SetPassthrough
	DecodeForm               = SetFormEncoded
)
