// Package urlstore implements the packed URL storage described in
// spec.md §3-4.5: a single contiguous byte buffer plus a fixed-width
// Structure descriptor of component offsets, kinds and flags, with
// copy-on-write value semantics on mutation.
//
// Grounded on the teacher's URL struct (bytesurl.go), which holds each
// component as its own []byte slice; this package keeps the teacher's
// idea of "one buffer, several named slices of it" but, per spec.md,
// packs every component into one buffer addressed by lengths rather
// than holding N independent allocations.
package urlstore

import "fmt"

// Sigil names the two-byte prefix after the scheme terminator.
type Sigil uint8

const (
	SigilNone Sigil = iota
	SigilAuthority
	SigilPath
)

// SchemeKind closes the enumeration of scheme classifications that
// drive "special" URL behavior.
type SchemeKind uint8

const (
	SchemeOther SchemeKind = iota
	SchemeHTTP
	SchemeHTTPS
	SchemeWS
	SchemeWSS
	SchemeFTP
	SchemeFile
)

// IsSpecial reports whether the scheme is one of the six WHATWG
// "special" schemes.
func (k SchemeKind) IsSpecial() bool { return k != SchemeOther }

// HostKind closes the enumeration of host representations.
type HostKind uint8

const (
	HostNone HostKind = iota
	HostEmpty
	HostDomain
	HostDomainWithIDNA
	HostIPv4
	HostIPv6
	HostOpaque
)

// Component names one addressable part of a packed URL.
type Component uint8

const (
	CompScheme Component = iota
	CompUsername
	CompPassword
	CompHostname
	CompPort
	CompPath
	CompQuery
	CompFragment
	CompAuthority
)

// ByteRange is a half-open [Lo, Hi) byte range into a Storage buffer.
type ByteRange struct {
	Lo, Hi uint32
}

func (r ByteRange) Len() uint32   { return r.Hi - r.Lo }
func (r ByteRange) Empty() bool   { return r.Lo == r.Hi }

// Structure is the fixed-width descriptor of component offsets, kinds
// and flags from spec.md §3. All lengths are counts of bytes,
// including any leading delimiter the component carries (scheme's
// trailing ':', password's leading ':', port's leading ':', query's
// leading '?', fragment's leading '#'). Offsets are derived, never
// stored.
type Structure struct {
	SchemeLen             uint32
	UsernameLen           uint32
	PasswordLen           uint32
	HostnameLen           uint32
	PortLen               uint32
	PathLen               uint32
	QueryLen              uint32
	FragmentLen           uint32
	FirstPathComponentLen uint32

	Sigil      Sigil
	SchemeKind SchemeKind
	HostKind   HostKind

	HasOpaquePath           bool
	QueryIsKnownFormEncoded bool
}

// SchemeEnd is the offset just past the scheme and its trailing ':'.
func (s Structure) SchemeEnd() uint32 { return s.SchemeLen }

// AfterSigil is the offset just past the two-byte sigil, if any.
func (s Structure) AfterSigil() uint32 {
	if s.Sigil == SigilNone {
		return s.SchemeEnd()
	}
	return s.SchemeEnd() + 2
}

func (s Structure) hasCredentials() bool {
	return s.UsernameLen > 0 || s.PasswordLen > 0
}

func (s Structure) credentialSepLen() uint32 {
	if s.Sigil == SigilAuthority && s.hasCredentials() {
		return 1 // '@'
	}
	return 0
}

func (s Structure) UsernameStart() uint32 { return s.AfterSigil() }
func (s Structure) PasswordStart() uint32 { return s.UsernameStart() + s.UsernameLen }
func (s Structure) HostnameStart() uint32 {
	return s.PasswordStart() + s.PasswordLen + s.credentialSepLen()
}
func (s Structure) PortStart() uint32     { return s.HostnameStart() + s.HostnameLen }
func (s Structure) PathStart() uint32     { return s.PortStart() + s.PortLen }
func (s Structure) QueryStart() uint32    { return s.PathStart() + s.PathLen }
func (s Structure) FragmentStart() uint32 { return s.QueryStart() + s.QueryLen }
func (s Structure) End() uint32           { return s.FragmentStart() + s.FragmentLen }

// RangeOf returns the byte range of component c, including any
// leading sigil/delimiter, and whether the component is present. A
// component with zero length is "absent" except hostname, whose
// presence is governed by Sigil == SigilAuthority (an authority can
// carry an empty host).
func (s Structure) RangeOf(c Component) (ByteRange, bool) {
	switch c {
	case CompScheme:
		if s.SchemeLen == 0 {
			return ByteRange{}, false
		}
		return ByteRange{0, s.SchemeEnd()}, true
	case CompAuthority:
		if s.Sigil != SigilAuthority {
			return ByteRange{}, false
		}
		return ByteRange{s.SchemeEnd(), s.PathStart()}, true
	case CompUsername:
		if s.UsernameLen == 0 {
			return ByteRange{}, false
		}
		return ByteRange{s.UsernameStart(), s.UsernameStart() + s.UsernameLen}, true
	case CompPassword:
		if s.PasswordLen == 0 {
			return ByteRange{}, false
		}
		return ByteRange{s.PasswordStart(), s.PasswordStart() + s.PasswordLen}, true
	case CompHostname:
		if s.Sigil != SigilAuthority {
			return ByteRange{}, false
		}
		return ByteRange{s.HostnameStart(), s.HostnameStart() + s.HostnameLen}, true
	case CompPort:
		if s.PortLen == 0 {
			return ByteRange{}, false
		}
		return ByteRange{s.PortStart(), s.PortStart() + s.PortLen}, true
	case CompPath:
		if s.PathLen == 0 {
			return ByteRange{}, false
		}
		return ByteRange{s.PathStart(), s.PathStart() + s.PathLen}, true
	case CompQuery:
		if s.QueryLen == 0 {
			return ByteRange{}, false
		}
		return ByteRange{s.QueryStart(), s.QueryStart() + s.QueryLen}, true
	case CompFragment:
		if s.FragmentLen == 0 {
			return ByteRange{}, false
		}
		return ByteRange{s.FragmentStart(), s.FragmentStart() + s.FragmentLen}, true
	default:
		panic(fmt.Sprintf("urlstore: unknown component %d", c))
	}
}

// Validate checks the invariants of spec.md §3. ReplaceSubrange calls
// it on every new Structure before installing it (the spec's "debug
// builds re-check invariants after each mutation"; this implementation always checks,
// since the cost is O(1) and the alternative — silently corrupting an
// invalid Structure — is worse).
func (s Structure) Validate() error {
	if s.Sigil == SigilAuthority && s.HostKind == HostNone {
		return fmt.Errorf("urlstore: authority sigil requires a host kind")
	}
	if s.Sigil != SigilAuthority {
		if s.HostKind != HostNone {
			return fmt.Errorf("urlstore: non-authority sigil must have HostKind none")
		}
		if s.UsernameLen != 0 || s.PasswordLen != 0 || s.HostnameLen != 0 || s.PortLen != 0 {
			return fmt.Errorf("urlstore: non-authority sigil must have empty authority fields")
		}
	}
	if s.HasOpaquePath {
		if s.Sigil != SigilNone {
			return fmt.Errorf("urlstore: opaque path requires sigil none")
		}
		if s.FirstPathComponentLen != 0 {
			return fmt.Errorf("urlstore: opaque path requires zero first-path-component length")
		}
	}
	if s.SchemeKind.IsSpecial() {
		if s.Sigil != SigilAuthority {
			return fmt.Errorf("urlstore: special scheme requires authority sigil")
		}
		if s.PathLen == 0 {
			return fmt.Errorf("urlstore: special scheme requires non-empty path")
		}
		if s.HasOpaquePath {
			return fmt.Errorf("urlstore: special scheme forbids opaque path")
		}
	}
	switch s.HostKind {
	case HostIPv4, HostDomain, HostDomainWithIDNA:
		if !s.SchemeKind.IsSpecial() {
			return fmt.Errorf("urlstore: host kind %v requires special scheme", s.HostKind)
		}
		if s.HostnameLen == 0 {
			return fmt.Errorf("urlstore: host kind %v requires non-empty hostname", s.HostKind)
		}
	}
	if s.QueryLen <= 1 && !s.QueryIsKnownFormEncoded {
		return fmt.Errorf("urlstore: query of length <= 1 must be known form-encoded")
	}
	if s.FirstPathComponentLen > s.PathLen {
		return fmt.Errorf("urlstore: first path component longer than path")
	}
	if s.PathLen > 0 && !s.HasOpaquePath && s.FirstPathComponentLen == 0 {
		return fmt.Errorf("urlstore: non-opaque non-empty path requires non-zero first path component length")
	}
	if s.PasswordLen == 1 {
		return fmt.Errorf("urlstore: orphan password separator")
	}
	if s.PortLen == 1 {
		return fmt.Errorf("urlstore: orphan port separator")
	}
	return nil
}
