package urlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleHTTPStructure(path, query string) Structure {
	return Structure{
		SchemeLen:               5, // "http:"
		HostnameLen:             11,
		PathLen:                 uint32(len(path)),
		QueryLen:                uint32(len(query)),
		FirstPathComponentLen:   firstComponentLen(path),
		Sigil:                   SigilAuthority,
		SchemeKind:              SchemeHTTP,
		HostKind:                HostDomain,
		QueryIsKnownFormEncoded: len(query) <= 1,
	}
}

func firstComponentLen(path string) uint32 {
	if path == "" {
		return 0
	}
	n := 1
	for n < len(path) && path[n] != '/' {
		n++
	}
	return uint32(n)
}

func buildStorage(t *testing.T, scheme, host, path, query string) *Storage {
	t.Helper()
	st := simpleHTTPStructure(path, query)
	s := New()
	raw := scheme + "://" + host + path + query
	err := s.ReplaceSubrange(ByteRange{0, 0}, []byte(raw), st)
	require.NoError(t, err)
	return s
}

func TestRangeOfComponents(t *testing.T) {
	s := buildStorage(t, "http", "example.com", "/a/b", "?q=1")
	r, ok := s.structure.RangeOf(CompScheme)
	require.True(t, ok)
	assert.Equal(t, "http:", string(s.Bytes()[r.Lo:r.Hi]))

	r, ok = s.structure.RangeOf(CompHostname)
	require.True(t, ok)
	assert.Equal(t, "example.com", string(s.Bytes()[r.Lo:r.Hi]))

	r, ok = s.structure.RangeOf(CompPath)
	require.True(t, ok)
	assert.Equal(t, "/a/b", string(s.Bytes()[r.Lo:r.Hi]))

	r, ok = s.structure.RangeOf(CompQuery)
	require.True(t, ok)
	assert.Equal(t, "?q=1", string(s.Bytes()[r.Lo:r.Hi]))

	_, ok = s.structure.RangeOf(CompFragment)
	assert.False(t, ok)
}

// TestCOWIndependence checks §5: two handles sharing a buffer never
// observe each other's mutations.
func TestCOWIndependence(t *testing.T) {
	s1 := buildStorage(t, "http", "example.com", "/a", "")
	s2 := s1.Clone()

	newStructure := s1.structure
	newStructure.PathLen = 2
	newStructure.FirstPathComponentLen = 2
	r, _ := s1.structure.RangeOf(CompPath)
	require.NoError(t, s1.ReplaceSubrange(r, []byte("/z"), newStructure))

	assert.Equal(t, "/z", mustComponent(t, s1, CompPath))
	assert.Equal(t, "/a", mustComponent(t, s2, CompPath))
}

func mustComponent(t *testing.T, s *Storage, c Component) string {
	t.Helper()
	b, ok := s.ComponentBytes(c)
	require.True(t, ok)
	return string(b)
}

func TestReplaceSubrangeExceedsMaximumSize(t *testing.T) {
	s := NewWithMaxSize(8)
	err := s.ReplaceSubrange(ByteRange{0, 0}, []byte("http://example.com/"), simpleHTTPStructure("/", ""))
	assert.ErrorIs(t, err, ErrExceedsMaximumSize)
	assert.Equal(t, 0, len(s.Bytes()))
}

func TestValidateInvariants(t *testing.T) {
	bad := Structure{Sigil: SigilAuthority, HostKind: HostNone}
	assert.Error(t, bad.Validate())

	bad = Structure{Sigil: SigilAuthority, HostKind: HostOpaque, PasswordLen: 1, QueryIsKnownFormEncoded: true}
	assert.Error(t, bad.Validate())

	bad = Structure{Sigil: SigilAuthority, HostKind: HostOpaque, PortLen: 1, QueryIsKnownFormEncoded: true}
	assert.Error(t, bad.Validate())

	bad = Structure{QueryLen: 1, QueryIsKnownFormEncoded: false}
	assert.Error(t, bad.Validate())

	good := Structure{QueryLen: 1, QueryIsKnownFormEncoded: true}
	assert.NoError(t, good.Validate())
}

func TestWithAuthority(t *testing.T) {
	s := buildStorage(t, "http", "example.com", "/a", "")
	var gotHost string
	var gotKind HostKind
	s.WithAuthority(func(slice []byte, hostKind HostKind, uLen, pLen, hLen, portLen uint32) {
		gotKind = hostKind
		gotHost = string(slice[uLen+pLen : uLen+pLen+hLen])
	})
	assert.Equal(t, HostDomain, gotKind)
	assert.Equal(t, "example.com", gotHost)
}
