package kvpairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eposkus/whaturl/urlstore"
)

// buildQueryStorage builds a minimal http Storage with path "/" and
// the given raw (already-encoded) query string, e.g. "?a=1&b=2", or ""
// for no query at all.
func buildQueryStorage(t *testing.T, query string) *urlstore.Storage {
	t.Helper()
	st := urlstore.Structure{
		SchemeLen:               5,
		HostnameLen:             11,
		PathLen:                 1,
		QueryLen:                uint32(len(query)),
		FirstPathComponentLen:   1,
		Sigil:                   urlstore.SigilAuthority,
		SchemeKind:              urlstore.SchemeHTTP,
		HostKind:                urlstore.HostDomain,
		QueryIsKnownFormEncoded: true,
	}
	s := urlstore.New()
	raw := "http://example.com/" + query
	require.NoError(t, s.ReplaceSubrange(urlstore.ByteRange{}, []byte(raw), st))
	return s
}

func TestPairsReadBasic(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&b=hello+world&c")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	all := p.All()
	require.Len(t, all, 3)
	assert.Equal(t, Pair{"a", "1"}, all[0])
	assert.Equal(t, Pair{"b", "hello world"}, all[1])
	assert.Equal(t, Pair{"c", ""}, all[2])

	v, ok := p.First("b")
	require.True(t, ok)
	assert.Equal(t, "hello world", v)

	_, ok = p.First("missing")
	assert.False(t, ok)
}

func TestPairsEmptyQuery(t *testing.T) {
	s := buildQueryStorage(t, "")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.All())
}

func TestPairsAllValuesAndLookupMany(t *testing.T) {
	s := buildQueryStorage(t, "?k=1&k=2&j=3")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, p.AllValues("k"))

	got := p.LookupMany([]string{"j", "missing", "k"})
	require.Len(t, got, 3)
	require.NotNil(t, got[0])
	assert.Equal(t, "3", *got[0])
	assert.Nil(t, got[1])
	require.NotNil(t, got[2])
	assert.Equal(t, "1", *got[2])
}

func TestPairsSetUpdatesExisting(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&b=2")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	require.NoError(t, p.Set("a", "99"))
	v, ok := p.First("a")
	require.True(t, ok)
	assert.Equal(t, "99", v)
	assert.Equal(t, 2, p.Len())
}

// TestPairsSetRemovesSubsequentDuplicates exercises spec.md §4.7 item
// 9: setting a key that occurs more than once updates the first match
// and removes every later match, leaving unrelated pairs in between
// untouched.
func TestPairsSetRemovesSubsequentDuplicates(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&a=2&b=3")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	require.NoError(t, p.Set("a", "99"))
	assert.Equal(t, []Pair{{"a", "99"}, {"b", "3"}}, p.All())

	r, ok := s.ComponentBytes(urlstore.CompQuery)
	require.True(t, ok)
	assert.Equal(t, "?a=99&b=3", string(r))
}

func TestPairsSetAppendsWhenAbsent(t *testing.T) {
	s := buildQueryStorage(t, "?a=1")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	require.NoError(t, p.Set("z", "new"))
	assert.Equal(t, 2, p.Len())
	v, ok := p.First("z")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestPairsAppendOnEmptyQuery(t *testing.T) {
	s := buildQueryStorage(t, "")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	_, err = p.Append(Pair{Key: "a", Value: "1"})
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"a", "1"}}, p.All())

	r, ok := s.ComponentBytes(urlstore.CompQuery)
	require.True(t, ok)
	assert.Equal(t, "?a=1", string(r))
}

func TestPairsAppendAllSortsMapKeys(t *testing.T) {
	s := buildQueryStorage(t, "?a=1")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	_, err = p.AppendAll(map[string]string{"z": "26", "m": "13"})
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"a", "1"}, {"m", "13"}, {"z", "26"}}, p.All())
}

func TestPairsDeleteRemovesAllMatches(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&b=2&a=3")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	n, err := p.Delete("a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []Pair{{"b", "2"}}, p.All())
}

func TestPairsRemoveAllByPredicate(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&b=2&c=3")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	n, err := p.RemoveAll(func(pair Pair) bool { return pair.Value != "2" })
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []Pair{{"a", "1"}, {"c", "3"}}, p.All())
}

// TestPairsRemoveLastPairDropsPrecedingDelimiter exercises spec.md
// §4.7 item 6: removing the last pair(s) of a component, without
// removing everything, must also drop the pair delimiter that used to
// separate the removed pair(s) from what remains — the component must
// not end with a dangling "&".
func TestPairsRemoveLastPairDropsPrecedingDelimiter(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&b=2")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	last := p.IndexAfter(p.StartIndex())
	require.NoError(t, p.Remove(last))

	assert.Equal(t, []Pair{{"a", "1"}}, p.All())
	r, ok := s.ComponentBytes(urlstore.CompQuery)
	require.True(t, ok)
	assert.Equal(t, "?a=1", string(r))
}

// TestPairsRemoveRangeThroughEndDropsPrecedingDelimiter is the
// multi-pair analogue of TestPairsRemoveLastPairDropsPrecedingDelimiter,
// via RemoveRange rather than Remove.
func TestPairsRemoveRangeThroughEndDropsPrecedingDelimiter(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&b=2&c=3")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	mid := p.IndexAfter(p.StartIndex())
	require.NoError(t, p.RemoveRange(mid, p.EndIndex()))

	assert.Equal(t, []Pair{{"a", "1"}}, p.All())
	r, ok := s.ComponentBytes(urlstore.CompQuery)
	require.True(t, ok)
	assert.Equal(t, "?a=1", string(r))
}

func TestPairsInsertAtStart(t *testing.T) {
	s := buildQueryStorage(t, "?b=2")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	_, err = p.Insert(p.StartIndex(), Pair{Key: "a", Value: "1"})
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, p.All())
}

func TestPairsStaleIndexPanics(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&b=2")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	stale := p.StartIndex()
	require.NoError(t, p.Set("a", "99"))

	assert.Panics(t, func() {
		p.Get(stale)
	})
}

func TestPairsOnFragment(t *testing.T) {
	s := buildQueryStorage(t, "")
	st := s.Structure()
	st.FragmentLen = uint32(len("#x=1"))
	require.NoError(t, s.ReplaceSubrange(urlstore.ByteRange{Lo: uint32(len(s.Bytes())), Hi: uint32(len(s.Bytes()))}, []byte("#x=1"), st))

	p, err := New(s, urlstore.CompFragment, PercentEncoded)
	require.NoError(t, err)
	v, ok := p.First("x")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestPairsReplaceKeyAndValue(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&b=2")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	first := p.StartIndex()
	_, err = p.ReplaceValue(first, "99")
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"a", "99"}, {"b", "2"}}, p.All())

	first = p.StartIndex()
	_, err = p.ReplaceKey(first, "z")
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"z", "99"}, {"b", "2"}}, p.All())
}

// TestPairsReplaceValueInsertsMissingDelimiter covers §4.7 item 7: a
// bare key with no '=' gets one inserted when a value is set on it.
func TestPairsReplaceValueInsertsMissingDelimiter(t *testing.T) {
	s := buildQueryStorage(t, "?a=1&c")
	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	all := p.All()
	require.Len(t, all, 2)
	assert.Equal(t, Pair{"c", ""}, all[1])

	bare := p.IndexAfter(p.StartIndex())
	_, err = p.ReplaceValue(bare, "hello")
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"a", "1"}, {"c", "hello"}}, p.All())

	r, ok := s.ComponentBytes(urlstore.CompQuery)
	require.True(t, ok)
	assert.Equal(t, "?a=1&c=hello", string(r))
}

// TestPairsReencodesUnknownFormEncodedQuery exercises §5's
// re-encoding-of-queries prepass: a query built with
// QueryIsKnownFormEncoded false and a non-canonical (lowercase hex)
// escape is rewritten to canonical uppercase-hex form before the view
// is ever read from, and the flag is left set afterward.
func TestPairsReencodesUnknownFormEncodedQuery(t *testing.T) {
	st := urlstore.Structure{
		SchemeLen:             5,
		HostnameLen:           11,
		PathLen:               1,
		QueryLen:              uint32(len("?a=hi%2c there")),
		FirstPathComponentLen: 1,
		Sigil:                 urlstore.SigilAuthority,
		SchemeKind:            urlstore.SchemeHTTP,
		HostKind:              urlstore.HostDomain,
	}
	s := urlstore.New()
	require.NoError(t, s.ReplaceSubrange(urlstore.ByteRange{}, []byte("http://example.com/?a=hi%2c there"), st))

	p, err := New(s, urlstore.CompQuery, FormEncoded)
	require.NoError(t, err)

	assert.Equal(t, []Pair{{"a", "hi, there"}}, p.All())
	assert.True(t, s.Structure().QueryIsKnownFormEncoded)

	r, ok := s.ComponentBytes(urlstore.CompQuery)
	require.True(t, ok)
	assert.Equal(t, "?a=hi%2C%20there", string(r))
}

func TestPairsCanonicalEquivalentKeyLookup(t *testing.T) {
	precomposed := "caf" + "é" // single code point e-acute
	decomposed := "caf" + "e" + "́" // e + combining acute accent
	s := buildQueryStorage(t, "?"+precomposed+"=nfc")
	p, err := New(s, urlstore.CompQuery, PercentEncoded)
	require.NoError(t, err)

	v, ok := p.First(decomposed)
	require.True(t, ok)
	assert.Equal(t, "nfc", v)
}
