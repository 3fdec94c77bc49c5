package kvpairs

import (
	"errors"
	"sort"

	"github.com/eposkus/whaturl/pctenc"
	"github.com/eposkus/whaturl/urlstore"
)

// ErrWrongComponent is returned by New when component is not Query or
// Fragment.
var ErrWrongComponent = errors.New("kvpairs: key-value pairs are only supported on Query and Fragment")

// ErrStaleIndex is the panic value used when an Index minted before a
// mutation is used against the Pairs view afterward (§4.7's
// generation-epoch invalidation).
var ErrStaleIndex = errors.New("kvpairs: index was invalidated by a mutation")

// Pair is one decoded key-value pair.
type Pair struct {
	Key, Value string
}

// Index addresses one key-value pair inside a Pairs view. It is a
// cursor, not a byte offset: Pairs recomputes content on every mutation
// and stamps a new generation, so an Index minted before the mutation
// can be detected as stale instead of silently addressing the wrong
// bytes (§4.7).
type Index struct {
	pairRange  urlstore.ByteRange
	kvDelim    uint32
	generation uint64
}

func (i Index) atEnd(hi uint32) bool { return i.pairRange.Lo >= hi }

// Pairs is a schema-driven, cursor-indexed view over a single URL
// component's key-value list (§4.6-4.7). Grounded on the teacher's
// Values (values.go), generalized from a hardcoded "&"/"=" decode into
// a map to a pluggable Schema plus a lazily recomputed cursor index
// over the packed Storage buffer, so pairs are read and rewritten in
// place rather than round-tripped through a full map encode.
type Pairs struct {
	storage      *urlstore.Storage
	component    urlstore.Component
	schema       Schema
	contentRange urlstore.ByteRange
	generation   uint64
}

// New returns a Pairs view over component (Query or Fragment) of
// storage, using schema to delimit and decode pairs. It returns
// ErrWrongComponent if component is unsupported. A schema that does not
// pass Verify is a programmer error: New panics with the
// *VerificationError.
func New(storage *urlstore.Storage, component urlstore.Component, schema Schema) (*Pairs, error) {
	if component != urlstore.CompQuery && component != urlstore.CompFragment {
		return nil, ErrWrongComponent
	}
	if err := Verify(schema, component); err != nil {
		panic(err)
	}
	p := &Pairs{storage: storage, component: component, schema: schema}
	p.recompute()
	if err := p.reencodeIfNeeded(); err != nil {
		return nil, err
	}
	return p, nil
}

// reencodeIfNeeded implements §5's "re-encoding of queries": if the
// query is not yet known to be form-encoded (e.g. a query carried over
// from a raw URL string without this package's own escaping), rewrite
// it wholesale into this schema's canonical percent-encoding before any
// Index is minted, so every subsequent read or mutation operates on
// canonical bytes and no one observes the pre-canonical form. This is
// the one O(n) prepass §5 permits; it is a no-op after the first call
// because rebuild always sets the flag once it touches the query.
func (p *Pairs) reencodeIfNeeded() error {
	if p.component != urlstore.CompQuery || p.storage.Structure().QueryIsKnownFormEncoded {
		return nil
	}
	hi := p.contentRange.Hi
	var pairs []Pair
	for i := p.StartIndex(); !i.atEnd(hi); i = p.IndexAfter(i) {
		pairs = append(pairs, Pair{
			Key:   string(pctenc.Decode(p.rawKey(i), p.encodeSet())),
			Value: string(pctenc.Decode(p.rawValue(i), p.encodeSet())),
		})
	}
	content := p.joinPairs(pairs)
	var full []byte
	if len(pairs) > 0 {
		full = append([]byte{p.componentDelimiter()}, content...)
	}
	start := p.componentStart()
	return p.rebuild(urlstore.ByteRange{Lo: start, Hi: start + p.componentLen()}, full)
}

func (p *Pairs) componentStart() uint32 {
	st := p.storage.Structure()
	if p.component == urlstore.CompQuery {
		return st.QueryStart()
	}
	return st.FragmentStart()
}

func (p *Pairs) componentLen() uint32 {
	st := p.storage.Structure()
	if p.component == urlstore.CompQuery {
		return st.QueryLen
	}
	return st.FragmentLen
}

// recompute refreshes contentRange from the underlying storage and
// bumps the generation, invalidating every Index minted before this
// call.
func (p *Pairs) recompute() {
	start := p.componentStart()
	length := p.componentLen()
	if length == 0 {
		p.contentRange = urlstore.ByteRange{Lo: start, Hi: start}
	} else {
		p.contentRange = urlstore.ByteRange{Lo: start + 1, Hi: start + length}
	}
	p.generation++
}

func (p *Pairs) encodeSet() pctenc.EncodeSet {
	return NewComponentEncodeSet(p.schema, p.component)
}

func (p *Pairs) buf() []byte { return p.storage.Bytes() }

func (p *Pairs) checkGeneration(i Index) {
	if i.generation != p.generation {
		panic(ErrStaleIndex)
	}
}

// scanFrom builds the Index for the first non-empty pair starting at
// or after lo, within content_range.
func (p *Pairs) scanFrom(lo uint32) Index {
	hi := p.contentRange.Hi
	buf := p.buf()
	for lo < hi && p.schema.IsPairDelimiter(buf[lo]) {
		lo++
	}
	if lo >= hi {
		return Index{pairRange: urlstore.ByteRange{Lo: hi, Hi: hi}, kvDelim: hi, generation: p.generation}
	}
	pairEnd := lo
	for pairEnd < hi && !p.schema.IsPairDelimiter(buf[pairEnd]) {
		pairEnd++
	}
	kvDelim := pairEnd
	for q := lo; q < pairEnd; q++ {
		if p.schema.IsKVDelimiter(buf[q]) {
			kvDelim = q
			break
		}
	}
	return Index{pairRange: urlstore.ByteRange{Lo: lo, Hi: pairEnd}, kvDelim: kvDelim, generation: p.generation}
}

// StartIndex returns the index of the first pair, or EndIndex if the
// view is empty.
func (p *Pairs) StartIndex() Index { return p.scanFrom(p.contentRange.Lo) }

// EndIndex returns the sentinel one-past-the-end index.
func (p *Pairs) EndIndex() Index {
	hi := p.contentRange.Hi
	return Index{pairRange: urlstore.ByteRange{Lo: hi, Hi: hi}, kvDelim: hi, generation: p.generation}
}

// IndexAfter returns the index of the pair following i.
func (p *Pairs) IndexAfter(i Index) Index {
	p.checkGeneration(i)
	hi := p.contentRange.Hi
	if i.atEnd(hi) {
		return i
	}
	next := i.pairRange.Hi + 1
	if next > hi {
		next = hi
	}
	return p.scanFrom(next)
}

// Len counts the pairs in the view. O(n) in the component's length.
func (p *Pairs) Len() int {
	n := 0
	for i := p.StartIndex(); !i.atEnd(p.contentRange.Hi); i = p.IndexAfter(i) {
		n++
	}
	return n
}

func (p *Pairs) rawKey(i Index) []byte   { return p.buf()[i.pairRange.Lo:i.kvDelim] }
func (p *Pairs) rawValue(i Index) []byte {
	if i.kvDelim >= i.pairRange.Hi {
		return nil
	}
	return p.buf()[i.kvDelim+1 : i.pairRange.Hi]
}

// Get decodes the pair at i.
func (p *Pairs) Get(i Index) Pair {
	p.checkGeneration(i)
	set := p.encodeSet()
	return Pair{
		Key:   string(pctenc.Decode(p.rawKey(i), set)),
		Value: string(pctenc.Decode(p.rawValue(i), set)),
	}
}

// All decodes every pair in order.
func (p *Pairs) All() []Pair {
	var out []Pair
	for i := p.StartIndex(); !i.atEnd(p.contentRange.Hi); i = p.IndexAfter(i) {
		out = append(out, p.Get(i))
	}
	return out
}

func keysEqual(a, b string) bool {
	// Canonical equivalence per spec.md §4.6: normalize both sides
	// before comparing so e.g. combining-mark sequences that denote the
	// same key match. Grounded on SPEC_FULL.md §2's choice of
	// golang.org/x/text/unicode/norm, sourced from the retrieval pack's
	// broader manifest rather than the teacher, which has no Unicode
	// dependency of its own.
	return normKey(a) == normKey(b)
}

// First returns the value of the first pair whose key is canonically
// equivalent to key.
func (p *Pairs) First(key string) (string, bool) {
	for i := p.StartIndex(); !i.atEnd(p.contentRange.Hi); i = p.IndexAfter(i) {
		pair := p.Get(i)
		if keysEqual(pair.Key, key) {
			return pair.Value, true
		}
	}
	return "", false
}

// AllValues returns every value whose key is canonically equivalent to
// key, in order.
func (p *Pairs) AllValues(key string) []string {
	var out []string
	for i := p.StartIndex(); !i.atEnd(p.contentRange.Hi); i = p.IndexAfter(i) {
		pair := p.Get(i)
		if keysEqual(pair.Key, key) {
			out = append(out, pair.Value)
		}
	}
	return out
}

// LookupMany resolves the first value of each of keys in a single scan
// over the view (§4.7's batched lookup of up to a handful of keys),
// terminating early once every key has been resolved. The entry for a
// key that is not found is nil.
func (p *Pairs) LookupMany(keys []string) []*string {
	out := make([]*string, len(keys))
	remaining := len(keys)
	for i := p.StartIndex(); remaining > 0 && !i.atEnd(p.contentRange.Hi); i = p.IndexAfter(i) {
		pair := p.Get(i)
		for k, key := range keys {
			if out[k] != nil {
				continue
			}
			if keysEqual(pair.Key, key) {
				v := pair.Value
				out[k] = &v
				remaining--
			}
		}
	}
	return out
}

func (p *Pairs) encodePair(pair Pair) []byte {
	set := p.encodeSet()
	out := pctenc.Encode([]byte(pair.Key), set)
	out = append(out, p.schema.PreferredKVDelimiter())
	out = append(out, pctenc.Encode([]byte(pair.Value), set)...)
	return out
}

func (p *Pairs) joinPairs(pairs []Pair) []byte {
	var out []byte
	for idx, pair := range pairs {
		if idx > 0 {
			out = append(out, p.schema.PreferredPairDelimiter())
		}
		out = append(out, p.encodePair(pair)...)
	}
	return out
}

// componentDelimiter is the single byte that introduces this
// component within the URL (the leading sigil that Structure counts
// as part of the component's length but content_range excludes).
func (p *Pairs) componentDelimiter() byte {
	if p.component == urlstore.CompQuery {
		return '?'
	}
	return '#'
}

// rebuild splices replacement (already schema-encoded, no leading/
// trailing delimiter) in place of byteRange and reinstalls a Structure
// with the affected component's length adjusted accordingly, then
// recomputes the view.
func (p *Pairs) rebuild(byteRange urlstore.ByteRange, replacement []byte) error {
	st := p.storage.Structure()
	delta := len(replacement) - int(byteRange.Len())
	switch p.component {
	case urlstore.CompQuery:
		st.QueryLen = uint32(int(st.QueryLen) + delta)
		st.QueryIsKnownFormEncoded = true
	case urlstore.CompFragment:
		st.FragmentLen = uint32(int(st.FragmentLen) + delta)
	}
	if err := p.storage.ReplaceSubrange(byteRange, replacement, st); err != nil {
		return err
	}
	p.recompute()
	return nil
}

// ReplaceRange replaces every pair in [lo, hi) with newPairs and
// returns the index of the first of the newly inserted pairs (or the
// index that followed the replaced range, if newPairs is empty). This
// is the primitive every other mutation (§4.7) is expressed in terms
// of.
func (p *Pairs) ReplaceRange(lo, hi Index, newPairs []Pair) (Index, error) {
	p.checkGeneration(lo)
	p.checkGeneration(hi)

	byteLo := lo.pairRange.Lo
	byteHi := hi.pairRange.Lo
	hadTrailingContent := byteHi < p.contentRange.Hi
	componentWasAbsent := p.componentLen() == 0
	// Removing through content_range.hi drops the delimiter immediately
	// before the removed range: the component's own leading '?'/'#' if
	// nothing is left before it, or the preceding pair delimiter
	// otherwise — either way the component must not end with a
	// dangling pair delimiter (§4.7 item 6).
	removesThroughEnd := len(newPairs) == 0 && byteLo < byteHi && byteHi == p.contentRange.Hi && byteLo > p.contentRange.Lo
	replacesEverything := byteLo == p.contentRange.Lo && byteHi == p.contentRange.Hi

	replacement := p.joinPairs(newPairs)
	// A pair delimiter is only written in front of the new pairs when the
	// byte before them is not already one (appending after the last pair).
	needsLeadingDelim := len(newPairs) > 0 && byteLo > p.contentRange.Lo && !p.schema.IsPairDelimiter(p.buf()[byteLo-1])
	needsTrailingDelim := hadTrailingContent && len(newPairs) > 0

	var out []byte
	if needsLeadingDelim {
		out = append(out, p.schema.PreferredPairDelimiter())
	}
	out = append(out, replacement...)
	if needsTrailingDelim {
		out = append(out, p.schema.PreferredPairDelimiter())
	}

	switch {
	case componentWasAbsent && len(newPairs) > 0:
		// The component itself (its leading '?' or '#') did not exist
		// yet; introduce it along with the first pair.
		out = append([]byte{p.componentDelimiter()}, out...)
	case !componentWasAbsent && (replacesEverything || removesThroughEnd) && len(newPairs) == 0:
		byteLo--
	}

	resultPos := byteLo
	if componentWasAbsent && len(newPairs) > 0 {
		// Content now starts one byte later, past the delimiter we
		// just introduced.
		resultPos = byteLo + 1
	}

	if err := p.rebuild(urlstore.ByteRange{Lo: byteLo, Hi: byteHi}, out); err != nil {
		return Index{}, err
	}
	return p.scanFrom(resultPos), nil
}

// Insert inserts pair immediately before at.
func (p *Pairs) Insert(at Index, pair Pair) (Index, error) {
	return p.ReplaceRange(at, at, []Pair{pair})
}

// Append adds pair at the end of the view.
func (p *Pairs) Append(pair Pair) (Index, error) {
	end := p.EndIndex()
	return p.ReplaceRange(end, end, []Pair{pair})
}

// AppendAll adds pairs, sorted by key, at the end of the view — the
// "bulk append from a map" entry point of §4.7, which requires a
// deterministic order since a Go map does not iterate in one.
func (p *Pairs) AppendAll(pairs map[string]string) (Index, error) {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ordered := make([]Pair, len(keys))
	for i, k := range keys {
		ordered[i] = Pair{Key: k, Value: pairs[k]}
	}
	end := p.EndIndex()
	return p.ReplaceRange(end, end, ordered)
}

// Remove deletes the single pair at i.
func (p *Pairs) Remove(i Index) error {
	next := p.IndexAfter(i)
	_, err := p.ReplaceRange(i, next, nil)
	return err
}

// RemoveRange deletes every pair in [lo, hi).
func (p *Pairs) RemoveRange(lo, hi Index) error {
	_, err := p.ReplaceRange(lo, hi, nil)
	return err
}

// RemoveAll deletes every pair for which keep returns false, and
// reports how many were removed.
func (p *Pairs) RemoveAll(keep func(Pair) bool) (int, error) {
	kept := make([]Pair, 0)
	removed := 0
	for i := p.StartIndex(); !i.atEnd(p.contentRange.Hi); i = p.IndexAfter(i) {
		pair := p.Get(i)
		if keep(pair) {
			kept = append(kept, pair)
		} else {
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	_, err := p.ReplaceRange(p.StartIndex(), p.EndIndex(), kept)
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Delete removes every pair whose key is canonically equivalent to
// key, reporting how many were removed.
func (p *Pairs) Delete(key string) (int, error) {
	return p.RemoveAll(func(pair Pair) bool { return !keysEqual(pair.Key, key) })
}

// Set replaces the value of the first pair whose key is canonically
// equivalent to key and removes every later pair with the same key, or
// appends {key, value} if none exists — the subscripting-assignment
// operation of §4.7 item 9 (kvp[key] = value).
func (p *Pairs) Set(key, value string) error {
	var first, last Index
	found := false
	for i := p.StartIndex(); !i.atEnd(p.contentRange.Hi); i = p.IndexAfter(i) {
		if keysEqual(p.Get(i).Key, key) {
			if !found {
				first = i
				found = true
			}
			last = i
		}
	}
	if !found {
		_, err := p.Append(Pair{Key: key, Value: value})
		return err
	}

	replaced := []Pair{{Key: key, Value: value}}
	end := p.IndexAfter(last)
	for i := p.IndexAfter(first); i != end; i = p.IndexAfter(i) {
		if pair := p.Get(i); !keysEqual(pair.Key, key) {
			replaced = append(replaced, pair)
		}
	}
	_, err := p.ReplaceRange(first, end, replaced)
	return err
}

// ReplaceKey byte-level replaces the key of the pair at at with newKey,
// leaving its value (and the rest of the view) untouched — §4.7 item 7.
// If at has no kv_delimiter (a bare key with no '='), the whole pair is
// the key and this still replaces exactly that span.
func (p *Pairs) ReplaceKey(at Index, newKey string) (Index, error) {
	p.checkGeneration(at)
	encKey := pctenc.Encode([]byte(newKey), p.encodeSet())
	start := at.pairRange.Lo
	if err := p.rebuild(urlstore.ByteRange{Lo: at.pairRange.Lo, Hi: at.kvDelim}, encKey); err != nil {
		return Index{}, err
	}
	return p.scanFrom(start), nil
}

// ReplaceValue byte-level replaces the value of the pair at at with
// newValue, leaving its key untouched. If at had no kv_delimiter (a
// bare key, e.g. the "c" in "a=1&c"), one is inserted along with the
// new value — §4.7 item 7's "automatically inserting a kv_delimiter
// when needed" case.
func (p *Pairs) ReplaceValue(at Index, newValue string) (Index, error) {
	p.checkGeneration(at)
	encValue := pctenc.Encode([]byte(newValue), p.encodeSet())
	start := at.pairRange.Lo

	if at.kvDelim >= at.pairRange.Hi {
		replacement := append([]byte{p.schema.PreferredKVDelimiter()}, encValue...)
		if err := p.rebuild(urlstore.ByteRange{Lo: at.pairRange.Hi, Hi: at.pairRange.Hi}, replacement); err != nil {
			return Index{}, err
		}
		return p.scanFrom(start), nil
	}

	if err := p.rebuild(urlstore.ByteRange{Lo: at.kvDelim + 1, Hi: at.pairRange.Hi}, encValue); err != nil {
		return Index{}, err
	}
	return p.scanFrom(start), nil
}
