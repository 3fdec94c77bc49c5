package kvpairs

import "golang.org/x/text/unicode/norm"

// normKey puts a key into Unicode Normalization Form C so that two
// spellings of the same key (e.g. an "e"+combining-acute sequence vs.
// the precomposed "é") compare equal under canonical equivalence, as
// required by spec.md §4.6's key lookup. Grounded on
// golang.org/x/text/unicode/norm, wired per SPEC_FULL.md §2 — the
// teacher has no Unicode-aware comparison of its own to generalize
// from.
func normKey(s string) string {
	return norm.NFC.String(s)
}
