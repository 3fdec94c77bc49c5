// Package whaturl is the external, user-facing URL type built on top
// of urlstore's packed storage, pctenc's percent-encoding, and
// kvpairs' query view — the consumer spec.md's core modules exist to
// serve.
//
// Grounded on the teacher's URL/Userinfo/Values trio
// (ernestas-poskus-bytesurl's bytesurl.go, userinfo.go, values.go),
// kept structurally (same public shape: a URL with Scheme/Host/Path/
// RawQuery/Fragment accessors, a Userinfo, a Query() returning a
// key-value view, a Parse/String pair) but rewritten so the teacher's
// four independent []byte fields become one packed Storage buffer,
// and the teacher's shouldEscape/escape/Values map become pctenc and
// kvpairs respectively.
package whaturl

import "github.com/eposkus/whaturl/pctenc"

// Userinfo is an immutable username/password pair decoded from a
// URL's authority. Grounded on the teacher's userinfo.go, generalized
// from its own four-mode shouldEscape to pctenc.SetUserInfo.
type Userinfo struct {
	username    string
	password    string
	passwordSet bool
}

// User returns a Userinfo with only a username set.
func User(username string) *Userinfo {
	return &Userinfo{username: username}
}

// UserPassword returns a Userinfo with both a username and a password.
func UserPassword(username, password string) *Userinfo {
	return &Userinfo{username: username, password: password, passwordSet: true}
}

// Username returns the decoded username.
func (u *Userinfo) Username() string { return u.username }

// Password returns the decoded password and whether one was set.
func (u *Userinfo) Password() (string, bool) { return u.password, u.passwordSet }

// String returns the encoded "username[:password]" form.
func (u *Userinfo) String() string {
	out := string(pctenc.Encode([]byte(u.username), pctenc.SetUserInfo))
	if u.passwordSet {
		out += ":" + string(pctenc.Encode([]byte(u.password), pctenc.SetUserInfo))
	}
	return out
}
