package whaturl

import (
	"github.com/eposkus/whaturl/kvpairs"
	"github.com/eposkus/whaturl/pctenc"
	"github.com/eposkus/whaturl/urlstore"
)

// URL is a parsed URL backed by a packed urlstore.Storage: unlike the
// teacher's URL, which holds Scheme/Host/Path/RawQuery/Fragment as
// four independent []byte allocations, every component here is a
// derived view over one contiguous buffer (§4.5).
type URL struct {
	storage *urlstore.Storage
}

func newURL(storage *urlstore.Storage) *URL { return &URL{storage: storage} }

// String reassembles the URL. Because Storage already holds the
// packed wire form, this is just the buffer as-is — there is no
// teacher-style Bytes() reassembly step to reproduce.
func (u *URL) String() string { return string(u.storage.Bytes()) }

func (u *URL) component(c urlstore.Component) ([]byte, bool) {
	return u.storage.ComponentBytes(c)
}

// Scheme returns the URL's scheme, without the trailing ':'.
func (u *URL) Scheme() string {
	b, ok := u.component(urlstore.CompScheme)
	if !ok {
		return ""
	}
	return string(b[:len(b)-1])
}

// IsSpecial reports whether the scheme is one of the six WHATWG
// "special" schemes.
func (u *URL) IsSpecial() bool { return u.storage.Structure().SchemeKind.IsSpecial() }

// HasAuthority reports whether the URL carries a "//" authority
// component (as opposed to an opaque-path URL like "mailto:a@b").
func (u *URL) HasAuthority() bool { return u.storage.Structure().Sigil == urlstore.SigilAuthority }

// User returns the URL's userinfo, or nil if none is present.
func (u *URL) User() *Userinfo {
	st := u.storage.Structure()
	if st.UsernameLen == 0 && st.PasswordLen == 0 {
		return nil
	}
	var user Userinfo
	u.storage.WithAuthority(func(slice []byte, _ urlstore.HostKind, uLen, pLen, _, _ uint32) {
		user.username = string(pctenc.Decode(slice[:uLen], pctenc.SetUserInfo))
		if pLen > 0 {
			user.password = string(pctenc.Decode(slice[uLen+1:uLen+pLen], pctenc.SetUserInfo))
			user.passwordSet = true
		}
	})
	return &user
}

// Hostname returns the host as it is stored in the URL (not
// percent-decoded), without a port.
func (u *URL) Hostname() string {
	b, ok := u.component(urlstore.CompHostname)
	if !ok {
		return ""
	}
	return string(b)
}

// Port returns the port, without its leading ':'.
func (u *URL) Port() string {
	b, ok := u.component(urlstore.CompPort)
	if !ok {
		return ""
	}
	return string(b[1:])
}

// Host returns "hostname[:port]".
func (u *URL) Host() string {
	host := u.Hostname()
	if port := u.Port(); port != "" {
		return host + ":" + port
	}
	return host
}

// Opaque reports whether the URL has an opaque (non-hierarchical)
// path, and returns its raw, undecoded bytes if so — mirroring the
// teacher's URL.Opaque field.
func (u *URL) Opaque() (string, bool) {
	st := u.storage.Structure()
	if !st.HasOpaquePath {
		return "", false
	}
	b, _ := u.component(urlstore.CompPath)
	return string(b), true
}

// Path returns the decoded path. An opaque path is returned as-is,
// undecoded.
func (u *URL) Path() string {
	b, ok := u.component(urlstore.CompPath)
	if !ok {
		return ""
	}
	if u.storage.Structure().HasOpaquePath {
		return string(b)
	}
	return string(pctenc.Decode(b, pctenc.SetPath))
}

// RawQuery returns the query string's encoded bytes, without the
// leading '?'.
func (u *URL) RawQuery() string {
	b, ok := u.component(urlstore.CompQuery)
	if !ok {
		return ""
	}
	return string(b[1:])
}

// Fragment returns the decoded fragment, without the leading '#'.
func (u *URL) Fragment() string {
	b, ok := u.component(urlstore.CompFragment)
	if !ok {
		return ""
	}
	return string(pctenc.Decode(b[1:], pctenc.SetFragment))
}

// Query returns a key-value pairs view over the URL's query string,
// form-encoded per application/x-www-form-urlencoded — the teacher's
// URL.Query()/ParseQuery pair, generalized from a one-shot map decode
// to a live, mutable view (§4.6-4.7).
func (u *URL) Query() (*kvpairs.Pairs, error) {
	return kvpairs.New(u.storage, urlstore.CompQuery, kvpairs.FormEncoded)
}

// RequestURI returns the encoded path(-or-opaque)?query string that
// would be used in an HTTP request line, mirroring the teacher's
// URL.RequestURI.
func (u *URL) RequestURI() string {
	var result string
	if opaque, ok := u.Opaque(); ok {
		result = opaque
	} else {
		b, _ := u.component(urlstore.CompPath)
		if len(b) == 0 {
			result = "/"
		} else {
			result = string(b)
		}
	}
	if q, ok := u.component(urlstore.CompQuery); ok {
		result += string(q)
	}
	return result
}
