package whaturl

import (
	"errors"
	"strings"

	"github.com/eposkus/whaturl/urlstore"
)

// Errors mirroring the teacher's bytesurl.go error variables, adapted
// to this package's scope.
var (
	ErrEmptyURL          = errors.New("whaturl: empty url")
	ErrProtocolScheme    = errors.New("whaturl: missing protocol scheme")
	ErrInvalidRequestURI = errors.New("whaturl: invalid URI for request")
)

// ParseError reports the operation and input that failed, mirroring
// the teacher's *Error type.
type ParseError struct {
	Op  string
	URL string
	Err error
}

func (e *ParseError) Error() string { return e.Op + " " + e.URL + ": " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

var specialSchemes = map[string]urlstore.SchemeKind{
	"http":  urlstore.SchemeHTTP,
	"https": urlstore.SchemeHTTPS,
	"ws":    urlstore.SchemeWS,
	"wss":   urlstore.SchemeWSS,
	"ftp":   urlstore.SchemeFTP,
	"file":  urlstore.SchemeFile,
}

// getscheme splits "scheme:rest" off of raw, mirroring the teacher's
// getscheme (same grammar: [a-zA-Z][a-zA-Z0-9+-.]*). Returns ("", raw)
// if raw has no valid scheme prefix.
func getscheme(raw string) (scheme, rest string, err error) {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return "", raw, nil
			}
		case c == ':':
			if i == 0 {
				return "", "", ErrProtocolScheme
			}
			return raw[:i], raw[i+1:], nil
		default:
			return "", raw, nil
		}
	}
	return "", raw, nil
}

func firstPathComponentLen(path string) uint32 {
	if path == "" {
		return 0
	}
	n := 1
	for n < len(path) && path[n] != '/' {
		n++
	}
	return uint32(n)
}

// splitAt cuts s at the first occurrence of any byte in cutset,
// returning the part before and the part at-and-after (so the caller
// keeps the delimiter, matching how component lengths count it).
func splitAt(s string, cutset string) (before, after string) {
	if i := strings.IndexAny(s, cutset); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func isIPv4(host string) bool {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if p == "" || len(p) > 3 {
			return false
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// Parse parses raw into a URL, mirroring the shape of the teacher's
// Parse/parse pair but building an urlstore.Structure plus storage
// buffer instead of four independent []byte fields. It supports
// absolute URLs (scheme://authority/path?query#fragment), opaque URLs
// (scheme:opaque?query#fragment), and path-only relative references;
// it does not implement the WHATWG host-parsing/IDNA algorithm or
// percent-encode malformed input — both are out of scope for this
// adaptation (see DESIGN.md).
func Parse(raw string) (*URL, error) {
	if raw == "" {
		return nil, &ParseError{"parse", raw, ErrEmptyURL}
	}

	var st urlstore.Structure
	rest := raw

	scheme, afterScheme, err := getscheme(rest)
	if err != nil {
		return nil, &ParseError{"parse", raw, err}
	}
	st.SchemeLen = uint32(len(scheme) + 1) // includes the trailing ':'
	if scheme == "" {
		st.SchemeLen = 0
	} else {
		rest = afterScheme
		st.SchemeKind = specialSchemes[strings.ToLower(scheme)]
	}

	rest, fragPart := splitAt(rest, "#")
	rest, queryPart := splitAt(rest, "?")

	hasAuthority := strings.HasPrefix(rest, "//")
	if hasAuthority {
		rest = rest[2:]
		var authority string
		authority, rest = splitAt(rest, "/")
		st.Sigil = urlstore.SigilAuthority

		userinfo := ""
		host := authority
		if i := strings.LastIndex(authority, "@"); i >= 0 {
			userinfo, host = authority[:i], authority[i+1:]
		}
		if userinfo != "" {
			username, password := userinfo, ""
			hasPassword := false
			if i := strings.Index(userinfo, ":"); i >= 0 {
				username, password = userinfo[:i], userinfo[i+1:]
				hasPassword = true
			}
			st.UsernameLen = uint32(len(username))
			if hasPassword {
				// A bare ':' with nothing after it is rejected by
				// urlstore.Structure.Validate as an orphan separator;
				// Parse surfaces that as a ParseError rather than
				// silently misaligning the authority's byte offsets.
				st.PasswordLen = uint32(len(password) + 1) // includes ':'
			}
		}

		hostname, port := host, ""
		if strings.HasPrefix(host, "[") {
			if i := strings.Index(host, "]"); i >= 0 {
				hostname, port = host[:i+1], host[i+1:]
			}
		} else if i := strings.LastIndex(host, ":"); i >= 0 {
			hostname, port = host[:i], host[i:]
		}
		st.HostnameLen = uint32(len(hostname))
		if port != "" {
			st.PortLen = uint32(len(port)) // includes leading ':'
		}

		switch {
		case hostname == "":
			st.HostKind = urlstore.HostEmpty
		case strings.HasPrefix(hostname, "["):
			st.HostKind = urlstore.HostIPv6
		case st.SchemeKind.IsSpecial() && isIPv4(hostname):
			st.HostKind = urlstore.HostIPv4
		case st.SchemeKind.IsSpecial():
			st.HostKind = urlstore.HostDomain
		default:
			st.HostKind = urlstore.HostOpaque
		}
	} else if scheme != "" && !strings.HasPrefix(rest, "/") {
		// scheme:opaque form.
		st.HasOpaquePath = true
	}

	st.PathLen = uint32(len(rest))
	if !st.HasOpaquePath {
		st.FirstPathComponentLen = firstPathComponentLen(rest)
	}

	st.QueryLen = uint32(len(queryPart))
	// A query carries raw wire bytes here, not bytes this package's own
	// kvpairs writer produced, so it is only "known form-encoded" when
	// the §3 invariant (query_len <= 1) makes that trivially true;
	// anything longer is left false so kvpairs.New's reencodeIfNeeded
	// prepass canonicalizes it on first use (§5).
	st.QueryIsKnownFormEncoded = st.QueryLen <= 1
	st.FragmentLen = uint32(len(fragPart))

	if st.SchemeKind.IsSpecial() && st.PathLen == 0 {
		// Special schemes require a non-empty path (§3 invariant); an
		// absolute special URL with no path gets the implicit "/".
		raw = raw[:len(raw)-len(rest)-len(queryPart)-len(fragPart)] + "/" + rest + queryPart + fragPart
		st.PathLen = 1
		st.FirstPathComponentLen = 1
	}

	storage := urlstore.New()
	if err := storage.ReplaceSubrange(urlstore.ByteRange{}, []byte(raw), st); err != nil {
		return nil, &ParseError{"parse", raw, err}
	}
	return newURL(storage), nil
}
