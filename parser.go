package fasturi

import (
	"bytes"

	"braces.dev/errtrace"
)

// Parse parses the given uri.
//
// The following forms are recognized:
//
//	scheme://host:port/path?query
//	host:port/path?query
//	/path?query
//
// Every part except the path is optional. A string starting with '/' is
// always a path. Any other string without "://" starts with the authority,
// which runs up to the first '/' or '?'.
//
// uri is copied, so it may be modified after Parse returns.
// Percent-encoded octets are left as is.
//
// ErrMalformedInput is returned on invalid port or a scheme-looking prefix
// without "//", e.g. "https:/host".
func Parse(uri []byte) (*URI, error) {
	u := &URI{}
	if err := u.parse(uri); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// ParseString is like Parse, but accepts a string.
func ParseString(uri string) (*URI, error) {
	return errtrace.Wrap2(Parse(s2b(uri)))
}

// MustParse is like ParseString, but panics on error.
// It is intended for initializing URIs from constants.
func MustParse(uri string) *URI {
	u, err := ParseString(uri)
	if err != nil {
		panic(err)
	}
	return u
}

func (u *URI) parse(b []byte) error {
	var scheme, authority, host span
	port := 0

	pos := 0
	if n := bytes.Index(b, strColonSlashSlash); n > 0 && isSchemeToken(b[:n]) {
		scheme = span{0, n}
		pos = n + len(strColonSlashSlash)
	}

	if pos < len(b) && b[pos] != '/' {
		n := indexPathOrQuery(b[pos:])
		if n < 0 {
			n = len(b) - pos
		}
		if n > 0 {
			a := b[pos : pos+n]
			h, p, err := splitAuthority(a)
			if err != nil {
				return errtrace.Wrap(err)
			}
			authority = span{pos, pos + n}
			host = span{pos, pos + len(h)}
			port = p
			pos += n
		}
	}

	pathStart := pos
	pathEnd := len(b)
	hasQuery := false
	if n := bytes.IndexByte(b[pathStart:], '?'); n >= 0 {
		pathEnd = pathStart + n
		hasQuery = true
	}

	// The backing store is the input with "/" inserted at pathStart
	// if there is a host without a path.
	shift := 0
	if authority.len() > 0 && pathEnd == pathStart {
		shift = 1
	}
	buf := make([]byte, len(b)+shift)
	copy(buf, b[:pathStart])
	if shift > 0 {
		buf[pathStart] = '/'
	}
	copy(buf[pathStart+shift:], b[pathStart:])

	path := span{pathStart, pathEnd + shift}
	queryString := span{path.end, path.end}
	if hasQuery {
		queryString = span{path.end + 1, len(buf)}
	}
	pathAndQuery := path
	if queryString.len() > 0 {
		pathAndQuery.end = queryString.end
	}

	u.buf = buf
	u.scheme = scheme
	u.authority = authority
	u.host = host
	u.port = port
	u.path = path
	u.queryString = queryString
	u.pathAndQuery = pathAndQuery
	return nil
}

// indexPathOrQuery returns the index of the first '/' or '?' in b, or -1.
func indexPathOrQuery(b []byte) int {
	for i, c := range b {
		if c == '/' || c == '?' {
			return i
		}
	}
	return -1
}
