package fasturi

import (
	"io"

	"braces.dev/errtrace"
)

// span is a [start, end) byte range within a URI backing store.
type span struct {
	start int
	end   int
}

func (s span) len() int {
	return s.end - s.start
}

// URI represents a parsed or built URI.
//
// All the URI parts are views into a single backing store owned by
// the URI. The backing store is never modified after Parse or Build
// returns, so a URI may be read from concurrently running goroutines.
//
// Byte slices returned by URI methods mustn't be modified. Their capacity
// is limited to their length, so appending to them is safe.
//
// The zero value is an empty URI.
type URI struct {
	buf []byte

	scheme       span
	authority    span
	host         span
	path         span
	queryString  span
	pathAndQuery span

	port int
}

func (u *URI) view(s span) []byte {
	return u.buf[s.start:s.end:s.end]
}

// Scheme returns the URI scheme, e.g. "https".
//
// Empty slice is returned if the URI has no scheme.
func (u *URI) Scheme() []byte {
	return u.view(u.scheme)
}

// Authority returns host with an optional port, e.g. "example.com:8443".
func (u *URI) Authority() []byte {
	return u.view(u.authority)
}

// Host returns the host part of the authority.
func (u *URI) Host() []byte {
	return u.view(u.host)
}

// Port returns the port from the authority.
//
// 0 is returned if the authority has no port.
func (u *URI) Port() int {
	return u.port
}

// Path returns the URI path.
//
// The path is "/" for URIs with a host and no path. It is empty only
// for URIs without a host and a path, e.g. "?foo=bar".
func (u *URI) Path() []byte {
	return u.view(u.path)
}

// QueryString returns the query string without the leading '?'.
func (u *URI) QueryString() []byte {
	return u.view(u.queryString)
}

// PathAndQuery returns path followed by '?' and the query string.
// It equals Path if the query string is empty.
func (u *URI) PathAndQuery() []byte {
	return u.view(u.pathAndQuery)
}

// FullURI returns the whole backing store.
//
// It equals the Parse input, except that "/" is inserted after the
// authority when the input has a host but no path.
func (u *URI) FullURI() []byte {
	return u.buf[:len(u.buf):len(u.buf)]
}

// String returns the full URI.
func (u *URI) String() string {
	return b2s(u.buf)
}

// AppendBytes appends the full URI to dst and returns the extended dst.
func (u *URI) AppendBytes(dst []byte) []byte {
	return append(dst, u.buf...)
}

// WriteTo writes the full URI to w.
//
// WriteTo implements io.WriterTo interface.
func (u *URI) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(u.buf)
	return int64(n), errtrace.Wrap(err)
}

// BuilderOptions returns options that make Build reproduce u.
//
// The returned options reference u views and may be modified before
// calling Build.
func (u *URI) BuilderOptions() BuilderOptions {
	qs := u.QueryString()
	if qs == nil {
		qs = []byte{}
	}
	return BuilderOptions{
		Scheme:      u.Scheme(),
		Host:        u.Host(),
		Port:        u.port,
		Path:        u.Path(),
		QueryString: qs,
	}
}
