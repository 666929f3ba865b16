package fasturi

import (
	"bytes"
	"fmt"

	"braces.dev/errtrace"
)

// BuilderOptions contains URI parts for Build.
//
// Exactly one of QueryParams and QueryString must be non-nil.
// Use an empty non-nil value for a URI without a query string.
type BuilderOptions struct {
	// Scheme is written before "://". The "://" is omitted for empty Scheme.
	Scheme []byte

	// Host is the authority host. It may be an IPv6 literal in brackets.
	Host []byte

	// Port is written after Host. 0 means no port.
	Port int

	// Path must start with '/'. Empty Path becomes "/" if Host is set.
	Path []byte

	// QueryParams are joined with '&' into the query string.
	QueryParams []QueryParam

	// QueryString is used as is.
	QueryString []byte
}

// Build returns a new URI made of the given parts.
//
// The URI is built in a single memory allocation. Parsing its String
// result returns the same parts.
//
// An error wrapping ErrInvalidBuilderOptions is returned for invalid opts.
func Build(opts *BuilderOptions) (*URI, error) {
	if err := opts.validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}

	path := opts.Path
	if len(path) == 0 && len(opts.Host) > 0 {
		path = strSlash
	}
	queryLen := len(opts.QueryString)
	if opts.QueryParams != nil {
		queryLen = queryParamsLen(opts.QueryParams)
	}

	n := len(opts.Host) + len(path)
	if len(opts.Scheme) > 0 {
		n += len(opts.Scheme) + len(strColonSlashSlash)
	}
	if opts.Port > 0 {
		n += 1 + uintLen(opts.Port)
	}
	if queryLen > 0 {
		n += 1 + queryLen
	}

	u := &URI{
		buf:  make([]byte, 0, n),
		port: opts.Port,
	}
	b := u.buf

	if len(opts.Scheme) > 0 {
		b = append(b, opts.Scheme...)
		u.scheme = span{0, len(b)}
		b = append(b, strColonSlashSlash...)
	}

	u.authority.start = len(b)
	b = append(b, opts.Host...)
	u.host = span{u.authority.start, len(b)}
	if opts.Port > 0 {
		b = append(b, ':')
		b = AppendUint(b, opts.Port)
	}
	u.authority.end = len(b)

	u.path.start = len(b)
	b = append(b, path...)
	u.path.end = len(b)

	u.queryString = span{len(b), len(b)}
	if queryLen > 0 {
		b = append(b, '?')
		u.queryString.start = len(b)
		if opts.QueryParams != nil {
			b = AppendQueryParams(b, opts.QueryParams)
		} else {
			b = append(b, opts.QueryString...)
		}
		u.queryString.end = len(b)
	}

	u.pathAndQuery = span{u.path.start, u.queryString.end}
	if queryLen == 0 {
		u.pathAndQuery.end = u.path.end
	}

	if len(b) != n {
		panic(fmt.Sprintf("BUG: built URI length %d doesn't match the computed length %d", len(b), n))
	}
	u.buf = b
	return u, nil
}

func (opts *BuilderOptions) validate() error {
	if (opts.QueryParams == nil) == (opts.QueryString == nil) {
		return errtrace.Wrap(ErrQuerySource)
	}
	if opts.Port < 0 || opts.Port > maxPort {
		return errtrace.Wrap(fmt.Errorf("%w: %d", ErrInvalidPort, opts.Port))
	}
	if len(opts.Scheme) > 0 && !isSchemeToken(opts.Scheme) {
		return errtrace.Wrap(fmt.Errorf("%w: %q", ErrInvalidScheme, opts.Scheme))
	}
	if len(opts.Host) == 0 {
		if opts.Port > 0 {
			return errtrace.Wrap(ErrPortWithoutHost)
		}
	} else if indexPathOrQuery(opts.Host) >= 0 || (opts.Port == 0 && portColon(opts.Host) >= 0) {
		// With a port, the port colon is always the last one, so the host
		// may contain colons.
		return errtrace.Wrap(fmt.Errorf("%w: %q", ErrInvalidHost, opts.Host))
	}
	if len(opts.Path) > 0 && (opts.Path[0] != '/' || bytes.IndexByte(opts.Path, '?') >= 0) {
		return errtrace.Wrap(fmt.Errorf("%w: %q", ErrInvalidPath, opts.Path))
	}
	return nil
}
