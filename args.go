package fasturi

import (
	"fmt"

	"braces.dev/errtrace"
)

// QueryParam is a single key=value pair from a query string.
//
// Key and Value are views into the backing store of the URI they were
// obtained from. They are left percent-encoded.
//
// Value is nil if the query string segment has no '='. It is empty,
// but not nil, for segments like "key=".
type QueryParam struct {
	Key   []byte
	Value []byte
}

// QueryParamScanner iterates over query string params without memory
// allocations.
//
// The query string is split on '&' and then on the first '=' of each
// segment, so values may contain '='. Empty segments, e.g. in "a=1&&b=2",
// are skipped.
type QueryParamScanner struct {
	b []byte
}

// NewQueryParamScanner returns a scanner over the given query string
// (without the leading '?').
func NewQueryParamScanner(queryString []byte) *QueryParamScanner {
	return &QueryParamScanner{b: queryString}
}

// QueryParamScanner returns a scanner over u query string.
func (u *URI) QueryParamScanner() *QueryParamScanner {
	return NewQueryParamScanner(u.QueryString())
}

// Next stores the next query param into p.
//
// false is returned when there are no more params. p isn't modified then.
func (s *QueryParamScanner) Next(p *QueryParam) bool {
	for len(s.b) > 0 {
		eq := -1
		i := 0
		for ; i < len(s.b); i++ {
			c := s.b[i]
			if c == '&' {
				break
			}
			if c == '=' && eq < 0 {
				eq = i
			}
		}
		seg := s.b[:i:i]
		if i < len(s.b) {
			i++
		}
		s.b = s.b[i:]

		if len(seg) == 0 {
			continue
		}
		if eq < 0 {
			p.Key = seg
			p.Value = nil
		} else {
			p.Key = seg[:eq:eq]
			p.Value = seg[eq+1:]
		}
		return true
	}
	return false
}

// SplitQueryParams splits u query string into params and stores them into out.
//
// The number of params stored is returned. Params are stored in the order
// they appear in the query string, duplicate keys included.
//
// len(out) is the destination capacity. ErrInsufficientCapacity is returned
// if the query string contains more params than len(out). SplitQueryParams
// never allocates a new destination.
func SplitQueryParams(u *URI, out []QueryParam) (int, error) {
	s := QueryParamScanner{b: u.QueryString()}
	n := 0
	var p QueryParam
	for s.Next(&p) {
		if n == len(out) {
			total := n + 1
			for s.Next(&p) {
				total++
			}
			return 0, errtrace.Wrap(fmt.Errorf("%w: the query string contains %d params, capacity is %d",
				ErrInsufficientCapacity, total, len(out)))
		}
		out[n] = p
		n++
	}
	return n, nil
}

// QueryParams returns all the params from u query string.
func (u *URI) QueryParams() []QueryParam {
	var params []QueryParam
	s := QueryParamScanner{b: u.QueryString()}
	var p QueryParam
	for s.Next(&p) {
		params = append(params, p)
	}
	return params
}

// VisitQueryParams calls f for each query param.
//
// value is nil for params without '='.
func (u *URI) VisitQueryParams(f func(key, value []byte)) {
	s := QueryParamScanner{b: u.QueryString()}
	var p QueryParam
	for s.Next(&p) {
		f(p.Key, p.Value)
	}
}

// PeekQueryParam returns the value of the first query param with the given key.
//
// nil is returned if there is no such param or it has no value.
func (u *URI) PeekQueryParam(key string) []byte {
	s := QueryParamScanner{b: u.QueryString()}
	var p QueryParam
	for s.Next(&p) {
		if b2s(p.Key) == key {
			return p.Value
		}
	}
	return nil
}

// HasQueryParam returns true if u query string contains the given key.
func (u *URI) HasQueryParam(key string) bool {
	s := QueryParamScanner{b: u.QueryString()}
	var p QueryParam
	for s.Next(&p) {
		if b2s(p.Key) == key {
			return true
		}
	}
	return false
}

// AppendQueryParams appends query string made of params to dst
// and returns the extended dst.
//
// Keys and values are written as is. "=value" is omitted for params
// with empty or nil value.
func AppendQueryParams(dst []byte, params []QueryParam) []byte {
	for i, n := 0, len(params); i < n; i++ {
		p := &params[i]
		dst = append(dst, p.Key...)
		if len(p.Value) > 0 {
			dst = append(dst, '=')
			dst = append(dst, p.Value...)
		}
		if i+1 < n {
			dst = append(dst, '&')
		}
	}
	return dst
}

func queryParamsLen(params []QueryParam) int {
	n := 0
	for i := range params {
		p := &params[i]
		n += len(p.Key)
		if len(p.Value) > 0 {
			n += 1 + len(p.Value)
		}
	}
	if len(params) > 1 {
		n += len(params) - 1
	}
	return n
}
