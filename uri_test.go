package fasturi

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type uriParts struct {
	Scheme       string
	Authority    string
	Host         string
	Port         int
	Path         string
	QueryString  string
	PathAndQuery string
}

func partsOf(u *URI) uriParts {
	return uriParts{
		Scheme:       string(u.Scheme()),
		Authority:    string(u.Authority()),
		Host:         string(u.Host()),
		Port:         u.Port(),
		Path:         string(u.Path()),
		QueryString:  string(u.QueryString()),
		PathAndQuery: string(u.PathAndQuery()),
	}
}

const testQueryString = "test1=value1&test%20space=value%20space&test2=value2&test2=value3"

func TestURIParse(t *testing.T) {
	t.Parallel()

	// full uri
	testURIParse(t, "https://www.test.com:8443/path/to/resource?"+testQueryString, uriParts{
		Scheme:       "https",
		Authority:    "www.test.com:8443",
		Host:         "www.test.com",
		Port:         8443,
		Path:         "/path/to/resource",
		QueryString:  testQueryString,
		PathAndQuery: "/path/to/resource?" + testQueryString,
	})

	// no scheme
	testURIParse(t, "www.test.com:8443/path/to/resource?"+testQueryString, uriParts{
		Authority:    "www.test.com:8443",
		Host:         "www.test.com",
		Port:         8443,
		Path:         "/path/to/resource",
		QueryString:  testQueryString,
		PathAndQuery: "/path/to/resource?" + testQueryString,
	})

	// no port
	testURIParse(t, "https://www.test.com/path/to/resource?"+testQueryString, uriParts{
		Scheme:       "https",
		Authority:    "www.test.com",
		Host:         "www.test.com",
		Path:         "/path/to/resource",
		QueryString:  testQueryString,
		PathAndQuery: "/path/to/resource?" + testQueryString,
	})

	// root path
	testURIParse(t, "https://www.test.com:8443/?"+testQueryString, uriParts{
		Scheme:       "https",
		Authority:    "www.test.com:8443",
		Host:         "www.test.com",
		Port:         8443,
		Path:         "/",
		QueryString:  testQueryString,
		PathAndQuery: "/?" + testQueryString,
	})

	// no query
	testURIParse(t, "https://www.test.com:8443/path/to/resource", uriParts{
		Scheme:       "https",
		Authority:    "www.test.com:8443",
		Host:         "www.test.com",
		Port:         8443,
		Path:         "/path/to/resource",
		PathAndQuery: "/path/to/resource",
	})

	// host and path only
	testURIParse(t, "www.test.com/path/to/resource", uriParts{
		Authority:    "www.test.com",
		Host:         "www.test.com",
		Path:         "/path/to/resource",
		PathAndQuery: "/path/to/resource",
	})

	// path and query only
	testURIParse(t, "/path/to/resource?"+testQueryString, uriParts{
		Path:         "/path/to/resource",
		QueryString:  testQueryString,
		PathAndQuery: "/path/to/resource?" + testQueryString,
	})
	testURIParse(t, "/path/to/resource?test1=value1", uriParts{
		Path:         "/path/to/resource",
		QueryString:  "test1=value1",
		PathAndQuery: "/path/to/resource?test1=value1",
	})

	// no path
	testURIParse(t, "https://www.test.com", uriParts{
		Scheme:       "https",
		Authority:    "www.test.com",
		Host:         "www.test.com",
		Path:         "/",
		PathAndQuery: "/",
	})
	testURIParse(t, "www.test.com:8443", uriParts{
		Authority:    "www.test.com:8443",
		Host:         "www.test.com",
		Port:         8443,
		Path:         "/",
		PathAndQuery: "/",
	})
	testURIParse(t, "https://www.test.com?a=b", uriParts{
		Scheme:       "https",
		Authority:    "www.test.com",
		Host:         "www.test.com",
		Path:         "/",
		QueryString:  "a=b",
		PathAndQuery: "/?a=b",
	})

	// empty uri
	testURIParse(t, "", uriParts{})

	// query only
	testURIParse(t, "?a=1", uriParts{
		QueryString:  "a=1",
		PathAndQuery: "?a=1",
	})
	testURIParse(t, "https://?a=1", uriParts{
		Scheme:       "https",
		QueryString:  "a=1",
		PathAndQuery: "?a=1",
	})

	// empty query
	testURIParse(t, "/foo?", uriParts{
		Path:         "/foo",
		PathAndQuery: "/foo",
	})

	// empty authority
	testURIParse(t, "file:///etc/hosts", uriParts{
		Scheme:       "file",
		Path:         "/etc/hosts",
		PathAndQuery: "/etc/hosts",
	})

	// ipv6 host
	testURIParse(t, "http://[::1]:8080/foo", uriParts{
		Scheme:       "http",
		Authority:    "[::1]:8080",
		Host:         "[::1]",
		Port:         8080,
		Path:         "/foo",
		PathAndQuery: "/foo",
	})
	testURIParse(t, "http://[fe80::1]/foo", uriParts{
		Scheme:       "http",
		Authority:    "[fe80::1]",
		Host:         "[fe80::1]",
		Path:         "/foo",
		PathAndQuery: "/foo",
	})

	// scheme marker in the query string
	testURIParse(t, "/redirect?to=https://www.test.com/", uriParts{
		Path:         "/redirect",
		QueryString:  "to=https://www.test.com/",
		PathAndQuery: "/redirect?to=https://www.test.com/",
	})

	// the query string starts right after the host
	testURIParse(t, "www.test.com?a=b/c", uriParts{
		Authority:    "www.test.com",
		Host:         "www.test.com",
		Path:         "/",
		QueryString:  "a=b/c",
		PathAndQuery: "/?a=b/c",
	})

	// non-ascii and percent-encoded bytes are left as is
	testURIParse(t, "http://тест.рф:1/%D1%82?к=%20", uriParts{
		Scheme:       "http",
		Authority:    "тест.рф:1",
		Host:         "тест.рф",
		Port:         1,
		Path:         "/%D1%82",
		QueryString:  "к=%20",
		PathAndQuery: "/%D1%82?к=%20",
	})

	// max port
	testURIParse(t, "svn+ssh://host:65535", uriParts{
		Scheme:       "svn+ssh",
		Authority:    "host:65535",
		Host:         "host",
		Port:         65535,
		Path:         "/",
		PathAndQuery: "/",
	})
}

func testURIParse(t *testing.T, uri string, expected uriParts) {
	t.Helper()

	u, err := ParseString(uri)
	if err != nil {
		t.Fatalf("unexpected error when parsing %q: %v", uri, err)
	}
	if diff := cmp.Diff(expected, partsOf(u)); diff != "" {
		t.Fatalf("unexpected parts of %q (-want +got):\n%s", uri, diff)
	}

	if (len(u.Authority()) == 0) != (len(u.Host()) == 0 && u.Port() == 0) {
		t.Fatalf("authority %q doesn't match host %q and port %d", u.Authority(), u.Host(), u.Port())
	}
	if !bytes.HasPrefix(u.PathAndQuery(), u.Path()) {
		t.Fatalf("path_and_query %q doesn't start with path %q", u.PathAndQuery(), u.Path())
	}

	// all the parts are views into a single buffer
	full := u.FullURI()
	for _, part := range [][]byte{u.Scheme(), u.Authority(), u.Host(), u.Path(), u.QueryString(), u.PathAndQuery()} {
		if len(part) > 0 && !sameBuffer(full, part) {
			t.Fatalf("part %q of %q isn't a view into the backing store", part, uri)
		}
	}
}

func sameBuffer(full, part []byte) bool {
	for i := range full {
		if &full[i] == &part[0] {
			return i+len(part) <= len(full)
		}
	}
	return false
}

func TestURIParseError(t *testing.T) {
	t.Parallel()

	// invalid scheme
	testURIParseError(t, "https:/www.test.com:8443/path/to/resource?"+testQueryString)
	testURIParseError(t, "https:www.test.com/path")
	testURIParseError(t, "mailto:user@example.com")
	testURIParseError(t, "1http://www.test.com/path")

	// invalid port
	testURIParseError(t, "https://www.test.com:s8443/path/to/resource?"+testQueryString)
	testURIParseError(t, "https://www.test.com:8443s/path")
	testURIParseError(t, "www.test.com:s8443")

	// empty port
	testURIParseError(t, "https://www.test.com:/path")
	testURIParseError(t, "www.test.com:?a=b")

	// port out of range
	testURIParseError(t, "https://www.test.com:844356/path/to/resource?"+testQueryString)
	testURIParseError(t, "https://www.test.com:65536/path")
	testURIParseError(t, "https://www.test.com:0/path")

	// leading zero
	testURIParseError(t, "https://www.test.com:0443/path")

	// empty host
	testURIParseError(t, ":8443/path")
	testURIParseError(t, "https://:8443/path")
}

func testURIParseError(t *testing.T, uri string) {
	t.Helper()

	u, err := ParseString(uri)
	if err == nil {
		t.Fatalf("expecting error when parsing %q. Got %+v", uri, partsOf(u))
	}
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("unexpected error %v when parsing %q. Expecting %v", err, uri, ErrMalformedInput)
	}
	if u != nil {
		t.Fatalf("unexpected non-nil URI when parsing %q", uri)
	}
}

func TestURIParseSchemeless(t *testing.T) {
	t.Parallel()

	// scheme-looking prefix with a single slash is malformed,
	// while host:port/path is fine.
	if _, err := ParseString("https:/www.test.com/path"); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("unexpected error %v. Expecting %v", err, ErrMalformedInput)
	}
	u, err := ParseString("www.test.com:8443/path")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(u.Scheme()) != 0 {
		t.Fatalf("unexpected scheme %q. Expecting empty scheme", u.Scheme())
	}
}

func TestURIParseCopiesInput(t *testing.T) {
	t.Parallel()

	input := []byte("https://www.test.com:8443/path?a=b")
	u, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range input {
		input[i] = 'x'
	}
	if string(u.Host()) != "www.test.com" {
		t.Fatalf("unexpected host %q. Expecting %q", u.Host(), "www.test.com")
	}
	if u.String() != "https://www.test.com:8443/path?a=b" {
		t.Fatalf("unexpected uri %q", u.String())
	}
}

func TestURIViewsCapacity(t *testing.T) {
	t.Parallel()

	u := MustParse("https://www.test.com:8443/path?a=b")

	host := u.Host()
	_ = append(host, "XXXX"...)
	path := u.Path()
	_ = append(path, "YYYY"...)

	if string(u.Authority()) != "www.test.com:8443" {
		t.Fatalf("unexpected authority %q. Expecting %q", u.Authority(), "www.test.com:8443")
	}
	if string(u.PathAndQuery()) != "/path?a=b" {
		t.Fatalf("unexpected path_and_query %q. Expecting %q", u.PathAndQuery(), "/path?a=b")
	}
}

func TestURIString(t *testing.T) {
	t.Parallel()

	testURIString(t, "https://www.test.com:8443/path?a=b", "https://www.test.com:8443/path?a=b")
	testURIString(t, "https://www.test.com", "https://www.test.com/")
	testURIString(t, "www.test.com?a=b", "www.test.com/?a=b")
	testURIString(t, "/path", "/path")
	testURIString(t, "", "")
}

func testURIString(t *testing.T, uri, expected string) {
	t.Helper()

	u := MustParse(uri)
	if u.String() != expected {
		t.Fatalf("unexpected string %q. Expecting %q", u.String(), expected)
	}
	if b := u.AppendBytes([]byte("x")); string(b) != "x"+expected {
		t.Fatalf("unexpected AppendBytes result %q. Expecting %q", b, "x"+expected)
	}
	var w bytes.Buffer
	n, err := u.WriteTo(&w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != int64(len(expected)) || w.String() != expected {
		t.Fatalf("unexpected WriteTo result %q (%d bytes). Expecting %q", w.String(), n, expected)
	}
}

func TestURIZeroValue(t *testing.T) {
	t.Parallel()

	var u URI
	if diff := cmp.Diff(uriParts{}, partsOf(&u)); diff != "" {
		t.Fatalf("unexpected zero URI parts (-want +got):\n%s", diff)
	}
	if u.String() != "" {
		t.Fatalf("unexpected string %q", u.String())
	}
	if len(u.QueryParams()) != 0 {
		t.Fatalf("unexpected query params %q", u.QueryParams())
	}
}

func TestMustParsePanic(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expecting panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("unexpected panic %v. Expecting %v", r, ErrMalformedInput)
		}
	}()
	MustParse("https://www.test.com:s8443/path")
}

func TestURIDump(t *testing.T) {
	t.Parallel()

	u := MustParse("https://www.test.com:8443/path?a=b")
	expected := strings.Join([]string{
		"uri: https://www.test.com:8443/path?a=b",
		"scheme: https",
		"authority: www.test.com:8443",
		"host: www.test.com",
		"port: 8443",
		"path: /path",
		"query_string: a=b",
		"path_and_query: /path?a=b",
		"",
	}, "\n")

	var w bytes.Buffer
	if _, err := u.WriteDump(&w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(expected, w.String()); diff != "" {
		t.Fatalf("unexpected dump (-want +got):\n%s", diff)
	}
}

func TestURIConcurrentReads(t *testing.T) {
	t.Parallel()

	u := MustParse("https://www.test.com:8443/path/to/resource?" + testQueryString)
	expected := partsOf(u)

	ch := make(chan struct{}, 10)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				if partsOf(u) != expected {
					t.Errorf("unexpected parts %+v. Expecting %+v", partsOf(u), expected)
				}
				if len(u.QueryParams()) != 4 {
					t.Errorf("unexpected query params %q", u.QueryParams())
				}
			}
			ch <- struct{}{}
		}()
	}

	for i := 0; i < 10; i++ {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("timeout")
		}
	}
}
