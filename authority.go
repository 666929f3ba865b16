package fasturi

import (
	"bytes"

	"braces.dev/errtrace"
)

// portColon returns the index of the colon separating host from port
// in authority a, or -1 if a has no port.
//
// The last colon is used, so hosts containing colons are supported as long
// as they are enclosed in brackets, e.g. "[::1]:8080".
func portColon(a []byte) int {
	n := bytes.LastIndexByte(a, ':')
	if n < 0 {
		return -1
	}
	if n < bytes.LastIndexByte(a, ']') {
		// colon belongs to an IPv6 literal
		return -1
	}
	return n
}

// splitAuthority splits authority a into host and port.
//
// The host is returned as a sub-slice of a. Port is 0 if a has no port.
//
// The same rule rejects a scheme-looking prefix without "//", e.g. "https:"
// from "https:/host/path", since its port digits are empty.
func splitAuthority(a []byte) ([]byte, int, error) {
	n := portColon(a)
	if n < 0 {
		return a, 0, nil
	}
	port, err := parsePort(a[n+1:])
	if err != nil {
		return nil, 0, errtrace.Wrap(err)
	}
	if n == 0 {
		return nil, 0, errtrace.Wrap(malformedErr("empty host in authority %q", a))
	}
	return a[:n], port, nil
}
