package fasturi

import "unsafe"

const (
	// maxPort is the largest port number allowed in an authority.
	maxPort = 65535

	// maxPortChars is the number of digits in maxPort. Longer digit runs
	// are rejected before they can overflow.
	maxPortChars = 5
)

// AppendUint appends n to dst and returns dst (which may be newly allocated).
func AppendUint(dst []byte, n int) []byte {
	if n < 0 {
		panic("BUG: int must be positive")
	}

	var b [20]byte
	buf := b[:]
	i := len(buf)
	var q int
	for n >= 10 {
		i--
		q = n / 10
		buf[i] = '0' + byte(n-q*10)
		n = q
	}
	i--
	buf[i] = '0' + byte(n)

	dst = append(dst, buf[i:]...)
	return dst
}

// uintLen returns the number of decimal digits AppendUint writes for n.
func uintLen(n int) int {
	k := 1
	for n >= 10 {
		n /= 10
		k++
	}
	return k
}

// parsePort parses the port digits found after the last colon of an authority.
func parsePort(b []byte) (int, error) {
	n := len(b)
	if n == 0 {
		return 0, malformedErr("empty port")
	}
	if n > 1 && b[0] == '0' {
		return 0, malformedErr("leading zero in port %q", b)
	}
	v := 0
	for i := 0; i < n; i++ {
		k := b[i] - '0'
		if k > 9 {
			return 0, malformedErr("unexpected char %q in port %q. Expected 0-9", b[i], b)
		}
		if i >= maxPortChars {
			return 0, malformedErr("too long port %q", b)
		}
		v = 10*v + int(k)
	}
	if v == 0 || v > maxPort {
		return 0, malformedErr("port %q out of range [1..%d]", b, maxPort)
	}
	return v, nil
}

const (
	charAlpha byte = 1 << iota
	charDigit
	charSchemeExtra
)

var charClassTable = func() [256]byte {
	var t [256]byte
	for i := 0; i < 256; i++ {
		c := byte(i)
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			t[i] = charAlpha
		case c >= '0' && c <= '9':
			t[i] = charDigit
		case c == '+' || c == '-' || c == '.':
			t[i] = charSchemeExtra
		}
	}
	return t
}()

// isSchemeToken reports whether b is ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isSchemeToken(b []byte) bool {
	if len(b) == 0 || charClassTable[b[0]]&charAlpha == 0 {
		return false
	}
	for _, c := range b[1:] {
		if charClassTable[c] == 0 {
			return false
		}
	}
	return true
}

// b2s converts byte slice to a string without memory allocation.
//
// b mustn't be modified while the returned string is in use. URI backing
// stores are never modified after construction, so their views qualify.
func b2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// s2b converts string to a byte slice without memory allocation.
//
// The returned slice must be treated as read-only.
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
