// Package bytesutil provides the small byte-comparison primitive the
// matching engine needs on its hot path: case-sensitive and ASCII
// case-folded equality for Literal.
package bytesutil

import "bytes"

// EqualFold reports whether a and b are equal. When caseSensitive is
// false, ASCII letters A-Z/a-z are treated as equivalent; matching is
// always byte-exact outside that range, per the ABNF-mandated US-ASCII
// case-insensitivity rule.
func EqualFold(a, b []byte, caseSensitive bool) bool {
	if len(a) != len(b) {
		return false
	}
	if caseSensitive {
		return bytes.Equal(a, b)
	}
	for i := range a {
		if ASCIILower(a[i]) != ASCIILower(b[i]) {
			return false
		}
	}
	return true
}

// ASCIILower folds b to lowercase if it is an ASCII uppercase letter,
// leaving every other byte (including non-ASCII bytes) unchanged.
func ASCIILower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
