/*
Package chartype provides the character-class predicates the grammar
tokenizes against: digits, letters, alphanumerics and whitespace.

Chtholly source is treated as a byte stream: bytes are assumed
UTF-8-compatible but are never validated or decoded as runes here, the same
narrow-character-class approach a `<cctype>`-style predicate set takes. This
is deliberately the simplest possible leaf of the pipeline; everything
interesting happens above it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chartype

// IsDigit reports whether c is one of '0'...'9'.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsAlphaNum reports whether c is an ASCII letter or digit.
func IsAlphaNum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsSpace reports whether c is an ASCII whitespace character: space, tab,
// newline, vertical tab, form feed or carriage return.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
