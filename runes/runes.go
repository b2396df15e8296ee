// Package runes contains rune classification helpers shared by the parser
// and the term formatter.
package runes

import (
	"unicode"
	"unicode/utf8"
)

// First returns the first rune of s. If the string is empty or not proper UTF-8, returns false.
func First(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size < 2 {
		return 0, false
	}
	return r, true
}

// IsAtomStart reports whether ch may start an atom or functor name.
func IsAtomStart(ch rune) bool {
	return unicode.IsLower(ch)
}

// IsVarStart reports whether ch may start a variable name.
func IsVarStart(ch rune) bool {
	return ch == '_' || unicode.IsUpper(ch)
}

// IsIdent reports whether ch may appear in an identifier after its first rune.
func IsIdent(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// IsDigit reports whether ch is a decimal digit.
func IsDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}
