package logic

import (
	"strings"
	"unicode"

	"github.com/rdmiranda/minilog/runes"
)

func isIdents(text string) bool {
	for _, ch := range text {
		if !runes.IsIdent(ch) {
			return false
		}
	}
	return true
}

// IsVar reports whether text is a valid variable name.
func IsVar(text string) bool {
	ch, ok := runes.First(text)
	if !ok {
		return false
	}
	if !runes.IsVarStart(ch) {
		return false
	}
	return isIdents(text)
}

// IsInt reports whether text is a valid unsigned integer literal.
func IsInt(text string) bool {
	if text == "" {
		return false
	}
	for _, ch := range text {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}

var escapeChars = map[rune]string{
	' ':  " ",
	'\n': "\\n",
	'\t': "\\t",
	',':  ",",
	'(':  "(",
	')':  ")",
	'[':  "[",
	']':  "]",
	'|':  "|",
	'"':  "\\\"",
	'\\': "\\\\",
}

// FormatAtom renders an atom name, quoting it if it could be mistaken for
// another token.
func FormatAtom(text string) string {
	// Check if there's any character that needs escaping.
	var hasEscape bool
	for _, ch := range text {
		if _, ok := escapeChars[ch]; ok {
			hasEscape = true
			break
		}
	}
	if !(hasEscape || IsVar(text) || IsInt(text)) {
		return text
	}
	// Build a quoted atom.
	var b strings.Builder
	b.WriteRune('"')
	for _, ch := range text {
		if exp, ok := escapeChars[ch]; ok {
			b.WriteString(exp)
		} else {
			b.WriteRune(ch)
		}
	}
	b.WriteRune('"')
	return b.String()
}
