package sanitizer

import (
	"strings"
	"unicode"
)

// lineBreaks covers every sequence a mail client or browser may render as a
// new line, including NEL and the Unicode line and paragraph separators.
var lineBreaks = strings.NewReplacer(
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
	"\u0085", " ",
	"\u2028", " ",
	"\u2029", " ",
)

// SingleLine replaces line breaks with spaces and normalizes whitespace.
func SingleLine(s string) string {
	return RemoveExtraWhitespace(lineBreaks.Replace(s))
}

// RemoveExtraWhitespace collapses runs of Unicode whitespace into one space
// and trims both ends.
func RemoveExtraWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveControlChars drops control characters except tab, CR and LF.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// LimitLength truncates s to at most maxLen runes. Non-positive maxLen
// yields an empty string.
func LimitLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == maxLen {
			return s[:i]
		}
		n++
	}
	return s
}

// LimitLengthFunc binds maxLen for use in Compose.
func LimitLengthFunc(maxLen int) func(string) string {
	return func(s string) string { return LimitLength(s, maxLen) }
}
