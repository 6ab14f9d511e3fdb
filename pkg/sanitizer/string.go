package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeUnicode converts s to Unicode normalization form C, so that a letter
// typed as base character plus combining accent ("o" + U+0301) becomes the
// single precomposed rune ("ó").
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// NormalizeWhitespace collapses every whitespace run into a single space and
// trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// StripMarkupChars removes the characters < > " ' and &.
func StripMarkupChars(s string) string {
	return markupCharsRegex.ReplaceAllString(s, "")
}

// NFC runs after stripping: removing a character can leave a base letter
// next to a combining mark ("e&\u0301" becomes "e\u0301").
var cleanse = Compose(
	Trim,
	StripMarkupChars,
	NormalizeUnicode,
	NormalizeWhitespace,
)

// Cleanse applies the canonical cleansing pipeline: trim, markup character
// removal, NFC normalization and whitespace collapsing. The result never contains
// < > " ' &, never has leading or trailing whitespace and never contains two
// consecutive whitespace characters.
func Cleanse(s string) string {
	return cleanse(s)
}
