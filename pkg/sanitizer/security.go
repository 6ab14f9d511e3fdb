package sanitizer

import "regexp"

// Category identifies which suspicious pattern class matched an input.
type Category string

const (
	// CategoryMetaChars covers quote, double dash, semicolon, pipe, asterisk and percent.
	CategoryMetaChars Category = "meta_chars"
	// CategorySQLKeyword covers statement keywords such as SELECT or DROP.
	CategorySQLKeyword Category = "sql_keyword"
	// CategoryScriptMarker covers script tags, javascript/vbscript URLs and inline event handlers.
	CategoryScriptMarker Category = "script_marker"
	// CategoryAngleBracket covers raw angle brackets and their HTML entities.
	CategoryAngleBracket Category = "angle_bracket"
)

type suspiciousClass struct {
	category Category
	pattern  *regexp.Regexp
}

// Evaluated in order; the first matching class is reported.
var suspiciousClasses = []suspiciousClass{
	{category: CategoryMetaChars, pattern: metaCharsRegex},
	{category: CategorySQLKeyword, pattern: sqlKeywordRegex},
	{category: CategoryScriptMarker, pattern: scriptMarkerRegex},
	{category: CategoryAngleBracket, pattern: angleBracketRegex},
}

// SuspiciousPattern reports whether s matches any known injection pattern class
// and, if so, which one. Keyword classes match whole words only, so "Updated"
// or "Descriptions" are not flagged while "DROP TABLE" and "<script>" are.
func SuspiciousPattern(s string) (Category, bool) {
	for _, class := range suspiciousClasses {
		if class.pattern.MatchString(s) {
			return class.category, true
		}
	}
	return "", false
}

// IsSuspicious reports whether s matches any suspicious pattern class.
func IsSuspicious(s string) bool {
	_, ok := SuspiciousPattern(s)
	return ok
}
