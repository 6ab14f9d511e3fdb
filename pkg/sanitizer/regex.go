package sanitizer

import "regexp"

// Pre-compiled regular expressions, shared by every call.
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Characters never allowed in a cleansed value
	markupCharsRegex = regexp.MustCompile(`[<>"'&]`)

	// Suspicious pattern classes, all case-insensitive
	metaCharsRegex    = regexp.MustCompile(`'|--|;|\||\*|%`)
	sqlKeywordRegex   = regexp.MustCompile(`(?i)\b(union|select|insert|update|delete|drop|create|alter|exec|execute)\b`)
	scriptMarkerRegex = regexp.MustCompile(`(?i)\b(script|javascript|vbscript|onload|onerror)\b`)
	angleBracketRegex = regexp.MustCompile(`(?i)<|>|&lt;|&gt;`)
)
