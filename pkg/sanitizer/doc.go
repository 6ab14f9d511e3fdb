// Package sanitizer cleanses untrusted text before it is stored or rendered and
// classifies input that looks like an injection attempt.
//
// The package is split in two halves:
//
//   - Cleansing – Trim, StripMarkupChars, NormalizeUnicode and
//     NormalizeWhitespace, combined by Cleanse into the canonical pipeline used
//     for every accepted text value.
//
//   - Detection – SuspiciousPattern reports whether a string matches one of the
//     known attack pattern classes (SQL meta characters, SQL keywords, script
//     markers, angle brackets and their entities) and which class matched.
//
// All patterns are compiled once at package initialisation; every helper is a
// pure function and safe for concurrent use.
//
// # Usage
//
//	clean := sanitizer.Cleanse("  Hormigón   armado\n  (25 MPa) ")
//	// clean == "Hormigón armado (25 MPa)"
//
//	if category, ok := sanitizer.SuspiciousPattern(input); ok {
//	    log.Warn("rejected input", "category", category)
//	}
//
// Custom pipelines can be assembled with Compose:
//
//	slugish := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWhitespace, strings.ToLower)
//
// Cleanse is a fixed point: Cleanse(Cleanse(s)) == Cleanse(s) for every s.
package sanitizer
