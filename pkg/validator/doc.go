// Package validator classifies and cleanses untrusted input coming from the
// project and material forms before it reaches storage or rendering.
//
// Every validator returns a value instead of an error: an Outcome is either
// accepted, carrying the cleansed value, or rejected, carrying a stable Reason
// tag and a default English Message. Callers translate the Reason into
// localized text at the UI boundary (see package messages) and never need to
// parse Message.
//
// # Validators
//
// Text fields:
//
//	ValidateProjectName(s)   // required, max 100, letters/digits/space and - _ . , ( )
//	ValidateMaterialName(s)  // same rules as project names
//	ValidateDescription(s)   // optional, max 500, adds ! ? @ # % & * + =
//
// Numeric fields (digits and a single decimal point, 0 to 999999.99):
//
//	ValidatePrice(s)    // max 10 characters
//	ValidateQuantity(s) // max 8 characters
//
// Composite helpers validate every field of a form without short-circuiting
// and return Results keyed by field name:
//
//	res := validator.ValidateMaterialData(name, qty, price, desc)
//	if !res.Valid() {
//	    return res.Err() // ValidationErrors, usable with errors.As
//	}
//
// Image references are checked against a content.Resolver by ImageValidator,
// which is the only validator that performs I/O.
//
// # Text pipeline
//
// Text validators trim and NFC-normalize the input, then apply, in order:
// the empty check, the length bound (counted in runes), the suspicious pattern
// scan from package sanitizer, and the field's character allow-list. Accepted
// values are cleansed with sanitizer.Cleanse. Letters from any script are
// allowed, so "Construcción" or "Façade" pass unchanged.
//
// # Concurrency
//
// Text and numeric validators share only read-only compiled patterns and are
// safe for concurrent use. ImageValidator is immutable after construction and
// is safe for concurrent use as well.
package validator
