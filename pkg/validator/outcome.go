package validator

import "maps"

// Reason is a stable, language-neutral rejection tag.
// Display text is rendered from it at the UI boundary.
type Reason string

const (
	ReasonEmptyRequired     Reason = "empty_required"
	ReasonTooLong           Reason = "too_long"
	ReasonSuspiciousPattern Reason = "suspicious_pattern"
	ReasonCharsetViolation  Reason = "charset_violation"

	ReasonNonNumeric     Reason = "non_numeric"
	ReasonInvalidDecimal Reason = "invalid_decimal"
	ReasonInvalidNumber  Reason = "invalid_number"
	ReasonNegativeValue  Reason = "negative_value"
	ReasonTooLarge       Reason = "too_large"

	ReasonImageInaccessible     Reason = "image_inaccessible"
	ReasonImagePermissionDenied Reason = "image_permission_denied"
	ReasonImageTooLarge         Reason = "image_too_large"
	ReasonImageUnsupportedType  Reason = "image_unsupported_type"
	ReasonImageInvalid          Reason = "image_invalid"
	ReasonImageIOError          Reason = "image_io_error"
)

// TranslationKey returns the message catalog key for the reason.
func (r Reason) TranslationKey() string {
	return "validation." + string(r)
}

// Outcome is the result of validating a single text or numeric field.
// Value is the cleansed input and is meaningful only when Accepted is true.
// A rejected outcome always carries a Reason and a default English Message;
// Params holds the values referenced by the message template (field, max).
type Outcome struct {
	Field    string
	Accepted bool
	Value    string
	Reason   Reason
	Message  string
	Params   map[string]string
}

// Rejected reports whether the outcome is a rejection.
func (o Outcome) Rejected() bool {
	return !o.Accepted
}

// ValidationError converts a rejected outcome into a ValidationError keyed by
// field. The boolean is false for accepted outcomes.
func (o Outcome) ValidationError(field string) (ValidationError, bool) {
	if o.Accepted {
		return ValidationError{}, false
	}

	values := make(map[string]any, len(o.Params)+1)
	for k, v := range o.Params {
		values[k] = v
	}
	values["field"] = field // composite keys win over the validator's own field name

	return ValidationError{
		Field:             field,
		Reason:            o.Reason,
		Message:           o.Message,
		TranslationKey:    o.Reason.TranslationKey(),
		TranslationValues: values,
	}, true
}

// ImageOutcome is the result of validating an image reference.
// Images are never rewritten, so there is no cleansed value.
type ImageOutcome struct {
	Accepted bool
	Reason   Reason
	Message  string
	Params   map[string]string
}

func accept(field, value string) Outcome {
	return Outcome{Field: field, Accepted: true, Value: value}
}

func reject(field string, reason Reason, message string, params map[string]string) Outcome {
	p := map[string]string{"field": field}
	maps.Copy(p, params)
	return Outcome{
		Field:   field,
		Reason:  reason,
		Message: message,
		Params:  p,
	}
}

func acceptImage() ImageOutcome {
	return ImageOutcome{Accepted: true}
}

func rejectImage(reason Reason, message string, params map[string]string) ImageOutcome {
	return ImageOutcome{
		Reason:  reason,
		Message: message,
		Params:  params,
	}
}
