package validator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxPriceLength    = 10
	MaxQuantityLength = 8

	// MaxNumericValue is the largest accepted price or quantity.
	MaxNumericValue = 999999.99
)

var numericCharsetRegex = regexp.MustCompile(`^[0-9.]+$`)

type numericField struct {
	name   string
	label  string
	maxLen int
}

var (
	priceField    = numericField{name: FieldPrice, label: "Price", maxLen: MaxPriceLength}
	quantityField = numericField{name: FieldQuantity, label: "Quantity", maxLen: MaxQuantityLength}
)

// ValidatePrice validates a price: a non-negative decimal of at most 10
// characters, not greater than 999999.99. The accepted value is the trimmed
// input, unchanged.
func ValidatePrice(s string) Outcome {
	return validateNumber(priceField, s)
}

// ValidateQuantity validates a quantity with the price rules and an 8
// character limit.
func ValidateQuantity(s string) Outcome {
	return validateNumber(quantityField, s)
}

func validateNumber(f numericField, s string) Outcome {
	trimmed := strings.TrimSpace(s)

	if trimmed == "" {
		return rejectEmpty(f.name, f.label)
	}

	if utf8.RuneCountInString(trimmed) > f.maxLen {
		return rejectTooLong(f.name, f.label, f.maxLen)
	}

	if !numericCharsetRegex.MatchString(trimmed) {
		return reject(f.name, ReasonNonNumeric, f.label+" must contain only numbers and decimal point", nil)
	}

	if strings.Count(trimmed, ".") > 1 {
		return reject(f.name, ReasonInvalidDecimal, "Invalid decimal format", nil)
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return reject(f.name, ReasonInvalidNumber, "Invalid number format", nil)
	}

	if value < 0 {
		return reject(f.name, ReasonNegativeValue, f.label+" cannot be negative", nil)
	}

	if value > MaxNumericValue {
		return reject(f.name, ReasonTooLarge, f.label+" value too large",
			map[string]string{"max": strconv.FormatFloat(MaxNumericValue, 'f', 2, 64)},
		)
	}

	return accept(f.name, trimmed)
}
