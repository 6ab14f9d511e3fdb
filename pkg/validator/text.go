package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/buildmat/pkg/sanitizer"
)

// Field names used in outcomes and translation keys.
const (
	FieldProjectName  = "project_name"
	FieldMaterialName = "material_name"
	FieldDescription  = "description"
	FieldPrice        = "price"
	FieldQuantity     = "quantity"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

var (
	// Letters and marks from any script, digits, whitespace and - _ . , ( )
	nameCharsetRegex = regexp.MustCompile(`^[\p{L}\p{M}\p{N}\s\-_.,()]+$`)
	// Name charset plus ! ? @ # % & * + =; whitespace includes newlines
	descriptionCharsetRegex = regexp.MustCompile(`^[\p{L}\p{M}\p{N}\s\-_.,()!?@#%&*+=]*$`)
)

type textField struct {
	name           string
	label          string
	maxLen         int
	required       bool
	charset        *regexp.Regexp
	charsetMessage string
}

var (
	projectNameField = textField{
		name:           FieldProjectName,
		label:          "Project name",
		maxLen:         MaxNameLength,
		required:       true,
		charset:        nameCharsetRegex,
		charsetMessage: "Project name can only contain letters, numbers, spaces and basic punctuation",
	}
	materialNameField = textField{
		name:           FieldMaterialName,
		label:          "Material name",
		maxLen:         MaxNameLength,
		required:       true,
		charset:        nameCharsetRegex,
		charsetMessage: "Material name can only contain letters, numbers, spaces and basic punctuation",
	}
	descriptionField = textField{
		name:           FieldDescription,
		label:          "Description",
		maxLen:         MaxDescriptionLength,
		required:       false,
		charset:        descriptionCharsetRegex,
		charsetMessage: "Description contains invalid characters",
	}
)

// ValidateProjectName validates a project name: required, at most 100
// characters, letters, digits, whitespace and - _ . , ( ) only.
func ValidateProjectName(s string) Outcome {
	return validateText(projectNameField, s)
}

// ValidateMaterialName validates a material name with the same rules as
// project names.
func ValidateMaterialName(s string) Outcome {
	return validateText(materialNameField, s)
}

// ValidateDescription validates a free-text description. Empty input is
// accepted; otherwise at most 500 characters from the extended charset.
func ValidateDescription(s string) Outcome {
	return validateText(descriptionField, s)
}

// validateText runs the text pipeline; the first failing step decides the outcome.
func validateText(f textField, s string) Outcome {
	trimmed := sanitizer.NormalizeUnicode(strings.TrimSpace(s))

	if trimmed == "" {
		if f.required {
			return rejectEmpty(f.name, f.label)
		}
		return accept(f.name, "")
	}

	if utf8.RuneCountInString(trimmed) > f.maxLen {
		return rejectTooLong(f.name, f.label, f.maxLen)
	}

	if sanitizer.IsSuspicious(trimmed) {
		return rejectSuspicious(f.name)
	}

	if !f.charset.MatchString(trimmed) {
		return reject(f.name, ReasonCharsetViolation, f.charsetMessage, nil)
	}

	cleansed := sanitizer.Cleanse(trimmed)

	// Stripping characters can join fragments into a pattern ("-&-" becomes
	// "--"); the cleansed value must validate as itself.
	if sanitizer.IsSuspicious(cleansed) {
		return rejectSuspicious(f.name)
	}
	if cleansed == "" && f.required {
		return rejectEmpty(f.name, f.label)
	}

	return accept(f.name, cleansed)
}

func rejectEmpty(field, label string) Outcome {
	return reject(field, ReasonEmptyRequired, label+" cannot be empty", nil)
}

func rejectTooLong(field, label string, max int) Outcome {
	return reject(field, ReasonTooLong,
		fmt.Sprintf("%s too long (max %d characters)", label, max),
		map[string]string{"max": strconv.Itoa(max)},
	)
}

func rejectSuspicious(field string) Outcome {
	return reject(field, ReasonSuspiciousPattern, "Invalid characters detected", nil)
}
