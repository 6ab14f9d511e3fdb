package securityaudit

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/buildmat/pkg/validator"
)

// Probe categories.
const (
	CategorySQLInjection = "sql_injection"
	CategoryXSS          = "xss"
	CategoryMarkup       = "markup"
	CategoryUnicode      = "unicode"
	CategoryBoundary     = "boundary"
	CategoryNumeric      = "numeric"
	CategoryAcceptance   = "acceptance"
)

// Probe is a single input run against one field validator.
// WantValue is compared with the cleansed value only when non-empty.
type Probe struct {
	Name         string
	Field        string
	Input        string
	Category     string
	WantAccepted bool
	WantValue    string
}

func reject(name, field, category, input string) Probe {
	return Probe{Name: name, Field: field, Input: input, Category: category}
}

func accept(name, field, category, input, want string) Probe {
	return Probe{Name: name, Field: field, Input: input, Category: category, WantAccepted: true, WantValue: want}
}

// DefaultProbes returns the built-in corpus: SQL and script injection attempts
// against every text field, markup and entity tricks, multilingual names that
// must pass, length boundaries and numeric edge cases.
func DefaultProbes() []Probe {
	textFields := []string{validator.FieldProjectName, validator.FieldMaterialName, validator.FieldDescription}

	sql := []string{
		"'; DROP TABLE users; --",
		"1' OR '1'='1",
		"admin'--",
		"1; DELETE FROM materials",
		"x UNION SELECT password FROM users",
		"Robert'); DROP TABLE projects;--",
		"name; exec xp_cmdshell",
		"update projects set budget=0",
		"a | b",
		"50% OFF",
	}
	xss := []string{
		"<script>alert('XSS')</script>",
		"<img src=x onerror=alert(1)>",
		"javascript:alert(1)",
		"<svg onload=alert(1)>",
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"vbscript:msgbox(1)",
		"Project<>Name",
		"a > b",
	}

	var probes []Probe
	for _, field := range textFields {
		for i, in := range sql {
			probes = append(probes, reject(probeName(field, "sql", i), field, CategorySQLInjection, in))
		}
		for i, in := range xss {
			probes = append(probes, reject(probeName(field, "xss", i), field, CategoryXSS, in))
		}
	}

	probes = append(probes,
		// cleansing can join fragments into a comment marker
		reject("description/markup/joined-comment", validator.FieldDescription, CategoryMarkup, "a -&- b"),
		accept("description/markup/ampersand", validator.FieldDescription, CategoryMarkup, "Bricks & mortar", "Bricks mortar"),
		reject("project_name/markup/quote", validator.FieldProjectName, CategoryMarkup, `The "Tower"`),
		reject("project_name/markup/ampersand", validator.FieldProjectName, CategoryMarkup, "Tom & Jerry"),

		accept("project_name/unicode/spanish", validator.FieldProjectName, CategoryUnicode, "Construcción", "Construcción"),
		accept("project_name/unicode/decomposed", validator.FieldProjectName, CategoryUnicode, "Construccio\u0301n", "Construcci\u00f3n"),
		accept("material_name/unicode/portuguese", validator.FieldMaterialName, CategoryUnicode, "Cimento Açores", "Cimento Açores"),
		accept("material_name/unicode/french", validator.FieldMaterialName, CategoryUnicode, "Béton armé", "Béton armé"),
		accept("project_name/unicode/enye", validator.FieldProjectName, CategoryUnicode, "Ñandú 2", "Ñandú 2"),
		accept("description/unicode/accent-after-ampersand", validator.FieldDescription, CategoryUnicode, "Cafe&\u0301 con leche", "Caf\u00e9 con leche"),
		reject("project_name/unicode/emoji", validator.FieldProjectName, CategoryUnicode, "Casa 🏠"),

		accept("project_name/acceptance/plain", validator.FieldProjectName, CategoryAcceptance, "Residential Building", "Residential Building"),
		accept("project_name/acceptance/whitespace", validator.FieldProjectName, CategoryAcceptance, "  Office \t Tower  ", "Office Tower"),
		accept("material_name/acceptance/keyword-inside-word", validator.FieldMaterialName, CategoryAcceptance, "Updated selection", "Updated selection"),
		accept("description/acceptance/empty", validator.FieldDescription, CategoryAcceptance, "", ""),
		accept("description/acceptance/punctuation", validator.FieldDescription, CategoryAcceptance, "Order #12! Ready? 2+2=4", "Order #12! Ready? 2+2=4"),
		accept("description/acceptance/newlines", validator.FieldDescription, CategoryAcceptance, "Slab.\n\nPour Monday.", "Slab. Pour Monday."),

		reject("project_name/boundary/empty", validator.FieldProjectName, CategoryBoundary, ""),
		reject("material_name/boundary/blank", validator.FieldMaterialName, CategoryBoundary, " \t\n "),
		accept("project_name/boundary/max", validator.FieldProjectName, CategoryBoundary, strings.Repeat("a", validator.MaxNameLength), ""),
		reject("project_name/boundary/over-max", validator.FieldProjectName, CategoryBoundary, strings.Repeat("a", validator.MaxNameLength+1)),
		accept("material_name/boundary/max-multibyte", validator.FieldMaterialName, CategoryBoundary, strings.Repeat("ñ", validator.MaxNameLength), ""),
		accept("description/boundary/max", validator.FieldDescription, CategoryBoundary, strings.Repeat("x", validator.MaxDescriptionLength), ""),
		reject("description/boundary/over-max", validator.FieldDescription, CategoryBoundary, strings.Repeat("x", validator.MaxDescriptionLength+1)),

		accept("price/numeric/integer", validator.FieldPrice, CategoryNumeric, "125", "125"),
		accept("price/numeric/decimal", validator.FieldPrice, CategoryNumeric, " 12.50 ", "12.50"),
		accept("price/numeric/max", validator.FieldPrice, CategoryNumeric, "999999.99", "999999.99"),
		accept("price/numeric/zero", validator.FieldPrice, CategoryNumeric, "0", "0"),
		accept("price/numeric/leading-dot", validator.FieldPrice, CategoryNumeric, ".5", ".5"),
		reject("price/numeric/over-max", validator.FieldPrice, CategoryNumeric, "1000000.00"),
		reject("price/numeric/letters", validator.FieldPrice, CategoryNumeric, "abc123"),
		reject("price/numeric/negative", validator.FieldPrice, CategoryNumeric, "-5"),
		reject("price/numeric/two-dots", validator.FieldPrice, CategoryNumeric, "1.2.3"),
		reject("price/numeric/lone-dot", validator.FieldPrice, CategoryNumeric, "."),
		reject("price/numeric/exponent", validator.FieldPrice, CategoryNumeric, "1e5"),
		reject("price/numeric/too-long", validator.FieldPrice, CategoryNumeric, "12345678901"),
		reject("price/numeric/empty", validator.FieldPrice, CategoryNumeric, ""),
		reject("price/numeric/injection", validator.FieldPrice, CategoryNumeric, "1; DROP"),
		accept("quantity/numeric/max-length", validator.FieldQuantity, CategoryNumeric, "99999.99", "99999.99"),
		reject("quantity/numeric/too-long", validator.FieldQuantity, CategoryNumeric, "123456789"),
		reject("quantity/numeric/comma", validator.FieldQuantity, CategoryNumeric, "1,5"),
	)

	return probes
}

func probeName(field, kind string, i int) string {
	return field + "/" + kind + "/" + strconv.Itoa(i+1)
}
