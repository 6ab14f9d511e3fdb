package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/buildmat/pkg/sanitizer"
)

func TestSuspiciousPattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		category sanitizer.Category
	}{
		{name: "sql comment injection", input: "'; DROP TABLE users; --", category: sanitizer.CategoryMetaChars},
		{name: "double dash", input: "admin--", category: sanitizer.CategoryMetaChars},
		{name: "pipe", input: "a | b", category: sanitizer.CategoryMetaChars},
		{name: "percent", input: "100%", category: sanitizer.CategoryMetaChars},
		{name: "asterisk", input: "a*b", category: sanitizer.CategoryMetaChars},
		{name: "union select", input: "1 UNION SELECT password", category: sanitizer.CategorySQLKeyword},
		{name: "lowercase drop", input: "drop table materials", category: sanitizer.CategorySQLKeyword},
		{name: "exec", input: "Exec xp_cmdshell", category: sanitizer.CategorySQLKeyword},
		{name: "script tag", input: "<script>alert(1)</script>", category: sanitizer.CategoryScriptMarker},
		{name: "javascript url", input: "javascript:alert(1)", category: sanitizer.CategoryScriptMarker},
		{name: "event handler", input: "img onerror=alert(1)", category: sanitizer.CategoryScriptMarker},
		{name: "vbscript", input: "VBScript:msgbox", category: sanitizer.CategoryScriptMarker},
		{name: "angle brackets", input: "Project<>Name", category: sanitizer.CategoryAngleBracket},
		{name: "escaped entity hits semicolon first", input: "&lt;b&gt;", category: sanitizer.CategoryMetaChars},
		{name: "closing bracket only", input: "a > b", category: sanitizer.CategoryAngleBracket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := sanitizer.SuspiciousPattern(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.category, category)
			assert.True(t, sanitizer.IsSuspicious(tt.input))
		})
	}
}

func TestSuspiciousPattern_CleanInput(t *testing.T) {
	inputs := []string{
		"Residential Building Phase 2",
		"Updated materials list",
		"Descriptions of concrete mixes",
		"Selection of tiles",
		"Construcción Niño",
		"Cement, sand (fine) - 25kg",
		"Tom & Jerry",
		"",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			category, ok := sanitizer.SuspiciousPattern(in)
			assert.False(t, ok)
			assert.Empty(t, category)
		})
	}
}
