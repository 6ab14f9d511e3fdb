package validator_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/buildmat/pkg/validator"
)

var corpus = []string{
	"", " ", "Residential Building", "  spaced   out  ", "Construcción", "Tom & Jerry",
	"'; DROP TABLE users; --", "<script>alert('XSS')</script>", "Project<>Name", "&lt;b&gt;",
	"line\nbreak", "tab\tseparated\t\tvalues", "50% off", "a -&- b", "x & y & z", "Ñandú (ç)",
	"999999.99", "1000000.00", "-0.01", "0", "12.34.56", ".", "abc123", "1e5", "007",
	strings.Repeat("a", 100), strings.Repeat("a", 101), strings.Repeat("d ", 260),
	"Mixed\r\nline endings", "email@site.com #1", "Price = 2+2", "¿Qué? ¡Sí!",
	"Cafe&\u0301 con leche", "Nin&\u0303o", "ññññññ",
}

type fieldValidator struct {
	name    string
	fn      func(string) validator.Outcome
	numeric bool
}

var fieldValidators = []fieldValidator{
	{name: "project name", fn: validator.ValidateProjectName},
	{name: "material name", fn: validator.ValidateMaterialName},
	{name: "description", fn: validator.ValidateDescription},
	{name: "price", fn: validator.ValidatePrice, numeric: true},
	{name: "quantity", fn: validator.ValidateQuantity, numeric: true},
}

func TestOutcomeInvariants(t *testing.T) {
	t.Parallel()

	for _, fv := range fieldValidators {
		t.Run(fv.name, func(t *testing.T) {
			for _, in := range corpus {
				out := fv.fn(in)

				if !out.Accepted {
					assert.NotEmpty(t, out.Reason, "input %q", in)
					assert.NotEmpty(t, out.Message, "input %q", in)
					continue
				}

				assert.False(t, strings.ContainsAny(out.Value, `<>"'&`), "input %q", in)
				assert.Equal(t, strings.TrimSpace(out.Value), out.Value, "input %q", in)
				assert.NotRegexp(t, `\s\s`, out.Value, "input %q", in)

				// cleansing is a fixed point
				again := fv.fn(out.Value)
				assert.True(t, again.Accepted, "input %q", in)
				assert.Equal(t, out.Value, again.Value, "input %q", in)

				// validators are pure
				assert.Equal(t, out, fv.fn(in), "input %q", in)

				if fv.numeric {
					v, err := strconv.ParseFloat(out.Value, 64)
					require.NoError(t, err, "input %q", in)
					assert.GreaterOrEqual(t, v, 0.0)
					assert.LessOrEqual(t, v, validator.MaxNumericValue)
				}
			}
		})
	}
}

func TestEndToEndScenarios(t *testing.T) {
	t.Parallel()

	out := validator.ValidateProjectName("'; DROP TABLE users; --")
	assert.False(t, out.Accepted)
	assert.Contains(t, strings.ToLower(out.Message), "invalid characters")

	assert.False(t, validator.ValidateProjectName("<script>alert('XSS')</script>").Accepted)

	out = validator.ValidateProjectName("Construcción")
	assert.True(t, out.Accepted)
	assert.Equal(t, "Construcción", out.Value)

	out = validator.ValidatePrice("abc123")
	assert.False(t, out.Accepted)
	assert.Contains(t, out.Message, "numbers and decimal point")

	out = validator.ValidateDescription("")
	assert.True(t, out.Accepted)
	assert.Equal(t, "", out.Value)

	assert.False(t, validator.ValidateProjectName("Project<>Name").Accepted)

	resolver := newFakeResolver()
	assert.True(t, validator.ValidateImageReference(context.Background(), resolver, "").Accepted)

	img := validator.ValidateImageReference(context.Background(), resolver, "big.jpg")
	assert.False(t, img.Accepted)
	assert.Contains(t, img.Message, "5MB")
}

func BenchmarkValidateProjectName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = validator.ValidateProjectName("  Edificio Residencial Construcción (Fase 2)  ")
	}
}

func BenchmarkValidateDescription(b *testing.B) {
	in := strings.Repeat("Hormigón armado, 25 MPa! ", 18)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validator.ValidateDescription(in)
	}
}

func BenchmarkValidatePrice(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = validator.ValidatePrice("12345.67")
	}
}
