package validator

import "sort"

// Keys used by the composite validators.
const (
	KeyName        = "name"
	KeyDescription = "description"
	KeyQuantity    = "quantity"
	KeyPrice       = "price"
)

// Results maps form field names to their individual outcomes.
type Results map[string]Outcome

// Valid reports whether every outcome was accepted.
func (r Results) Valid() bool {
	for _, o := range r {
		if !o.Accepted {
			return false
		}
	}
	return true
}

// Values returns the cleansed values of accepted fields.
func (r Results) Values() map[string]string {
	values := make(map[string]string, len(r))
	for field, o := range r {
		if o.Accepted {
			values[field] = o.Value
		}
	}
	return values
}

// Err returns the rejected fields as ValidationErrors, ordered by field name,
// or nil when every field was accepted.
func (r Results) Err() error {
	fields := make([]string, 0, len(r))
	for field := range r {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var errs ValidationErrors
	for _, field := range fields {
		if verr, ok := r[field].ValidationError(field); ok {
			errs = append(errs, verr)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ValidateProjectData validates every field of the project form.
// All fields are validated even when an earlier one fails.
func ValidateProjectData(name, description string) Results {
	return Results{
		KeyName:        ValidateProjectName(name),
		KeyDescription: ValidateDescription(description),
	}
}

// ValidateMaterialData validates every field of the material form.
// All fields are validated even when an earlier one fails.
func ValidateMaterialData(name, quantity, price, description string) Results {
	return Results{
		KeyName:        ValidateMaterialName(name),
		KeyQuantity:    ValidateQuantity(quantity),
		KeyPrice:       ValidatePrice(price),
		KeyDescription: ValidateDescription(description),
	}
}
