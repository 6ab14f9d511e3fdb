package validator

import "slices"

var fieldValidators = map[string]func(string) Outcome{
	FieldProjectName:  ValidateProjectName,
	FieldMaterialName: ValidateMaterialName,
	FieldDescription:  ValidateDescription,
	FieldPrice:        ValidatePrice,
	FieldQuantity:     ValidateQuantity,
}

// ForField returns the single-field validator registered for field.
func ForField(field string) (func(string) Outcome, bool) {
	fn, ok := fieldValidators[field]
	return fn, ok
}

// FieldNames returns the names accepted by ForField, sorted.
func FieldNames() []string {
	names := make([]string, 0, len(fieldValidators))
	for name := range fieldValidators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
