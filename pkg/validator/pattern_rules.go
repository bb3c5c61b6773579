package validator

import "fmt"

// Matches validates value with an arbitrary predicate, e.g. a domain-specific format check.
func Matches(field, value string, match func(string) bool, description string) Rule {
	return Rule{
		Check: func() bool {
			return match(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid %s", description),
			TranslationKey: "validation.format",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
		},
	}
}
