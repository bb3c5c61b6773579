package validator

import "fmt"

// LengthFunc measures a string.
type LengthFunc func(string) int

// UTF16Length counts UTF-16 code units, the way browsers report String.length.
// Code points outside the Basic Multilingual Plane count as two.
func UTF16Length(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// NotEmpty validates that a string has at least one byte. Callers trim first
// when whitespace-only values should fail.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenBy validates that length(value) >= min.
func MinLenBy(field, value string, min int, length LengthFunc) Rule {
	return Rule{
		Check: func() bool {
			return length(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
