package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/folio/pkg/validator"
)

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.NotEmpty("f", " ").Check())
	assert.False(t, validator.NotEmpty("f", "").Check())
}

func TestUTF16Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"ascii", "hello", 5},
		{"latin accents", "héllo", 5},
		{"cjk", "你好", 2},
		{"emoji outside BMP", "😀", 2},
		{"mixed", "a😀b", 4},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.UTF16Length(tt.value))
		})
	}
}

func TestMinLenBy(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MinLenBy("f", "ab", 2, validator.UTF16Length).Check())
	assert.False(t, validator.MinLenBy("f", "a", 2, validator.UTF16Length).Check())

	assert.True(t, validator.MinLenBy("f", "😀", 2, validator.UTF16Length).Check())

	rule := validator.MinLenBy("name", "a", 2, validator.UTF16Length)
	assert.Equal(t, "must be at least 2 characters long", rule.Error.Message)
	assert.Equal(t, 2, rule.Error.TranslationValues["min"])
}
