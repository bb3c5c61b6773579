package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.True(t, errs.IsEmpty())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "name", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; name: too short", errs.Error())
		assert.True(t, errors.Is(errs, validator.ErrValidationFailed))
	})
}

func TestFirstFailure(t *testing.T) {
	t.Parallel()

	t.Run("stops at first failing rule", func(t *testing.T) {
		verr, failed := validator.FirstFailure(
			validator.NotEmpty("name", "").WithMessage("Name is required"),
			validator.MinLenBy("name", "", 2, validator.UTF16Length).WithMessage("too short"),
		)
		require.True(t, failed)
		assert.Equal(t, "name", verr.Field)
		assert.Equal(t, "Name is required", verr.Message)
	})

	t.Run("reports later rule when earlier ones pass", func(t *testing.T) {
		verr, failed := validator.FirstFailure(
			validator.NotEmpty("name", "A"),
			validator.MinLenBy("name", "A", 2, validator.UTF16Length).WithMessage("too short"),
		)
		require.True(t, failed)
		assert.Equal(t, "too short", verr.Message)
	})

	t.Run("no failure", func(t *testing.T) {
		_, failed := validator.FirstFailure(validator.NotEmpty("name", "Al"))
		assert.False(t, failed)
	})
}

func TestChain(t *testing.T) {
	t.Parallel()

	err := validator.Chain(
		[]validator.Rule{
			validator.NotEmpty("name", ""),
			validator.MinLenBy("name", "", 2, validator.UTF16Length),
		},
		[]validator.Rule{
			validator.NotEmpty("email", "x"),
		},
		[]validator.Rule{
			validator.NotEmpty("message", ""),
		},
	)
	require.ErrorIs(t, err, validator.ErrValidationFailed)

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)
	assert.Equal(t, "name", verrs[0].Field)
	assert.Equal(t, "field is required", verrs[0].Message)
	assert.Equal(t, "message", verrs[1].Field)

	assert.NoError(t, validator.Chain([]validator.Rule{validator.NotEmpty("name", "ok")}))
}

func TestExtractValidationErrors_NonValidation(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
}
