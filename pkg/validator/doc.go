// Package validator provides small, composable validation rules.
//
// A Rule couples a Check function with the ValidationError reported when the
// check fails. FirstFailure evaluates the rules of one field and stops at the
// first failure; Chain does that per field and aggregates the results. An
// empty name reports "is required", not "is required" and "too short".
//
// # Usage
//
//	err := validator.Chain(
//	    []validator.Rule{
//	        validator.NotEmpty("name", name).WithMessage("Name is required"),
//	        validator.MinLenBy("name", name, 2, validator.UTF16Length),
//	    },
//	    []validator.Rule{
//	        validator.NotEmpty("email", email),
//	        validator.Matches("email", email, isEmail, "email address"),
//	    },
//	)
//	for _, verr := range validator.ExtractValidationErrors(err) {
//	    log.Println(verr.Field, verr.Message)
//	}
//
// # Lengths
//
// Length rules take a LengthFunc so callers choose what a "character" is.
// UTF16Length matches what browsers report, which keeps server and client
// limits on the same boundary.
//
// # Error Handling
//
// ValidationErrors implements error and unwraps to ErrValidationFailed, so
// errors.Is(err, validator.ErrValidationFailed) detects any validation failure.
package validator
