// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "machine not found",
//	    cause,
//	    map[string]any{
//	        "machine":     name,
//	        "suggestions": []string{"Large Chemical Reactor"},
//	    },
//	)
//
// Errors from the calculation packages are converted with FromCore, which
// maps recipe.ErrMissingIdentity to MISSING_IDENTITY and
// recipe.ErrEmptyRecipeSet to EMPTY_RECIPE_SET.
package errors
