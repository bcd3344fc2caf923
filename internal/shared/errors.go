package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// API errors
	ErrAPIRequest = fmt.Errorf("API request failed")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")

	// Output errors
	ErrWriteFailed = fmt.Errorf("failed to write export")
)
