package breakdown

import "errors"

// Common errors returned by breakdown implementations.
var (
	// ErrBreakdownFailed is the base error for a breakdown that failed
	// for any reason; the more specific errors below are preferred.
	ErrBreakdownFailed = errors.New("failed to break down subject")

	// ErrInvalidResponse is returned when the service response cannot be
	// parsed as JSON or violates the required sub-topic shape.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the service refuses the prompt
	// on safety grounds.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrServiceFailure is returned when the service call itself fails
	// (network, quota, server error).
	ErrServiceFailure = errors.New("language model service failure")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
