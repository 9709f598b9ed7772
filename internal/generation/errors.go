package generation

import "errors"

// Common errors returned by the generation package and its backends.
var (
	// ErrGenerationFailed is returned when the call to the generation service
	// itself fails (transport error, API error status).
	ErrGenerationFailed = errors.New("failed to generate text")

	// ErrEmptyResponse is returned when the service answers but the reply
	// carries no usable text.
	ErrEmptyResponse = errors.New("generation service returned no text")

	// ErrContentBlocked is returned when the service withholds its reply due
	// to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrEmptyPrompt is returned when Generate is called with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
