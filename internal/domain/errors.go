package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyFront is returned when a flashcard has no question text.
	ErrEmptyFront = errors.New("flashcard front cannot be empty")

	// ErrEmptyBack is returned when a flashcard has no answer text.
	ErrEmptyBack = errors.New("flashcard back cannot be empty")

	// ErrDuplicateFront is returned when a flashcard with the same front
	// is already recorded in the ledger.
	ErrDuplicateFront = errors.New("flashcard front already recorded")
)
