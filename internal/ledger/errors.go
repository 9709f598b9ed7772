package ledger

import "errors"

// Common ledger errors.
var (
	// ErrCorruptLedger is returned when the ledger file exists but does not
	// contain a valid JSON ledger document. It is not repaired automatically.
	ErrCorruptLedger = errors.New("ledger file is not valid JSON")

	// ErrEmptyPath is returned when a store is created without a file path.
	ErrEmptyPath = errors.New("ledger path cannot be empty")

	// ErrNilLedger is returned when Save is called with a nil ledger.
	ErrNilLedger = errors.New("ledger cannot be nil")
)
