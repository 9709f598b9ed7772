package pipeline

import "errors"

// Construction errors.
var (
	ErrNilGenerator  = errors.New("text generator cannot be nil")
	ErrNilSink       = errors.New("note sink cannot be nil")
	ErrNilStore      = errors.New("ledger store cannot be nil")
	ErrNilLogger     = errors.New("logger cannot be nil")
	ErrEmptyDeckName = errors.New("deck name cannot be empty")
	ErrNegativeDelay = errors.New("submit delay cannot be negative")
	ErrNilSleeper    = errors.New("sleeper cannot be nil")
	ErrNilRenderer   = errors.New("renderer cannot be nil")
)

// Run errors.
var (
	// ErrLedgerLoad is returned when the ledger cannot be read at the start
	// of a run. Nothing has been generated or submitted.
	ErrLedgerLoad = errors.New("failed to load ledger")

	// ErrLedgerSave is returned when the ledger cannot be written after a
	// card was accepted. The card exists in Anki but not in the ledger.
	ErrLedgerSave = errors.New("failed to save ledger")

	// ErrInterrupted is returned when the context is cancelled mid-run.
	ErrInterrupted = errors.New("run interrupted")
)
