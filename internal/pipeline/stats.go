package pipeline

import "log/slog"

// RunStats counts what happened during a run. It is logged when the run
// ends and never persisted.
type RunStats struct {
	Units             int
	UnitsSkipped      int
	PairsParsed       int
	CardsAdded        int
	DuplicatesSkipped int
	SubmissionsFailed int
}

// Submissions returns how many AddCard calls were made.
func (s RunStats) Submissions() int {
	return s.CardsAdded + s.SubmissionsFailed
}

// LogValue implements slog.LogValuer.
func (s RunStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("units", s.Units),
		slog.Int("units_skipped", s.UnitsSkipped),
		slog.Int("pairs_parsed", s.PairsParsed),
		slog.Int("cards_added", s.CardsAdded),
		slog.Int("duplicates_skipped", s.DuplicatesSkipped),
		slog.Int("submissions_failed", s.SubmissionsFailed),
	)
}
