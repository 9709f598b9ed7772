package domain

import "fmt"

// Ledger is the ordered record of flashcards already created in Anki.
// It is used solely for duplicate suppression: no two entries may share
// a Front. The invariant is checked by Add, not enforced by the layout.
type Ledger struct {
	Flashcards []Flashcard `json:"flashcards"`
}

// NewLedger returns an empty ledger whose Flashcards slice is non-nil, so
// that it serializes as an empty JSON array rather than null.
func NewLedger() *Ledger {
	return &Ledger{Flashcards: []Flashcard{}}
}

// Contains reports whether a flashcard with exactly the given front
// (case-sensitive) has already been recorded.
func (l *Ledger) Contains(front string) bool {
	if l == nil {
		return false
	}

	for _, card := range l.Flashcards {
		if card.Front == front {
			return true
		}
	}

	return false
}

// Add appends a card to the ledger. It refuses invalid cards and cards whose
// front is already present.
func (l *Ledger) Add(card Flashcard) error {
	if err := card.Validate(); err != nil {
		return err
	}

	if l.Contains(card.Front) {
		return fmt.Errorf("%w: %q", ErrDuplicateFront, card.Front)
	}

	l.Flashcards = append(l.Flashcards, card)
	return nil
}

// Len returns the number of recorded flashcards.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Flashcards)
}
