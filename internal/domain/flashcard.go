package domain

import "fmt"

// Flashcard is a question/answer pair that has been accepted by the note
// sink. Front is the identity key: two cards with the same front are the
// same card regardless of back or unit.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
	Unit  int    `json:"unit"`
}

// NewFlashcard builds a Flashcard from a generated pair and the unit it was
// generated for. Returns an error if either side is empty.
func NewFlashcard(pair Pair, unit int) (Flashcard, error) {
	card := Flashcard{
		Front: pair.Question,
		Back:  pair.Answer,
		Unit:  unit,
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}

	return card, nil
}

// Validate checks that both sides of the card carry text.
func (c Flashcard) Validate() error {
	if c.Front == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyFront)
	}

	if c.Back == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyBack)
	}

	return nil
}

// Pair is one generated question/answer candidate before duplicate
// filtering.
type Pair struct {
	Question string
	Answer   string
}

// Unit is one labeled block of the syllabus. Number is 0 when the header
// did not carry a parsable unit number; Numbered tells that case apart from
// a literal "Unit 0" header.
type Unit struct {
	Number   int
	Numbered bool
	Body     string
}
