package generation

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/phrazzld/ankigen/internal/domain"
)

// DefaultCardsPerUnit is how many question/answer pairs are requested for
// each unit unless configured otherwise.
const DefaultCardsPerUnit = 20

const promptText = `
You are a helpful assistant creating flashcards for a PGDCA course.
Based on the following unit syllabus text, generate exactly {{.CardsPerUnit}} unique flashcards for this unit (question and answer) in this format:

Q: [Question]
A: [Answer]

Avoid repeating any previously generated question. Make questions clear, concise, and relevant to the unit content.

Unit {{.UnitNumber}} syllabus:
"""
{{.UnitText}}
"""
`

var promptTemplate = template.Must(template.New("flashcard").Parse(promptText))

// promptData represents the data passed to the prompt template
type promptData struct {
	UnitNumber   int
	UnitText     string
	CardsPerUnit int
}

// BuildPrompt renders the instructional prompt for a unit. A non-positive
// cardsPerUnit falls back to DefaultCardsPerUnit.
func BuildPrompt(unit domain.Unit, cardsPerUnit int) (string, error) {
	if cardsPerUnit <= 0 {
		cardsPerUnit = DefaultCardsPerUnit
	}

	data := promptData{
		UnitNumber:   unit.Number,
		UnitText:     unit.Body,
		CardsPerUnit: cardsPerUnit,
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
