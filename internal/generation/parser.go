package generation

import (
	"strings"

	"github.com/phrazzld/ankigen/internal/domain"
)

const (
	questionPrefix = "Q:"
	answerPrefix   = "A:"
)

// ParsePairs extracts question/answer pairs from line-prefixed text.
//
// A "Q:" line starts a new question, first emitting the previous pair if
// both its question and answer are set. An "A:" line sets the answer of the
// current question; a later "A:" line overwrites it. Every other line is
// ignored. A question left without an answer when the next "Q:" arrives is
// dropped. Pairs come back in source order and are never deduplicated;
// malformed input yields no pairs.
func ParsePairs(text string) []domain.Pair {
	var (
		pairs    []domain.Pair
		question string
		answer   string
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, questionPrefix):
			if question != "" && answer != "" {
				pairs = append(pairs, domain.Pair{Question: question, Answer: answer})
			}
			question = strings.TrimSpace(strings.TrimPrefix(line, questionPrefix))
			answer = ""
		case strings.HasPrefix(line, answerPrefix):
			answer = strings.TrimSpace(strings.TrimPrefix(line, answerPrefix))
		}
	}

	if question != "" && answer != "" {
		pairs = append(pairs, domain.Pair{Question: question, Answer: answer})
	}

	return pairs
}
