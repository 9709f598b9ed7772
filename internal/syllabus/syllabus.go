package syllabus

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phrazzld/ankigen/internal/domain"
)

// UnitMarker delimits units in syllabus text. Anything before the first
// marker is preamble and is discarded.
const UnitMarker = "Unit "

// ErrEmptySyllabus is returned when a syllabus file has no content.
var ErrEmptySyllabus = errors.New("syllabus text cannot be empty")

// Split divides the syllabus into units in declaration order.
//
// The unit number is the integer before the first colon on the block's
// first line. When it does not parse the unit falls back to number 0;
// several malformed headers therefore all share unit 0. The header line is
// stripped from the body.
func Split(text string) []domain.Unit {
	blocks := strings.Split(strings.TrimSpace(text), UnitMarker)
	if len(blocks) <= 1 {
		return nil
	}

	units := make([]domain.Unit, 0, len(blocks)-1)
	for _, block := range blocks[1:] {
		lines := strings.Split(strings.TrimSpace(block), "\n")

		number, ok := ParseUnitNumber(lines[0])
		units = append(units, domain.Unit{
			Number:   number,
			Numbered: ok,
			Body:     strings.TrimSpace(strings.Join(lines[1:], "\n")),
		})
	}

	return units
}

// ParseUnitNumber extracts the unit number from a header line such as
// "3: Integral Calculus (10 Hrs)". It returns 0 and false if the text
// before the first colon is not an integer.
func ParseUnitNumber(header string) (int, bool) {
	head, _, _ := strings.Cut(header, ":")

	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}

	return n, true
}

// Load returns the syllabus text to use for a run: the contents of path
// when it is set, the built-in syllabus otherwise.
func Load(path string) (string, error) {
	if path == "" {
		return Default, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read syllabus file: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptySyllabus, path)
	}

	return string(data), nil
}
