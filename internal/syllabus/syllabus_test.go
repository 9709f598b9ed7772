package syllabus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	t.Run("two units with header stripped", func(t *testing.T) {
		t.Parallel()

		units := Split("Unit 1: A (1 Hrs)\nBody1\n\nUnit 2: B (2 Hrs)\nBody2")

		require.Len(t, units, 2)
		assert.Equal(t, 1, units[0].Number)
		assert.Equal(t, "Body1", units[0].Body)
		assert.Equal(t, 2, units[1].Number)
		assert.Equal(t, "Body2", units[1].Body)
	})

	t.Run("preamble is discarded", func(t *testing.T) {
		t.Parallel()

		units := Split("Course overview text\n\nUnit 7: Only (3 Hrs)\nLine one\nLine two\n")

		require.Len(t, units, 1)
		assert.Equal(t, 7, units[0].Number)
		assert.Equal(t, "Line one\nLine two", units[0].Body)
	})

	t.Run("malformed header falls back to zero", func(t *testing.T) {
		t.Parallel()

		units := Split("Unit IV: Roman (2 Hrs)\nBody\nUnit two: Words\nOther")

		require.Len(t, units, 2)
		assert.Equal(t, 0, units[0].Number)
		assert.False(t, units[0].Numbered)
		assert.Equal(t, "Body", units[0].Body, "body is kept when the header is malformed")
		assert.Equal(t, 0, units[1].Number)
		assert.False(t, units[1].Numbered)
	})

	t.Run("literal unit zero is numbered", func(t *testing.T) {
		t.Parallel()

		units := Split("Unit 0: Orientation\nWelcome")

		require.Len(t, units, 1)
		assert.Equal(t, 0, units[0].Number)
		assert.True(t, units[0].Numbered)
	})

	t.Run("no markers yields no units", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Split(""))
		assert.Empty(t, Split("just some text without any markers"))
	})

	t.Run("default syllabus has five numbered units", func(t *testing.T) {
		t.Parallel()

		units := Split(Default)

		require.Len(t, units, 5)
		for i, u := range units {
			assert.Equal(t, i+1, u.Number)
			assert.NotEmpty(t, u.Body)
			assert.NotContains(t, u.Body, "Hrs)", "header line should be stripped")
		}
	})
}

func TestParseUnitNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   int
		wantOK bool
	}{
		{"1: Matrix (14 Hrs)", 1, true},
		{" 12 : Spaced", 12, true},
		{"42", 42, true},
		{"0: Orientation", 0, true},
		{"X: Bad", 0, false},
		{"", 0, false},
		{"3.5: Fractional", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseUnitNumber(tc.header)
		assert.Equal(t, tc.want, got, "header %q", tc.header)
		assert.Equal(t, tc.wantOK, ok, "header %q", tc.header)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses default", func(t *testing.T) {
		t.Parallel()

		text, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default, text)
	})

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "syllabus.txt")
		require.NoError(t, os.WriteFile(path, []byte("Unit 1: A\nBody"), 0o644))

		text, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Unit 1: A\nBody", text)
	})

	t.Run("blank file is rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "blank.txt")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

		_, err := Load(path)
		assert.True(t, errors.Is(err, ErrEmptySyllabus))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
		assert.Error(t, err)
	})
}
