package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pair    Pair
		unit    int
		wantErr error
	}{
		{
			name: "valid pair",
			pair: Pair{Question: "What is a matrix?", Answer: "A rectangular array of numbers."},
			unit: 1,
		},
		{
			name:    "empty question",
			pair:    Pair{Question: "", Answer: "Something"},
			unit:    2,
			wantErr: ErrEmptyFront,
		},
		{
			name:    "empty answer",
			pair:    Pair{Question: "Something?", Answer: ""},
			unit:    2,
			wantErr: ErrEmptyBack,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			card, err := NewFlashcard(tc.pair, tc.unit)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.True(t, errors.Is(err, ErrValidation), "validation errors should wrap ErrValidation")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.pair.Question, card.Front)
			assert.Equal(t, tc.pair.Answer, card.Back)
			assert.Equal(t, tc.unit, card.Unit)
		})
	}
}
