package mocks

import (
	"context"
	"strconv"
	"sync"

	"github.com/phrazzld/ankigen/internal/platform/ankiconnect"
)

// AddCardCall records the arguments of one AddCard call.
type AddCardCall struct {
	Front string
	Back  string
	Deck  string
}

// MockNoteSink implements pipeline.NoteSink for testing. With no AddCardFn
// and no Response or Err set, every call succeeds with an increasing note
// id.
type MockNoteSink struct {
	AddCardFn func(ctx context.Context, front, back, deck string) (*ankiconnect.Response, error)

	Response *ankiconnect.Response
	Err      error

	mu    sync.Mutex
	calls []AddCardCall
}

// AddCard implements pipeline.NoteSink
func (m *MockNoteSink) AddCard(ctx context.Context, front, back, deck string) (*ankiconnect.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, AddCardCall{Front: front, Back: back, Deck: deck})
	n := len(m.calls)
	m.mu.Unlock()

	if m.AddCardFn != nil {
		return m.AddCardFn(ctx, front, back, deck)
	}
	if m.Response != nil || m.Err != nil {
		return m.Response, m.Err
	}

	return SuccessResponse(int64(1000 + n)), nil
}

// Calls returns a copy of the recorded calls
func (m *MockNoteSink) Calls() []AddCardCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]AddCardCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// Fronts returns the front field of each recorded call, in order
func (m *MockNoteSink) Fronts() []string {
	calls := m.Calls()
	fronts := make([]string, len(calls))
	for i, c := range calls {
		fronts[i] = c.Front
	}
	return fronts
}

// Reset clears the recorded calls
func (m *MockNoteSink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// SuccessResponse builds the reply AnkiConnect sends for a created note.
func SuccessResponse(noteID int64) *ankiconnect.Response {
	return &ankiconnect.Response{Result: []byte(strconv.FormatInt(noteID, 10))}
}

// ErrorResponse builds the reply AnkiConnect sends for a rejected note.
func ErrorResponse(msg string) *ankiconnect.Response {
	return &ankiconnect.Response{Result: []byte("null"), Error: &msg}
}
