package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/ankigen/internal/generation"
)

// MockTextGenerator implements generation.TextGenerator for testing
type MockTextGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Prompts contains all prompts passed to Generate calls
		Prompts []string
	}
}

// Generate implements the generation.TextGenerator interface
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}

	return m.Text, m.Err
}

// NewMockTextGeneratorWithText creates a MockTextGenerator that always
// returns text
func NewMockTextGeneratorWithText(text string) *MockTextGenerator {
	return &MockTextGenerator{Text: text}
}

// NewMockTextGeneratorWithError creates a MockTextGenerator that always
// fails with err
func NewMockTextGeneratorWithError(err error) *MockTextGenerator {
	return &MockTextGenerator{Err: err}
}

// MockTextGeneratorThatFails simulates a generation service failure
func MockTextGeneratorThatFails() *MockTextGenerator {
	return &MockTextGenerator{Err: generation.ErrGenerationFailed}
}

// MockTextGeneratorWithContentBlocked simulates a safety-filtered reply
func MockTextGeneratorWithContentBlocked() *MockTextGenerator {
	return &MockTextGenerator{Err: generation.ErrContentBlocked}
}

// Reset resets the call tracking state
func (m *MockTextGenerator) Reset() {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()

	m.GenerateCalls.Count = 0
	m.GenerateCalls.Prompts = nil
}
