package generation

import "context"

// TextGenerator defines the interface for single-shot text generation.
// This interface serves as a boundary between the pipeline and external
// AI/LLM services.
type TextGenerator interface {
	// Generate sends one prompt, with no conversation state and no
	// streaming, and returns the reply's plain text.
	//
	// Implementations return an error wrapping ErrEmptyResponse when the
	// reply has no text, so a nil error always comes with non-empty text.
	Generate(ctx context.Context, prompt string) (string, error)
}
