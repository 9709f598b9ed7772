package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/ankigen/internal/config"
	"github.com/phrazzld/ankigen/internal/generation"
	"github.com/phrazzld/ankigen/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels records GenerateContent calls and replays a canned response.
type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error

	calls    int
	model    string
	contents []*genai.Content
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	_ *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.contents = contents
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content, FinishReason: genai.FinishReasonStop}},
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("returns reply text", func(t *testing.T) {
		t.Parallel()

		l, _ := logger.GetTestLogger(t)
		fake := &fakeModels{resp: textResponse("Q: What is X?\n", "A: X is Y.")}
		g := newGenerator(l, fake, "gemini-test")

		text, err := g.Generate(context.Background(), "make cards")

		require.NoError(t, err)
		assert.Equal(t, "Q: What is X?\nA: X is Y.", text)
		assert.Equal(t, 1, fake.calls)
		assert.Equal(t, "gemini-test", fake.model)
		require.Len(t, fake.contents, 1)
		require.Len(t, fake.contents[0].Parts, 1)
		assert.Equal(t, "make cards", fake.contents[0].Parts[0].Text)
	})

	t.Run("empty prompt is rejected without a call", func(t *testing.T) {
		t.Parallel()

		l, _ := logger.GetTestLogger(t)
		fake := &fakeModels{resp: textResponse("unused")}
		g := newGenerator(l, fake, "gemini-test")

		_, err := g.Generate(context.Background(), "")

		assert.True(t, errors.Is(err, generation.ErrEmptyPrompt))
		assert.Zero(t, fake.calls)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		l, _ := logger.GetTestLogger(t)
		g := newGenerator(l, &fakeModels{err: errors.New("connection refused")}, "gemini-test")

		_, err := g.Generate(context.Background(), "prompt")

		assert.True(t, errors.Is(err, generation.ErrGenerationFailed))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		l, _ := logger.GetTestLogger(t)
		g := newGenerator(l, &fakeModels{}, "gemini-test")

		_, err := g.Generate(context.Background(), "prompt")

		assert.True(t, errors.Is(err, generation.ErrEmptyResponse))
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()

		l, _ := logger.GetTestLogger(t)
		g := newGenerator(l, &fakeModels{resp: &genai.GenerateContentResponse{}}, "gemini-test")

		_, err := g.Generate(context.Background(), "prompt")

		assert.True(t, errors.Is(err, generation.ErrEmptyResponse))
	})

	t.Run("whitespace only text", func(t *testing.T) {
		t.Parallel()

		l, _ := logger.GetTestLogger(t)
		g := newGenerator(l, &fakeModels{resp: textResponse("  \n ")}, "gemini-test")

		_, err := g.Generate(context.Background(), "prompt")

		assert.True(t, errors.Is(err, generation.ErrEmptyResponse))
	})

	t.Run("candidate blocked by safety", func(t *testing.T) {
		t.Parallel()

		l, _ := logger.GetTestLogger(t)
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
		}
		g := newGenerator(l, &fakeModels{resp: resp}, "gemini-test")

		_, err := g.Generate(context.Background(), "prompt")

		assert.True(t, errors.Is(err, generation.ErrContentBlocked))
	})

	t.Run("prompt blocked", func(t *testing.T) {
		t.Parallel()

		l, _ := logger.GetTestLogger(t)
		resp := &genai.GenerateContentResponse{
			PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
				BlockReason: genai.BlockedReasonSafety,
			},
		}
		g := newGenerator(l, &fakeModels{resp: resp}, "gemini-test")

		_, err := g.Generate(context.Background(), "prompt")

		assert.True(t, errors.Is(err, generation.ErrContentBlocked))
		assert.Contains(t, err.Error(), "SAFETY")
	})
}

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	l, _ := logger.GetTestLogger(t)

	_, err := NewGenerator(context.Background(), nil, config.LLMConfig{GeminiAPIKey: "k"})
	assert.True(t, errors.Is(err, ErrNilLogger))

	_, err = NewGenerator(context.Background(), l, config.LLMConfig{Provider: config.ProviderGemini})
	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))

	g, err := NewGenerator(context.Background(), l, config.LLMConfig{
		Provider:     config.ProviderGemini,
		GeminiAPIKey: "test-key",
	})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultGeminiModel, g.model)
}
