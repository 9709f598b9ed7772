package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/ankigen/internal/config"
	"github.com/phrazzld/ankigen/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the slice of the genai Models service used here.
// *genai.Models satisfies it; tests substitute a fake.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements the generation.TextGenerator interface using
// Google's Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues GenerateContent requests
	models contentGenerator

	// model is the name of the Gemini model to use
	model string
}

var _ generation.TextGenerator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed generator from the LLM configuration.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key and model name
//
// Returns:
//   - A properly initialized Generator or an error if initialization fails
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, client.Models, cfg.Model()), nil
}

func newGenerator(logger *slog.Logger, models contentGenerator, model string) *Generator {
	return &Generator{
		logger: logger.With("provider", config.ProviderGemini, "model", model),
		models: models,
		model:  model,
	}
}

// Generate sends the prompt as a single user turn and returns the reply
// text. A reply without text is reported as generation.ErrContentBlocked
// when Gemini flagged it for safety and generation.ErrEmptyResponse
// otherwise.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	g.logger.DebugContext(ctx, "making Gemini API call", "prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrEmptyResponse)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		if reason := blockReason(resp); reason != "" {
			return "", fmt.Errorf("%w: %s", generation.ErrContentBlocked, reason)
		}
		return "", fmt.Errorf("%w: no text in %d candidate(s)",
			generation.ErrEmptyResponse, len(resp.Candidates))
	}

	g.logger.DebugContext(ctx, "Gemini API call successful", "response_length", len(text))

	return text, nil
}

// blockReason reports why Gemini withheld content, or "" if it did not.
func blockReason(resp *genai.GenerateContentResponse) string {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "prompt blocked: " + string(resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "candidate blocked by safety filters"
	}

	return ""
}
