package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/ankigen/internal/config"
	"github.com/phrazzld/ankigen/internal/generation"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrNilLogger is returned when a generator is constructed without a logger.
var ErrNilLogger = errors.New("logger cannot be nil")

// Generator implements generation.TextGenerator using the official
// openai-go SDK.
type Generator struct {
	logger *slog.Logger
	client oai.Client
	model  string
}

var _ generation.TextGenerator = (*Generator)(nil)

// NewGenerator creates an OpenAI-backed generator. Extra request options
// are appended after the ones derived from cfg.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) (*Generator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
	}
	if cfg.OpenAIBaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	model := cfg.Model()

	return &Generator{
		logger: logger.With("provider", config.ProviderOpenAI, "model", model),
		client: oai.NewClient(reqOpts...),
		model:  model,
	}, nil
}

// Generate sends the prompt as one user message and returns the first
// choice's content.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	g.logger.DebugContext(ctx, "making OpenAI API call", "prompt_length", len(prompt))

	resp, err := g.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model: oai.ChatModel(g.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", generation.ErrEmptyResponse)
	}

	choice := resp.Choices[0]
	if strings.TrimSpace(choice.Message.Content) == "" {
		if choice.FinishReason == "content_filter" || choice.Message.Refusal != "" {
			return "", fmt.Errorf("%w: %s", generation.ErrContentBlocked, choice.Message.Refusal)
		}
		return "", fmt.Errorf("%w: finish reason %q", generation.ErrEmptyResponse, choice.FinishReason)
	}

	g.logger.DebugContext(ctx, "OpenAI API call successful",
		"response_length", len(choice.Message.Content))

	return choice.Message.Content, nil
}
