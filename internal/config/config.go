package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
	Anki   AnkiConfig   `mapstructure:"anki" validate:"required"`
	Ledger LedgerConfig `mapstructure:"ledger" validate:"required"`
	Run    RunConfig    `mapstructure:"run" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
}

// Supported text generation providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Default model names per provider, used when llm.model_name is unset.
const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	Provider      string `mapstructure:"provider" validate:"required,oneof=gemini openai"`
	GeminiAPIKey  string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	OpenAIAPIKey  string `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`
	ModelName     string `mapstructure:"model_name"`
}

// Model returns the configured model name, or the provider's default.
func (c LLMConfig) Model() string {
	if c.ModelName != "" {
		return c.ModelName
	}
	if c.Provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}

// AnkiConfig contains the AnkiConnect endpoint and target deck.
type AnkiConfig struct {
	URL      string `mapstructure:"url" validate:"required,url"`
	DeckName string `mapstructure:"deck_name" validate:"required"`
	// RequestTimeout bounds each AnkiConnect call. Zero waits indefinitely.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
	// RenderMarkdown converts generated markdown to HTML before the fields
	// are sent to Anki. The ledger always keeps the raw text.
	RenderMarkdown bool `mapstructure:"render_markdown"`
}

// LedgerConfig locates the JSON ledger used for duplicate suppression.
type LedgerConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// RunConfig contains per-run pipeline settings.
type RunConfig struct {
	// SubmitDelay is the pause after every submission attempt.
	SubmitDelay  time.Duration `mapstructure:"submit_delay" validate:"gte=0"`
	CardsPerUnit int           `mapstructure:"cards_per_unit" validate:"gte=1,lte=100"`
	// SyllabusPath points at a syllabus text file; empty means the built-in
	// syllabus.
	SyllabusPath string `mapstructure:"syllabus_path"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}
