package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "ANKIGEN"

// Default values used when neither config.yaml nor the environment sets them.
const (
	DefaultAnkiURL      = "http://localhost:8765"
	DefaultDeckName     = "PCA105 - Digital System"
	DefaultAnkiTimeout  = 30 * time.Second
	DefaultLedgerPath   = "flashcard_log.json"
	DefaultSubmitDelay  = 15 * time.Second
	DefaultCardsPerUnit = 20
)

// Load configuration from environment variables and optionally a
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile behaves like Load but reads the given config file instead of
// searching the working directory. A path that cannot be read is an error.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults are invisible to Unmarshal unless bound.
	// The provider-native variable names are accepted as fallbacks.
	bindEnvs := []struct {
		key     string
		envVars []string
	}{
		{"llm.gemini_api_key", []string{"ANKIGEN_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"}},
		{"llm.openai_api_key", []string{"ANKIGEN_LLM_OPENAI_API_KEY", "OPENAI_API_KEY"}},
		{"llm.openai_base_url", []string{"ANKIGEN_LLM_OPENAI_BASE_URL"}},
		{"llm.model_name", []string{"ANKIGEN_LLM_MODEL_NAME"}},
		{"run.syllabus_path", []string{"ANKIGEN_RUN_SYLLABUS_PATH"}},
	}

	for _, env := range bindEnvs {
		input := append([]string{env.key}, env.envVars...)
		if err := v.BindEnv(input...); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVars[0], err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a Config against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("anki.url", DefaultAnkiURL)
	v.SetDefault("anki.deck_name", DefaultDeckName)
	v.SetDefault("anki.render_markdown", false)
	v.SetDefault("anki.request_timeout", DefaultAnkiTimeout)
	v.SetDefault("ledger.path", DefaultLedgerPath)
	v.SetDefault("run.submit_delay", DefaultSubmitDelay)
	v.SetDefault("run.cards_per_unit", DefaultCardsPerUnit)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
