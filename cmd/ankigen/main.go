// Package main implements the ankigen command, which generates flashcards
// for each unit of a course syllabus and adds the new ones to Anki through
// AnkiConnect.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/ankigen/internal/config"
	"github.com/phrazzld/ankigen/internal/generation"
	"github.com/phrazzld/ankigen/internal/ledger"
	"github.com/phrazzld/ankigen/internal/pipeline"
	"github.com/phrazzld/ankigen/internal/platform/ankiconnect"
	"github.com/phrazzld/ankigen/internal/platform/gemini"
	"github.com/phrazzld/ankigen/internal/platform/logger"
	"github.com/phrazzld/ankigen/internal/platform/markdown"
	"github.com/phrazzld/ankigen/internal/platform/openai"
	"github.com/phrazzld/ankigen/internal/redact"
	"github.com/phrazzld/ankigen/internal/syllabus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// run wires the components from configuration and executes one pass over
// the syllabus. Errors are logged before being returned.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %s", redact.Error(err))
		return err
	}

	lg, err := logger.Setup(cfg.Log)
	if err != nil {
		log.Printf("Failed to set up logger: %v", err)
		return err
	}

	p, err := initializePipeline(ctx, cfg, lg)
	if err != nil {
		lg.Error("failed to initialize", "error", redact.Error(err))
		return err
	}

	stats, err := p.Run(ctx)
	if err != nil {
		lg.Error("run failed", "error", redact.Error(err), "stats", stats)
		return err
	}

	return nil
}

// initializePipeline builds every dependency of the pipeline from cfg.
func initializePipeline(ctx context.Context, cfg *config.Config, lg *slog.Logger) (*pipeline.Pipeline, error) {
	lg.Info("configuration loaded",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model(),
		"anki_url", cfg.Anki.URL,
		"deck", cfg.Anki.DeckName,
		"ledger_path", cfg.Ledger.Path,
		"submit_delay", cfg.Run.SubmitDelay,
	)

	generator, err := newTextGenerator(ctx, cfg.LLM, lg)
	if err != nil {
		return nil, err
	}

	sink, err := ankiconnect.NewClient(cfg.Anki.URL, &http.Client{Timeout: cfg.Anki.RequestTimeout}, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AnkiConnect client: %w", err)
	}
	if version, err := sink.Version(ctx); err != nil {
		lg.Warn("AnkiConnect is not reachable, submissions will fail until it is", "error", err)
	} else {
		lg.Debug("AnkiConnect reachable", "version", version)
	}

	store, err := ledger.NewFileStore(cfg.Ledger.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger store: %w", err)
	}

	text, err := syllabus.Load(cfg.Run.SyllabusPath)
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{pipeline.WithLogger(lg)}
	if cfg.Anki.RenderMarkdown {
		opts = append(opts, pipeline.WithRenderer(markdown.NewRenderer()))
	}

	return pipeline.New(pipeline.Settings{
		Syllabus:     text,
		DeckName:     cfg.Anki.DeckName,
		CardsPerUnit: cfg.Run.CardsPerUnit,
		SubmitDelay:  cfg.Run.SubmitDelay,
	}, generator, sink, store, opts...)
}

func newTextGenerator(ctx context.Context, cfg config.LLMConfig, lg *slog.Logger) (generation.TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err := gemini.NewGenerator(ctx, lg, cfg)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderOpenAI:
		gen, err := openai.NewGenerator(lg, cfg)
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
