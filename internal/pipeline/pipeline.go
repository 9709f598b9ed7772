package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/ankigen/internal/domain"
	"github.com/phrazzld/ankigen/internal/generation"
	"github.com/phrazzld/ankigen/internal/ledger"
	"github.com/phrazzld/ankigen/internal/platform/ankiconnect"
	"github.com/phrazzld/ankigen/internal/redact"
	"github.com/phrazzld/ankigen/internal/syllabus"
)

// NoteSink submits a single card. A nil response with a non-nil error
// means no response was obtained.
type NoteSink interface {
	AddCard(ctx context.Context, front, back, deck string) (*ankiconnect.Response, error)
}

// LedgerStore loads and persists the duplicate-suppression ledger.
type LedgerStore interface {
	Load() (*domain.Ledger, error)
	Save(ledger *domain.Ledger) error
}

// FieldRenderer turns generated text into the markup stored in a note field.
type FieldRenderer interface {
	Render(text string) (string, error)
}

// Settings are the per-run values taken from configuration.
type Settings struct {
	// Syllabus is the full syllabus text to split into units.
	Syllabus string

	// DeckName is the target Anki deck.
	DeckName string

	// CardsPerUnit is the number of pairs requested per unit. Zero means
	// generation.DefaultCardsPerUnit.
	CardsPerUnit int

	// SubmitDelay is the pause after every submission attempt.
	SubmitDelay time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithSleeper replaces the delay implementation.
func WithSleeper(sleep Sleeper) Option {
	return func(p *Pipeline) { p.sleep = sleep }
}

// WithRenderer renders both fields before submission. The ledger still
// records the generated text.
func WithRenderer(renderer FieldRenderer) Option {
	return func(p *Pipeline) {
		p.renderer = renderer
		p.rendererSet = true
	}
}

// Pipeline is a single-use flashcard run.
type Pipeline struct {
	settings    Settings
	generator   generation.TextGenerator
	sink        NoteSink
	store       LedgerStore
	renderer    FieldRenderer
	rendererSet bool
	sleep       Sleeper
	logger      *slog.Logger
}

// New validates its dependencies and returns a Pipeline ready to Run.
func New(
	settings Settings,
	generator generation.TextGenerator,
	sink NoteSink,
	store LedgerStore,
	opts ...Option,
) (*Pipeline, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if sink == nil {
		return nil, ErrNilSink
	}
	if store == nil {
		return nil, ErrNilStore
	}
	if settings.DeckName == "" {
		return nil, ErrEmptyDeckName
	}
	if settings.SubmitDelay < 0 {
		return nil, ErrNegativeDelay
	}
	if settings.CardsPerUnit <= 0 {
		settings.CardsPerUnit = generation.DefaultCardsPerUnit
	}

	p := &Pipeline{
		settings:  settings,
		generator: generator,
		sink:      sink,
		store:     store,
		sleep:     ContextSleep,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		return nil, ErrNilLogger
	}
	if p.sleep == nil {
		return nil, ErrNilSleeper
	}
	if p.rendererSet && p.renderer == nil {
		return nil, ErrNilRenderer
	}

	p.logger = p.logger.With("component", "pipeline")
	return p, nil
}

// Succeeded reports whether a note sink response means the card was
// created: the response exists, its result is present and not null, and
// its error is null or absent.
func Succeeded(resp *ankiconnect.Response) bool {
	return resp != nil && resp.HasResult() && !resp.HasError()
}

// Run processes every unit in order. Generation and submission failures
// are logged and skipped. A ledger read or write failure, or cancellation
// of ctx, ends the run with an error; stats reflect the work done so far.
func (p *Pipeline) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats
	log := p.logger.With("run_id", uuid.New().String())

	record, err := p.store.Load()
	if err != nil {
		log.ErrorContext(ctx, "failed to load ledger", "error", err)
		return stats, fmt.Errorf("%w: %w", ErrLedgerLoad, err)
	}
	if record == nil {
		record = domain.NewLedger()
	}

	units := syllabus.Split(p.settings.Syllabus)
	log.InfoContext(ctx, "starting run",
		"units", len(units),
		"ledger_size", record.Len(),
		"deck", p.settings.DeckName,
	)

	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return p.interrupted(ctx, log, stats, err)
		}
		stats.Units++

		if err := p.processUnit(ctx, log, unit, record, &stats); err != nil {
			log.InfoContext(ctx, "run ended early", "stats", stats)
			return stats, err
		}
	}

	log.InfoContext(ctx, "run complete", "stats", stats)
	return stats, nil
}

func (p *Pipeline) processUnit(
	ctx context.Context,
	runLog *slog.Logger,
	unit domain.Unit,
	record *domain.Ledger,
	stats *RunStats,
) error {
	log := runLog.With("unit", unit.Number)
	if !unit.Numbered {
		log.DebugContext(ctx, "unit header has no parsable number, using 0")
	}

	log.InfoContext(ctx, "generating flashcards for unit")

	prompt, err := generation.BuildPrompt(unit, p.settings.CardsPerUnit)
	if err != nil {
		stats.UnitsSkipped++
		log.ErrorContext(ctx, "failed to build prompt, skipping unit", "error", err)
		return nil
	}

	text, err := p.generator.Generate(ctx, prompt)
	if err != nil || text == "" {
		stats.UnitsSkipped++
		log.WarnContext(ctx, "failed to generate flashcards, skipping unit",
			"error", redact.Error(err))
		return nil
	}

	pairs := generation.ParsePairs(text)
	stats.PairsParsed += len(pairs)
	log.DebugContext(ctx, "parsed pairs", "count", len(pairs))

	for _, pair := range pairs {
		if ledger.IsDuplicate(pair.Question, record) {
			stats.DuplicatesSkipped++
			log.InfoContext(ctx, "skipping duplicate", "front", pair.Question)
			continue
		}

		if err := p.submit(ctx, log, unit, pair, record, stats); err != nil {
			return err
		}

		if err := p.sleep(ctx, p.settings.SubmitDelay); err != nil {
			return p.interruptedErr(ctx, log, err)
		}
	}

	return nil
}

// submit sends one pair and records it on success. Only a ledger save
// failure is returned.
func (p *Pipeline) submit(
	ctx context.Context,
	log *slog.Logger,
	unit domain.Unit,
	pair domain.Pair,
	record *domain.Ledger,
	stats *RunStats,
) error {
	front, back := p.renderFields(ctx, log, pair)

	resp, err := p.sink.AddCard(ctx, front, back, p.settings.DeckName)
	if err != nil {
		stats.SubmissionsFailed++
		log.ErrorContext(ctx, "no response from AnkiConnect",
			"front", pair.Question, "error", redact.Error(err))
		return nil
	}

	if !Succeeded(resp) {
		stats.SubmissionsFailed++
		log.ErrorContext(ctx, "failed to add card",
			"front", pair.Question, "anki_error", resp.ErrorMessage(), "response", resp.String())
		return nil
	}

	card, err := domain.NewFlashcard(pair, unit.Number)
	if err == nil {
		err = record.Add(card)
	}
	if err != nil {
		// Anki accepted the note; only the local record is missing.
		stats.CardsAdded++
		log.WarnContext(ctx, "card added but not recorded in ledger",
			"front", pair.Question, "error", err)
		return nil
	}

	if err := p.store.Save(record); err != nil {
		log.ErrorContext(ctx, "failed to save ledger", "error", err)
		return fmt.Errorf("%w: %w", ErrLedgerSave, err)
	}

	stats.CardsAdded++
	noteID, _ := resp.NoteID()
	log.InfoContext(ctx, "added card", "front", pair.Question, "note_id", noteID)
	return nil
}

func (p *Pipeline) renderFields(ctx context.Context, log *slog.Logger, pair domain.Pair) (string, string) {
	if p.renderer == nil {
		return pair.Question, pair.Answer
	}

	front, err := p.renderer.Render(pair.Question)
	if err != nil {
		log.WarnContext(ctx, "failed to render front, sending raw text", "error", err)
		front = pair.Question
	}

	back, err := p.renderer.Render(pair.Answer)
	if err != nil {
		log.WarnContext(ctx, "failed to render back, sending raw text", "error", err)
		back = pair.Answer
	}

	return front, back
}

func (p *Pipeline) interrupted(ctx context.Context, log *slog.Logger, stats RunStats, cause error) (RunStats, error) {
	log.InfoContext(ctx, "run ended early", "stats", stats)
	return stats, p.interruptedErr(ctx, log, cause)
}

func (p *Pipeline) interruptedErr(ctx context.Context, log *slog.Logger, cause error) error {
	log.WarnContext(ctx, "run interrupted", "error", cause)
	return fmt.Errorf("%w: %w", ErrInterrupted, cause)
}
