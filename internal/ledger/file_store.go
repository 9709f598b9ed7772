package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/phrazzld/ankigen/internal/domain"
)

// FileStore loads and saves a domain.Ledger as an indented JSON file.
//
// Keys in the file that the domain model does not use, at the top level or
// inside a card, are remembered by Load and written back by Save.
type FileStore struct {
	path    string
	unknown unknownFields
}

// NewFileStore creates a store backed by the file at path. The file does
// not need to exist yet.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	return &FileStore{path: path}, nil
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the ledger file. A missing file yields an empty ledger; a file
// that is not valid JSON yields an error wrapping ErrCorruptLedger.
func (s *FileStore) Load() (*domain.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger %s: %w", s.path, err)
	}

	var ledger domain.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptLedger, s.path, err)
	}

	if ledger.Flashcards == nil {
		ledger.Flashcards = []domain.Flashcard{}
	}

	unknown, err := collectUnknown(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptLedger, s.path, err)
	}
	s.unknown = unknown

	return &ledger, nil
}

// Save overwrites the ledger file with the full contents of ledger,
// indented with two spaces. Missing parent directories are created.
func (s *FileStore) Save(ledger *domain.Ledger) error {
	if ledger == nil {
		return ErrNilLedger
	}

	var (
		data []byte
		err  error
	)
	if s.unknown.empty() {
		data, err = Marshal(ledger)
	} else {
		data, err = marshalWithUnknown(ledger, s.unknown)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger %s: %w", s.path, err)
	}

	return nil
}

// Marshal renders a ledger exactly as Save writes it. HTML characters are
// left unescaped so that answers such as "a < b" stay readable.
func Marshal(ledger *domain.Ledger) ([]byte, error) {
	out := *ledger
	if out.Flashcards == nil {
		out.Flashcards = []domain.Flashcard{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to marshal ledger: %w", err)
	}

	return buf.Bytes(), nil
}

// IsDuplicate reports whether front is already recorded in ledger.
func IsDuplicate(front string, ledger *domain.Ledger) bool {
	return ledger.Contains(front)
}
