package mocks

import (
	"sync"

	"github.com/phrazzld/ankigen/internal/domain"
)

// MockLedgerStore implements pipeline.LedgerStore in memory. Saved ledgers
// are snapshotted so tests can inspect the state after each save.
type MockLedgerStore struct {
	LoadFn func() (*domain.Ledger, error)
	SaveFn func(ledger *domain.Ledger) error

	// Initial is returned by Load when LoadFn is nil. A nil Initial loads
	// as an empty ledger.
	Initial *domain.Ledger

	mu        sync.Mutex
	snapshots []domain.Ledger
}

// Load implements pipeline.LedgerStore
func (m *MockLedgerStore) Load() (*domain.Ledger, error) {
	if m.LoadFn != nil {
		return m.LoadFn()
	}
	if m.Initial == nil {
		return domain.NewLedger(), nil
	}
	return m.Initial, nil
}

// Save implements pipeline.LedgerStore
func (m *MockLedgerStore) Save(ledger *domain.Ledger) error {
	m.mu.Lock()
	snap := domain.Ledger{Flashcards: append([]domain.Flashcard(nil), ledger.Flashcards...)}
	m.snapshots = append(m.snapshots, snap)
	m.mu.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(ledger)
	}
	return nil
}

// SaveCount returns how many times Save was called
func (m *MockLedgerStore) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snapshots)
}

// Last returns the most recently saved ledger, or nil if Save was never
// called
func (m *MockLedgerStore) Last() *domain.Ledger {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.snapshots) == 0 {
		return nil
	}
	last := m.snapshots[len(m.snapshots)-1]
	return &last
}
