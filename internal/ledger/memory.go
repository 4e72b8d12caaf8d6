package ledger

import (
	"context"
	"sync"

	"tracker/internal/core"
)

// MemorySlot is an in-memory Slot for tests and for running without a
// database file. SaveErr and LoadErr inject failures.
type MemorySlot struct {
	mu      sync.Mutex
	txs     []core.Transaction
	written bool

	SaveErr error
	LoadErr error
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// NewMemorySlotWith returns a slot pre-populated as if txs had been saved.
func NewMemorySlotWith(txs []core.Transaction) *MemorySlot {
	s := &MemorySlot{written: true}
	s.txs = append(s.txs, txs...)
	return s
}

func (s *MemorySlot) Load(_ context.Context) ([]core.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, false, s.LoadErr
	}
	if !s.written {
		return nil, false, nil
	}
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out, true, nil
}

func (s *MemorySlot) Save(_ context.Context, txs []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.txs = append(s.txs[:0], txs...)
	s.written = true
	return nil
}

// Saved returns the last saved collection.
func (s *MemorySlot) Saved() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}
