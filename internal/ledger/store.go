// Package ledger owns the authoritative ordered transaction collection and
// mediates every mutation and persistence round-trip. Consumers recompute
// derived figures from All() on demand; the store keeps no caches.
package ledger

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tracker/internal/core"
)

// Slot is the durable key-value slot holding the serialized collection.
// found is false when the slot has never been written.
type Slot interface {
	Load(ctx context.Context) (txs []core.Transaction, found bool, err error)
	Save(ctx context.Context, txs []core.Transaction) error
}

// Store holds the ledger, newest first. All mutations run under one mutex so
// the read-modify-persist sequence stays atomic when the store is shared
// across request goroutines.
type Store struct {
	mu     sync.Mutex
	slot   Slot
	txs    []core.Transaction
	lastID int64
	now    func() time.Time
}

// NewStore creates a store backed by slot. A nil clock defaults to time.Now.
func NewStore(slot Slot, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{slot: slot, now: now}
}

// Load reads the slot into memory. A missing slot seeds the demonstration
// dataset; an unreadable one logs a warning and seeds the same dataset so a
// corrupt slot never takes the session down.
func (s *Store) Load(ctx context.Context) error {
	txs, found, err := s.slot.Load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Ledger slot unreadable, falling back to demo dataset", "error", err)
		txs = seedTransactions()
	} else if !found {
		txs = seedTransactions()
		slog.InfoContext(ctx, "Ledger slot empty, seeding demo dataset", "count", len(txs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = txs
	s.lastID = 0
	for _, t := range txs {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return nil
}

// Add validates the input, sign-corrects the amount by type, assigns a fresh
// wall-clock id, inserts at the front and persists. amount is a positive
// magnitude regardless of type.
func (s *Store) Add(ctx context.Context, amount core.Money, description, category string, typ core.TransactionType) (core.Transaction, error) {
	if amount.Cents <= 0 {
		return core.Transaction{}, core.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	signed := amount
	if typ == core.Expense {
		signed = core.Money{Cents: -amount.Cents}
	}
	tx := core.Transaction{
		ID:          s.nextID(now),
		Amount:      signed,
		Description: strings.TrimSpace(description),
		Category:    category,
		Type:        typ,
		Date:        now,
		Timestamp:   now.UnixMilli(),
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.txs = append([]core.Transaction{tx}, s.txs...)
	s.persist(ctx)

	slog.InfoContext(ctx, "Transaction added",
		"id", tx.ID,
		"amount_cents", tx.Amount.Cents,
		"category", tx.Category,
		"type", string(tx.Type))
	return tx, nil
}

// Delete removes the transaction with the given id and persists. An absent
// id is a no-op, not an error.
func (s *Store) Delete(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.txs {
		if t.ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			s.persist(ctx)
			slog.InfoContext(ctx, "Transaction deleted", "id", id)
			return true
		}
	}
	return false
}

// All returns a copy of the collection, newest first.
func (s *Store) All() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// FilteredBy returns the subsequence matching filter ("all", "expense" or
// "income"), preserving order. An unknown filter returns the full collection.
func (s *Store) FilteredBy(filter string) []core.Transaction {
	if filter != string(core.Expense) && filter != string(core.Income) {
		return s.All()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Transaction
	for _, t := range s.txs {
		if string(t.Type) == filter {
			out = append(out, t)
		}
	}
	return out
}

// nextID derives an id from the wall clock, bumped past the previous id so
// two adds within the same millisecond stay unique. Callers hold the mutex.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist writes the collection after a mutation. A save failure is logged
// but not returned: in-memory state stays authoritative for the session.
// Callers hold the mutex.
func (s *Store) persist(ctx context.Context) {
	if err := s.slot.Save(ctx, s.txs); err != nil {
		slog.WarnContext(ctx, "Ledger save failed, in-memory state remains authoritative",
			"error", err, "count", len(s.txs))
	}
}
