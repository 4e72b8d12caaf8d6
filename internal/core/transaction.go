package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

type (
	TransactionType string

	// Transaction is the sole persisted entity of the ledger. It is created
	// once via Store.Add and never mutated afterwards; the ID is the delete key.
	Transaction struct {
		ID          int64           `json:"id"`
		Amount      Money           `json:"amount"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
		Type        TransactionType `json:"type"`
		Date        time.Time       `json:"date"`
		Timestamp   int64           `json:"timestamp"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrAmountSign       = errors.New("amount sign does not match transaction type")
)

func (tt TransactionType) Valid() bool {
	return tt == Expense || tt == Income
}

// IsExpense reports whether the transaction carries a negative amount.
func (t Transaction) IsExpense() bool {
	return t.Amount.Cents < 0
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if _, ok := CategoryByKey(t.Category); !ok {
		return ErrUnknownCategory
	}
	if t.Amount.Cents == 0 {
		return ErrInvalidAmount
	}
	// Sign invariant: expense <=> negative, income <=> positive.
	if t.Type == Expense && t.Amount.Cents > 0 {
		return ErrAmountSign
	}
	if t.Type == Income && t.Amount.Cents < 0 {
		return ErrAmountSign
	}
	return nil
}
