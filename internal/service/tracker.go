// Package service exposes the ledger to the presentation layer as one
// facade: mutations go to the store, queries recompute from its current
// contents. No results are cached; the dataset is small and a recompute per
// request is cheap.
package service

import (
	"context"
	"time"

	"tracker/internal/core"
	"tracker/internal/insights"
	"tracker/internal/ledger"
	"tracker/internal/stats"
)

// Tracker wires the store, the aggregation functions and the insight
// generator behind the operations the presentation layer consumes.
type Tracker struct {
	store *ledger.Store
	gen   *insights.Generator
	now   func() time.Time
}

// Summary bundles the dashboard headline figures.
type Summary struct {
	Balance         core.Money `json:"balance"`
	MonthlyIncome   core.Money `json:"monthly_income"`
	MonthlyExpenses core.Money `json:"monthly_expenses"`
}

// NewTracker creates the facade. A nil clock defaults to time.Now; tests
// inject a frozen one.
func NewTracker(store *ledger.Store, gen *insights.Generator, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, gen: gen, now: now}
}

// AddTransaction records a transaction. amount is a positive magnitude; the
// store derives the sign from typ.
func (t *Tracker) AddTransaction(ctx context.Context, amount core.Money, description, category string, typ core.TransactionType) (core.Transaction, error) {
	return t.store.Add(ctx, amount, description, category, typ)
}

// DeleteTransaction removes a transaction by id, reporting whether a removal
// occurred. A missing id is not an error.
func (t *Tracker) DeleteTransaction(ctx context.Context, id int64) bool {
	return t.store.Delete(ctx, id)
}

func (t *Tracker) Transactions() []core.Transaction {
	return t.store.All()
}

func (t *Tracker) FilteredTransactions(filter string) []core.Transaction {
	return t.store.FilteredBy(filter)
}

func (t *Tracker) Balance() core.Money {
	return stats.Balance(t.store.All())
}

func (t *Tracker) MonthlyIncome() core.Money {
	return stats.MonthlyIncome(t.store.All(), t.now())
}

func (t *Tracker) MonthlyExpenses() core.Money {
	return stats.MonthlyExpenses(t.store.All(), t.now())
}

// Summary computes the three headline figures from one snapshot of the
// ledger.
func (t *Tracker) Summary() Summary {
	txs := t.store.All()
	now := t.now()
	return Summary{
		Balance:         stats.Balance(txs),
		MonthlyIncome:   stats.MonthlyIncome(txs, now),
		MonthlyExpenses: stats.MonthlyExpenses(txs, now),
	}
}

func (t *Tracker) WeeklyTrend() []stats.DayTotal {
	return stats.WeeklyTrend(t.store.All(), t.now())
}

func (t *Tracker) CategoryBreakdown() []stats.CategoryTotal {
	return stats.CategoryTotals(t.store.All())
}

func (t *Tracker) Insights() []insights.Insight {
	return t.gen.Generate(t.store.All(), t.now())
}
