package stats

import (
	"testing"
	"time"

	"tracker/internal/core"
)

func tx(id, cents int64, category string, date time.Time) core.Transaction {
	typ := core.Expense
	if cents > 0 {
		typ = core.Income
	}
	return core.Transaction{
		ID:          id,
		Amount:      core.Money{Cents: cents},
		Description: "tx",
		Category:    category,
		Type:        typ,
		Date:        date,
		Timestamp:   date.UnixMilli(),
	}
}

func TestBalance(t *testing.T) {
	if got := Balance(nil); got.Cents != 0 {
		t.Fatalf("empty ledger: got %d, want 0", got.Cents)
	}

	ref := time.Date(2025, 12, 14, 12, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(1, -4550, "food", ref),
		tx(2, 320000, "other", ref),
	}
	if got := Balance(txs); got.Cents != 315450 {
		t.Fatalf("got %d, want 315450", got.Cents)
	}
}

func TestMonthlyIncomeAndExpenses(t *testing.T) {
	ref := time.Date(2025, 12, 14, 12, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(1, -4550, "food", time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)),
		tx(2, -2500, "transport", time.Date(2025, 11, 30, 8, 0, 0, 0, time.UTC)), // previous month
		tx(3, 320000, "other", time.Date(2025, 12, 13, 9, 0, 0, 0, time.UTC)),
		tx(4, 20000, "other", time.Date(2024, 12, 13, 9, 0, 0, 0, time.UTC)), // same month, other year
	}

	if got := MonthlyIncome(txs, ref); got.Cents != 320000 {
		t.Fatalf("income: got %d, want 320000", got.Cents)
	}
	if got := MonthlyExpenses(txs, ref); got.Cents != 4550 {
		t.Fatalf("expenses: got %d, want 4550", got.Cents)
	}
}

func TestMonthlyExpensesUsesReferenceLocation(t *testing.T) {
	// 23:30 UTC on Jan 31 is already Feb 1 in UTC+2.
	txs := []core.Transaction{
		tx(1, -1000, "food", time.Date(2025, 1, 31, 23, 30, 0, 0, time.UTC)),
	}
	utcPlus2 := time.FixedZone("UTC+2", 2*60*60)

	febRef := time.Date(2025, 2, 15, 12, 0, 0, 0, utcPlus2)
	if got := MonthlyExpenses(txs, febRef); got.Cents != 1000 {
		t.Fatalf("UTC+2 February: got %d, want 1000", got.Cents)
	}

	janRef := time.Date(2025, 1, 15, 12, 0, 0, 0, utcPlus2)
	if got := MonthlyExpenses(txs, janRef); got.Cents != 0 {
		t.Fatalf("UTC+2 January: got %d, want 0", got.Cents)
	}
}

func TestWeeklyTrendLengthInvariant(t *testing.T) {
	ref := time.Date(2025, 12, 14, 12, 0, 0, 0, time.UTC)

	trend := WeeklyTrend(nil, ref)
	if len(trend) != TrendDays {
		t.Fatalf("empty ledger: got %d entries, want %d", len(trend), TrendDays)
	}
	for i, d := range trend {
		if d.Total.Cents != 0 {
			t.Fatalf("entry %d should be zero, got %d", i, d.Total.Cents)
		}
	}

	// A single transaction still produces seven entries.
	txs := []core.Transaction{tx(1, -15000, "food", ref)}
	trend = WeeklyTrend(txs, ref)
	if len(trend) != TrendDays {
		t.Fatalf("got %d entries, want %d", len(trend), TrendDays)
	}
}

func TestWeeklyTrendBuckets(t *testing.T) {
	// Sunday Dec 14 2025; the window covers Mon Dec 8 .. Sun Dec 14.
	ref := time.Date(2025, 12, 14, 18, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(1, -4550, "food", time.Date(2025, 12, 14, 10, 30, 0, 0, time.UTC)),
		tx(2, -2500, "transport", time.Date(2025, 12, 14, 8, 15, 0, 0, time.UTC)),
		tx(3, -1550, "food", time.Date(2025, 12, 12, 16, 45, 0, 0, time.UTC)),
		tx(4, 320000, "other", time.Date(2025, 12, 13, 9, 0, 0, 0, time.UTC)),  // income, ignored
		tx(5, -9999, "food", time.Date(2025, 12, 7, 23, 59, 0, 0, time.UTC)),   // day before the window
		tx(6, -8888, "food", time.Date(2025, 12, 15, 0, 1, 0, 0, time.UTC)),    // day after the window
	}

	trend := WeeklyTrend(txs, ref)
	if trend[0].Label != "Mon" || trend[6].Label != "Sun" {
		t.Fatalf("labels oldest to newest, got %s .. %s", trend[0].Label, trend[6].Label)
	}
	wantTotals := []int64{0, 0, 0, 0, 1550, 0, 7050}
	for i, want := range wantTotals {
		if trend[i].Total.Cents != want {
			t.Fatalf("day %d (%s): got %d, want %d", i, trend[i].Label, trend[i].Total.Cents, want)
		}
	}
}

func TestCategoryTotals(t *testing.T) {
	ref := time.Date(2025, 12, 14, 12, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(1, -4550, "food", ref),
		tx(2, -8999, "shopping", ref),
		tx(3, -1550, "food", ref),
		tx(4, 320000, "other", ref), // income, excluded
	}

	totals := CategoryTotals(txs)
	if len(totals) != 2 {
		t.Fatalf("got %d categories, want 2 (sparse, income excluded)", len(totals))
	}
	// First-encounter order, not magnitude order.
	if totals[0].Key != "food" || totals[0].Total.Cents != 6100 {
		t.Fatalf("food: %+v", totals[0])
	}
	if totals[1].Key != "shopping" || totals[1].Total.Cents != 8999 {
		t.Fatalf("shopping: %+v", totals[1])
	}
	if totals[0].Name != "Food & Dining" || totals[0].Color != "#e07a5f" {
		t.Fatalf("registry metadata missing: %+v", totals[0])
	}

	top, ok := TopCategory(txs)
	if !ok || top.Key != "shopping" {
		t.Fatalf("top category: got %+v ok=%v, want shopping", top, ok)
	}
}

func TestTopCategoryTieAndEmpty(t *testing.T) {
	if _, ok := TopCategory(nil); ok {
		t.Fatalf("no expenses must yield ok=false")
	}

	ref := time.Date(2025, 12, 14, 12, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(1, -5000, "health", ref),
		tx(2, -5000, "food", ref),
	}
	top, ok := TopCategory(txs)
	if !ok || top.Key != "health" {
		t.Fatalf("tie must keep the first-encountered category, got %+v", top)
	}
}
