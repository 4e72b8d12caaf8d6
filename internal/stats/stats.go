// Package stats derives summary figures from the ledger's current contents.
// Every function re-scans the slice it is given; nothing is cached. The
// dataset is a single user's transactions, so a full scan per query is cheap
// and keeps correctness trivial.
//
// Calendar comparisons use the reference instant's location, midnight to
// midnight, never a rolling 24-hour window.
package stats

import (
	"time"

	"tracker/internal/core"
)

// TrendDays is the length of the trailing spending window.
const TrendDays = 7

type (
	// DayTotal is one day of the trailing spending window.
	DayTotal struct {
		Label string     `json:"label"`
		Total core.Money `json:"total"`
	}

	// CategoryTotal is the absolute expense sum for one category.
	CategoryTotal struct {
		Key   string     `json:"key"`
		Name  string     `json:"name"`
		Total core.Money `json:"total"`
		Color string     `json:"color"`
	}
)

// Balance sums every amount. An empty ledger yields zero.
func Balance(txs []core.Transaction) core.Money {
	var total int64
	for _, t := range txs {
		total += t.Amount.Cents
	}
	return core.Money{Cents: total}
}

// MonthlyIncome sums positive amounts whose calendar month and year match
// the reference instant in its location.
func MonthlyIncome(txs []core.Transaction, ref time.Time) core.Money {
	var total int64
	for _, t := range txs {
		if t.Amount.Cents > 0 && sameMonth(t.Date, ref) {
			total += t.Amount.Cents
		}
	}
	return core.Money{Cents: total}
}

// MonthlyExpenses is the absolute sum of negative amounts in the reference
// instant's calendar month.
func MonthlyExpenses(txs []core.Transaction, ref time.Time) core.Money {
	var total int64
	for _, t := range txs {
		if t.Amount.Cents < 0 && sameMonth(t.Date, ref) {
			total += -t.Amount.Cents
		}
	}
	return core.Money{Cents: total}
}

// WeeklyTrend returns exactly TrendDays entries, oldest to newest, one per
// calendar day from ref-6d through ref inclusive. Each total is the sum of
// absolute expense amounts on that day; days without expenses contribute a
// zero entry, never an omitted one.
func WeeklyTrend(txs []core.Transaction, ref time.Time) []DayTotal {
	days := make([]DayTotal, 0, TrendDays)
	for i := TrendDays - 1; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		var total int64
		for _, t := range txs {
			if t.Amount.Cents < 0 && sameDay(t.Date, day) {
				total += -t.Amount.Cents
			}
		}
		days = append(days, DayTotal{Label: day.Format("Mon"), Total: core.Money{Cents: total}})
	}
	return days
}

// CategoryTotals returns the absolute expense sum per category, ordered by
// first encounter while scanning the ledger. Categories without expense
// transactions are omitted.
func CategoryTotals(txs []core.Transaction) []CategoryTotal {
	var out []CategoryTotal
	index := make(map[string]int)
	for _, t := range txs {
		if t.Amount.Cents >= 0 {
			continue
		}
		i, seen := index[t.Category]
		if !seen {
			cat, ok := core.CategoryByKey(t.Category)
			if !ok {
				// Persisted data predating the registry invariant; skip it
				// rather than fabricate display metadata.
				continue
			}
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryTotal{Key: t.Category, Name: cat.Name, Color: cat.Color})
		}
		out[i].Total.Cents += -t.Amount.Cents
	}
	return out
}

// TopCategory returns the category with the largest expense total. Ties keep
// the first-encountered category. ok is false when there are no expenses.
func TopCategory(txs []core.Transaction) (CategoryTotal, bool) {
	totals := CategoryTotals(txs)
	if len(totals) == 0 {
		return CategoryTotal{}, false
	}
	top := totals[0]
	for _, ct := range totals[1:] {
		if ct.Total.Cents > top.Total.Cents {
			top = ct
		}
	}
	return top, true
}

func sameMonth(t, ref time.Time) bool {
	t = t.In(ref.Location())
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

func sameDay(t, ref time.Time) bool {
	t = t.In(ref.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
