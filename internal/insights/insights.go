// Package insights turns aggregate figures into short textual observations
// about spending behavior.
package insights

import (
	"fmt"
	"time"

	"tracker/internal/core"
	"tracker/internal/stats"
)

// DefaultBaseline is the monthly income figure used by the savings-rate rule
// when none is configured. It is a fixed placeholder, not derived from the
// recorded income; the original tracker behaves the same way.
var DefaultBaseline = core.Money{Cents: 520000}

// Insight is one heuristic observation, ready for display.
type Insight struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Generator evaluates a fixed sequence of independent rules against the
// ledger for a given reference instant. Each rule contributes zero or one
// insight; the output order follows the rule order.
type Generator struct {
	baseline core.Money
}

// NewGenerator returns a generator using baseline as the monthly income for
// the savings-rate rule. A zero baseline falls back to DefaultBaseline.
func NewGenerator(baseline core.Money) *Generator {
	if baseline.Cents <= 0 {
		baseline = DefaultBaseline
	}
	return &Generator{baseline: baseline}
}

// Generate runs the rules in order: savings rate, top category, high daily
// spending.
func (g *Generator) Generate(txs []core.Transaction, ref time.Time) []Insight {
	var out []Insight

	if in, ok := g.savingsRate(txs, ref); ok {
		out = append(out, in)
	}
	if in, ok := topCategory(txs); ok {
		out = append(out, in)
	}
	if in, ok := highDailySpending(txs, ref); ok {
		out = append(out, in)
	}
	return out
}

// savingsRate compares this month's expenses against the income baseline.
// Rates in the band [10, 20] emit nothing; the two branches are deliberately
// not exhaustive, matching the original behavior.
func (g *Generator) savingsRate(txs []core.Transaction, ref time.Time) (Insight, bool) {
	expenses := stats.MonthlyExpenses(txs, ref)
	rate := (g.baseline.Dollars() - expenses.Dollars()) / g.baseline.Dollars() * 100

	switch {
	case rate > 20:
		return Insight{
			Icon:        "💰",
			Title:       "Great Savings!",
			Description: fmt.Sprintf("You're saving %.1f%% of your income this month.", rate),
		}, true
	case rate < 10:
		return Insight{
			Icon:        "⚠️",
			Title:       "Low Savings",
			Description: fmt.Sprintf("Consider reducing expenses to increase your %.1f%% savings rate.", rate),
		}, true
	}
	return Insight{}, false
}

func topCategory(txs []core.Transaction) (Insight, bool) {
	top, ok := stats.TopCategory(txs)
	if !ok || top.Total.Cents <= 0 {
		return Insight{}, false
	}
	return Insight{
		Icon:        "📊",
		Title:       "Top Spending Category",
		Description: fmt.Sprintf("%s accounts for %s of your expenses.", top.Name, top.Total),
	}, true
}

// highDailySpending flags today when its total exceeds 1.5x the 7-day mean.
func highDailySpending(txs []core.Transaction, ref time.Time) (Insight, bool) {
	trend := stats.WeeklyTrend(txs, ref)
	var sum int64
	for _, d := range trend {
		sum += d.Total.Cents
	}
	avg := float64(sum) / float64(len(trend))
	today := trend[len(trend)-1].Total

	if float64(today.Cents) <= avg*1.5 {
		return Insight{}, false
	}
	return Insight{
		Icon:        "📈",
		Title:       "High Daily Spending",
		Description: fmt.Sprintf("Today's spending (%s) is above your daily average.", today),
	}, true
}
