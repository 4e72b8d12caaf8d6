// Package core holds the ledger's value types: transactions, monetary
// amounts, and the fixed category registry.
//
// Money keeps amounts as signed cents to avoid floating-point drift in
// aggregation. On the wire and in the persisted slot it marshals as a plain
// decimal number (dollars), which is the legacy layout of the ledger.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is a signed amount in cents. Negative means expense, positive income.
type Money struct {
	Cents int64
}

// ParseCents converts a signed decimal string to cents with half-up rounding
// on the third decimal place.
//
// Examples:
//
//	ParseCents("45.50")  -> 4550, nil
//	ParseCents("-45.5")  -> -4550, nil
//	ParseCents("12.346") -> 1235, nil (rounds up)
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// Take first two fractional digits; half-up rounding on the third
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return cents, nil
}

// Dollars returns the dollar value as a float64 for display purposes.
// Use cents for calculations to avoid floating-point precision issues.
func (m Money) Dollars() float64 {
	return float64(m.Cents) / 100.0
}

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// String formats the amount with a currency symbol and two decimals,
// e.g. "$45.50" or "-$45.50".
func (m Money) String() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("$%d.%02d", cents/100, cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// decimal renders the amount as a bare decimal number, e.g. "-45.50".
func (m Money) decimal() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// MarshalJSON emits a JSON number in dollars so the persisted slot keeps the
// legacy decimal layout.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.decimal()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	cents, err := ParseCents(string(data))
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", string(data), err)
	}
	m.Cents = cents
	return nil
}
