package ledger

import (
	"time"

	"tracker/internal/core"
)

// seedTransactions returns the demonstration dataset used when the slot has
// never been written or cannot be read. Values are fixed so a fresh install
// shows a populated dashboard.
func seedTransactions() []core.Transaction {
	return []core.Transaction{
		seed(1, -4550, "Grocery Store", "food", core.Expense, "2025-12-14T10:30:00Z", 1734181800000),
		seed(2, -2500, "Gas Station", "transport", core.Expense, "2025-12-14T08:15:00Z", 1734173700000),
		seed(3, 320000, "Salary", "other", core.Income, "2025-12-13T09:00:00Z", 1734086400000),
		seed(4, -8999, "Online Shopping", "shopping", core.Expense, "2025-12-13T14:20:00Z", 1734104400000),
		seed(5, -1550, "Coffee Shop", "food", core.Expense, "2025-12-12T16:45:00Z", 1734021900000),
		seed(6, -12000, "Electric Bill", "utilities", core.Expense, "2025-12-12T11:00:00Z", 1734009600000),
		seed(7, -3500, "Movie Theater", "entertainment", core.Expense, "2025-12-11T19:30:00Z", 1733940600000),
		seed(8, 20000, "Freelance Payment", "other", core.Income, "2025-12-11T15:00:00Z", 1733929200000),
		seed(9, -6780, "Restaurant", "food", core.Expense, "2025-12-10T20:15:00Z", 1733854500000),
		seed(10, -4230, "Pharmacy", "health", core.Expense, "2025-12-10T13:30:00Z", 1733837400000),
	}
}

func seed(id, cents int64, description, category string, typ core.TransactionType, date string, timestamp int64) core.Transaction {
	d, err := time.Parse(time.RFC3339, date)
	if err != nil {
		panic("ledger: bad seed date " + date)
	}
	return core.Transaction{
		ID:          id,
		Amount:      core.Money{Cents: cents},
		Description: description,
		Category:    category,
		Type:        typ,
		Date:        d,
		Timestamp:   timestamp,
	}
}
