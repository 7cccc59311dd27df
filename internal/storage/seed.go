package storage

import (
	"time"

	"github.com/adnanceeyy/budgeto/internal/model"
)

// Demo dataset written by the flat store on first run and after a wipe.
// Identifiers are fixed; timestamps are taken at seed time. The SQLite
// backend never seeds and starts empty.
func seedCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Food", Icon: "utensils", Color: "#F97316", Budget: 400},
		{ID: 2, Name: "Transport", Icon: "bus", Color: "#3B82F6", Budget: 120},
		{ID: 3, Name: "Shopping", Icon: "shopping-bag", Color: "#EC4899", Budget: 250},
		{ID: 4, Name: "Salary", Icon: "wallet", Color: "#22C55E", Budget: 0},
	}
}

func seedTransactions(now time.Time) []model.Transaction {
	date := now.Format(time.RFC3339)
	return []model.Transaction{
		{ID: 101, Type: model.TypeIncome, Amount: 2500, CategoryID: 4, Note: "Monthly salary", Date: date},
		{ID: 102, Type: model.TypeExpense, Amount: 45.90, CategoryID: 1, Note: "Groceries", Date: date},
		{ID: 103, Type: model.TypeExpense, Amount: 12.50, CategoryID: 2, Note: "Bus pass", Date: date},
	}
}

func seedDebts(now time.Time) []model.Debt {
	date := now.Format(time.RFC3339)
	return []model.Debt{
		{ID: 1, Person: "Alex", Amount: 50, Type: model.DebtOwedToMe, Note: "Lunch split", Date: date, Status: model.DebtPending},
		{ID: 2, Person: "Sam", Amount: 1200, Type: model.DebtIOwe, Note: "Laptop loan", Date: date, Status: model.DebtPending},
	}
}
