// Package report computes derived views over the persistence gateway for
// the app's report screens.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/adnanceeyy/budgeto/internal/model"
	"github.com/adnanceeyy/budgeto/internal/service"
)

// Uncategorized labels expense totals whose category no longer exists.
const Uncategorized = "Uncategorized"

// CategoryTotal is one category's share of a month's spending.
type CategoryTotal struct {
	Name   string
	Color  string
	Amount float64
}

// MonthlySummary aggregates a single month of transactions.
type MonthlySummary struct {
	Month      string // "2006-01"
	ByCategory []CategoryTotal
	Income     float64
	Expenses   float64
}

// Net returns income minus expenses.
func (s *MonthlySummary) Net() float64 {
	return s.Income - s.Expenses
}

// Monthly builds the summary for the given "YYYY-MM" month from the full
// transaction listing. Expense totals are grouped by the category's current
// name; transactions whose category was deleted are grouped under
// Uncategorized.
func Monthly(ctx context.Context, store service.Store, month string) (*MonthlySummary, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	transactions, err := store.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := &MonthlySummary{Month: month}
	totals := make(map[string]*CategoryTotal)

	// Dates are RFC 3339 strings, so month membership is a prefix check.
	prefix := month + "-"
	for _, txn := range transactions {
		if !strings.HasPrefix(txn.Date, prefix) {
			continue
		}

		switch txn.Type {
		case model.TypeIncome:
			summary.Income += txn.Amount
		case model.TypeExpense:
			summary.Expenses += txn.Amount

			name, color := Uncategorized, ""
			if txn.CategoryName != nil {
				name = *txn.CategoryName
			}
			if txn.CategoryColor != nil {
				color = *txn.CategoryColor
			}
			total, ok := totals[name]
			if !ok {
				total = &CategoryTotal{Name: name, Color: color}
				totals[name] = total
			}
			total.Amount += txn.Amount
		}
	}

	summary.ByCategory = make([]CategoryTotal, 0, len(totals))
	for _, total := range totals {
		summary.ByCategory = append(summary.ByCategory, *total)
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		if summary.ByCategory[i].Amount != summary.ByCategory[j].Amount {
			return summary.ByCategory[i].Amount > summary.ByCategory[j].Amount
		}
		return summary.ByCategory[i].Name < summary.ByCategory[j].Name
	})

	return summary, nil
}
