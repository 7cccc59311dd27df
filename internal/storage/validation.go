// Package storage provides the data persistence layer for the budgeto application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adnanceeyy/budgeto/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidDebt        = errors.New("invalid debt")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrInvalidStatus      = errors.New("invalid debt status")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateCategory(cat *model.Category) error {
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if cat.Budget < 0 {
		return fmt.Errorf("%w: budget cannot be negative", ErrInvalidCategory)
	}
	return nil
}

func validateTransaction(txn *model.Transaction) error {
	switch txn.Type {
	case model.TypeIncome, model.TypeExpense:
	default:
		return fmt.Errorf("%w: type %q", ErrInvalidTransaction, txn.Type)
	}
	if txn.Amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidTransaction)
	}
	if txn.Date == "" {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if _, err := time.Parse(time.RFC3339, txn.Date); err != nil {
		return fmt.Errorf("%w: date %q is not RFC 3339", ErrInvalidTransaction, txn.Date)
	}
	return nil
}

func validateDebt(debt *model.Debt) error {
	if strings.TrimSpace(debt.Person) == "" {
		return fmt.Errorf("%w: missing person", ErrInvalidDebt)
	}
	switch debt.Type {
	case model.DebtOwedToMe, model.DebtIOwe:
	default:
		return fmt.Errorf("%w: type %q", ErrInvalidDebt, debt.Type)
	}
	if debt.Amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidDebt)
	}
	return nil
}

func validateDebtStatus(status model.DebtStatus) error {
	switch status {
	case model.DebtPending, model.DebtSettled:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
}

func validateAccount(account *model.Account) error {
	if strings.TrimSpace(account.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidAccount)
	}
	return nil
}
