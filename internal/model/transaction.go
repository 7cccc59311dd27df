package model

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	// TypeIncome represents money received.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money spent.
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded income or expense.
//
// Date is an RFC 3339 timestamp stored as a string; listings are ordered by
// it lexicographically, which is chronologically correct as long as all
// timestamps share the same offset convention.
type Transaction struct {
	Type   TransactionType `json:"type"`
	Note   string          `json:"note,omitempty"`
	Date   string          `json:"date"`
	Amount float64         `json:"amount"`
	ID     int64           `json:"id"`

	// CategoryID references a Category. It may point at a category that no
	// longer exists if the category was removed through a path that did not
	// cascade.
	CategoryID int64 `json:"category_id"`

	// CategoryName and CategoryColor are joined from the category set at
	// query time and are never persisted. They are nil when the referenced
	// category does not exist.
	CategoryName  *string `json:"category_name,omitempty"`
	CategoryColor *string `json:"category_color,omitempty"`
}
