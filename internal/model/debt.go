package model

// DebtType indicates which direction an informal debt runs.
type DebtType string

const (
	// DebtOwedToMe means the counterparty owes the user.
	DebtOwedToMe DebtType = "owed_to_me"
	// DebtIOwe means the user owes the counterparty.
	DebtIOwe DebtType = "i_owe"
)

// DebtStatus tracks whether a debt has been settled.
type DebtStatus string

const (
	// DebtPending is the status every debt is created with.
	DebtPending DebtStatus = "pending"
	// DebtSettled marks a debt as paid off.
	DebtSettled DebtStatus = "settled"
)

// Debt represents an informal debt with a named counterparty.
type Debt struct {
	Person string     `json:"person"`
	Type   DebtType   `json:"type"`
	Note   string     `json:"note,omitempty"`
	Date   string     `json:"date"`
	Status DebtStatus `json:"status"`
	Amount float64    `json:"amount"`
	ID     int64      `json:"id"`
}
