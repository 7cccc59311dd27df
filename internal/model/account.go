package model

// Account represents a money account (cash, bank, card).
type Account struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	Icon     string `json:"icon"`

	Balance float64 `json:"balance"`
	ID      int64   `json:"id"`

	// IncludeInTotal controls whether the account counts toward the
	// combined balance shown by the app.
	IncludeInTotal bool `json:"include_in_total"`
}
