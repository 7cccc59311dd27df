package model

// Category groups transactions for reporting and display.
type Category struct {
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
	Budget float64 `json:"budget"`
	ID     int64   `json:"id"`
}
