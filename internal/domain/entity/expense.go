package entity

// Expense gasto del estudio.
type Expense struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"` // "YYYY-MM-DD"
	Item     string  `json:"item"`
	Category string  `json:"category,omitempty"`
	Amount   float64 `json:"amount"`
	Memo     string  `json:"memo,omitempty"`
}
