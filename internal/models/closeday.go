package models

import "time"

// ReasonReturnedInvoice marks an expense created by a product return.
// Its profit is reported separately in the close-day rollup.
const ReasonReturnedInvoice = "فاتورة مرتجع"

// Expense represents a shop expense (masrofat) record.
type Expense struct {
	ID      string  `json:"id,omitempty"`
	Shop    string  `json:"shop"`
	Date    string  `json:"date"` // Date день расхода в формате DD/MM/YYYY
	Reason  string  `json:"reason"`
	Profit  float64 `json:"profit,omitempty"` // Profit возвращённая прибыль (только для возвратов)
	Amount  float64 `json:"masrof"`
	Offline bool    `json:"isOffline,omitempty"` // Offline расход ещё не подтверждён удалённо
}

// DailyProfit is the aggregate written when a shop day is closed.
type DailyProfit struct {
	CreatedAt      time.Time `json:"createdAt"`
	Shop           string    `json:"shop"`
	Date           string    `json:"date"`
	ClosedBy       string    `json:"closedBy"`
	TotalSales     float64   `json:"totalSales"`
	TotalExpenses  float64   `json:"totalMasrofat"`
	ReturnedProfit float64   `json:"returnedProfit"`
}

// CloseDayReport is the full close-day history record: the day's
// invoices and expenses together with the computed totals.
type CloseDayReport struct {
	ClosedAtTime   time.Time `json:"closedAtTimestamp"`
	Shop           string    `json:"shop"`
	ClosedBy       string    `json:"closedBy"`
	ClosedAt       string    `json:"closedAt"` // ClosedAt день закрытия в формате DD/MM/YYYY
	Sales          []Invoice `json:"sales"`
	Expenses       []Expense `json:"masrofat"`
	TotalSales     float64   `json:"totalSales"`
	TotalExpenses  float64   `json:"totalMasrofat"`
	ReturnedProfit float64   `json:"returnedProfit"`
}
