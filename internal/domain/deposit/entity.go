package deposit

import "time"

// LineItem is a single expense or income entry attached to a daily deposit.
// Stored as JSONB alongside the deposit row.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Deposit is one operator's end-of-shift cash deposit (setoran harian).
type Deposit struct {
	ID           string
	EmployeeName string
	ClockIn      string // HH:MM
	ClockOut     string // HH:MM

	// Totalizer readings of the dispenser, in liters.
	MeterStart  float64
	MeterEnd    float64
	TotalLiters float64

	TotalRevenue float64 // liters sold x price per liter
	QRISAmount   float64 // portion paid through QRIS
	CashDeposit  float64 // revenue minus QRIS, floored at zero

	Expenses      []LineItem
	TotalExpenses float64
	Income        []LineItem
	TotalIncome   float64

	// NetTotal = cash deposit + extra income - expenses.
	NetTotal float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
