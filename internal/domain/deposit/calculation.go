package deposit

import "strings"

// PricePerLiter is the pump price in Rupiah used to value the meter delta.
const PricePerLiter = 11500

// Calculation holds every derived figure of a deposit.
type Calculation struct {
	TotalLiters   float64 `json:"total_liter"`
	TotalRevenue  float64 `json:"total_setoran"`
	CashDeposit   float64 `json:"cash_setoran"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalIncome   float64 `json:"total_income"`
	NetTotal      float64 `json:"total_keseluruhan"`
}

// Calculate derives all deposit figures from the raw inputs. Items with a
// blank description or a non-positive amount are skipped, not rejected;
// rejecting them is the DTO validation's job.
func Calculate(meterStart, meterEnd, qrisAmount float64, expenses, income []LineItem) Calculation {
	liters := meterEnd - meterStart
	if liters < 0 {
		liters = 0
	}

	revenue := liters * PricePerLiter
	cash := revenue - qrisAmount
	if cash < 0 {
		cash = 0
	}

	var totalExpenses, totalIncome float64
	for _, item := range expenses {
		if strings.TrimSpace(item.Description) != "" && item.Amount > 0 {
			totalExpenses += item.Amount
		}
	}
	for _, item := range income {
		if strings.TrimSpace(item.Description) != "" && item.Amount > 0 {
			totalIncome += item.Amount
		}
	}

	return Calculation{
		TotalLiters:   liters,
		TotalRevenue:  revenue,
		CashDeposit:   cash,
		TotalExpenses: totalExpenses,
		TotalIncome:   totalIncome,
		NetTotal:      cash + totalIncome - totalExpenses,
	}
}
