package deposit

import (
	"fmt"

	"github.com/spbu-ops/setoran-backend-go/internal/pkg/validator"
)

// ========================================
// DEPOSIT DTOs
// ========================================

type CreateRequest struct {
	EmployeeName string     `json:"employee_name"`
	ClockIn      string     `json:"jam_masuk"`
	ClockOut     string     `json:"jam_keluar"`
	MeterStart   float64    `json:"nomor_awal"`
	MeterEnd     float64    `json:"nomor_akhir"`
	QRISAmount   float64    `json:"qris_setoran"`
	Expenses     []LineItem `json:"expenses"`
	Income       []LineItem `json:"income"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if !validator.IsValidClockTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "jam_masuk",
			Message: "jam_masuk must be in HH:MM 24-hour format",
		})
	}
	if !validator.IsValidClockTime(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "jam_keluar",
			Message: "jam_keluar must be in HH:MM 24-hour format",
		})
	}

	if r.MeterStart < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "nomor_awal",
			Message: "nomor_awal must not be negative",
		})
	}
	if r.MeterEnd < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "nomor_akhir",
			Message: "nomor_akhir must not be negative",
		})
	} else if r.MeterEnd < r.MeterStart {
		errs = append(errs, validator.ValidationError{
			Field:   "nomor_akhir",
			Message: "nomor_akhir must be greater than or equal to nomor_awal",
		})
	}

	if r.QRISAmount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "qris_setoran",
			Message: "qris_setoran must not be negative",
		})
	}

	errs = append(errs, validateItems("expenses", r.Expenses)...)
	errs = append(errs, validateItems("income", r.Income)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateItems(field string, items []LineItem) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, item := range items {
		if validator.IsEmpty(item.Description) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("%s[%d].description", field, i),
				Message: "description is required",
			})
		}
		if item.Amount < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("%s[%d].amount", field, i),
				Message: "amount must not be negative",
			})
		}
	}
	return errs
}

// UpdateRequest carries only the fields present in the request body; nil
// means "keep the stored value". When any calculation input changes the
// derived figures are recomputed.
type UpdateRequest struct {
	EmployeeName *string     `json:"employee_name"`
	ClockIn      *string     `json:"jam_masuk"`
	ClockOut     *string     `json:"jam_keluar"`
	MeterStart   *float64    `json:"nomor_awal"`
	MeterEnd     *float64    `json:"nomor_akhir"`
	QRISAmount   *float64    `json:"qris_setoran"`
	Expenses     *[]LineItem `json:"expenses"`
	Income       *[]LineItem `json:"income"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeName != nil && validator.IsEmpty(*r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name must not be empty",
		})
	}
	if r.ClockIn != nil && !validator.IsValidClockTime(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "jam_masuk",
			Message: "jam_masuk must be in HH:MM 24-hour format",
		})
	}
	if r.ClockOut != nil && !validator.IsValidClockTime(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "jam_keluar",
			Message: "jam_keluar must be in HH:MM 24-hour format",
		})
	}
	if r.MeterStart != nil && *r.MeterStart < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "nomor_awal",
			Message: "nomor_awal must not be negative",
		})
	}
	if r.MeterEnd != nil && *r.MeterEnd < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "nomor_akhir",
			Message: "nomor_akhir must not be negative",
		})
	}
	if r.QRISAmount != nil && *r.QRISAmount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "qris_setoran",
			Message: "qris_setoran must not be negative",
		})
	}
	if r.Expenses != nil {
		errs = append(errs, validateItems("expenses", *r.Expenses)...)
	}
	if r.Income != nil {
		errs = append(errs, validateItems("income", *r.Income)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Recalculates reports whether the update touches any calculation input.
func (r *UpdateRequest) Recalculates() bool {
	return r.MeterStart != nil || r.MeterEnd != nil || r.QRISAmount != nil ||
		r.Expenses != nil || r.Income != nil
}

type ListRequest struct {
	Page  int
	Limit int
}

func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

type DepositResponse struct {
	ID           string     `json:"id"`
	EmployeeName string     `json:"employee_name"`
	ClockIn      string     `json:"jam_masuk"`
	ClockOut     string     `json:"jam_keluar"`
	MeterStart   float64    `json:"nomor_awal"`
	MeterEnd     float64    `json:"nomor_akhir"`
	TotalLiters  float64    `json:"total_liter"`
	TotalRevenue float64    `json:"total_setoran"`
	QRISAmount   float64    `json:"qris_setoran"`
	CashDeposit  float64    `json:"cash_setoran"`
	Expenses     []LineItem `json:"expenses"`
	TotalExpense float64    `json:"total_expenses"`
	Income       []LineItem `json:"income"`
	TotalIncome  float64    `json:"total_income"`
	NetTotal     float64    `json:"total_keseluruhan"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

func ToResponse(d Deposit) DepositResponse {
	expenses := d.Expenses
	if expenses == nil {
		expenses = []LineItem{}
	}
	income := d.Income
	if income == nil {
		income = []LineItem{}
	}

	return DepositResponse{
		ID:           d.ID,
		EmployeeName: d.EmployeeName,
		ClockIn:      d.ClockIn,
		ClockOut:     d.ClockOut,
		MeterStart:   d.MeterStart,
		MeterEnd:     d.MeterEnd,
		TotalLiters:  d.TotalLiters,
		TotalRevenue: d.TotalRevenue,
		QRISAmount:   d.QRISAmount,
		CashDeposit:  d.CashDeposit,
		Expenses:     expenses,
		TotalExpense: d.TotalExpenses,
		Income:       income,
		TotalIncome:  d.TotalIncome,
		NetTotal:     d.NetTotal,
		CreatedAt:    d.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    d.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
