package attendance

import (
	"github.com/spbu-ops/setoran-backend-go/internal/domain/shift"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	EmployeeName string `json:"employee_name"`
	ClockIn      string `json:"clock_in"`
	// Shift is optional; when empty the shift is derived from the clock-in
	// time.
	Shift string `json:"shift"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	} else if len(r.EmployeeName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in is required",
		})
	} else if !validator.IsValidClockTime(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be in HH:MM 24-hour format",
		})
	}

	if r.Shift != "" && !shift.Kind(r.Shift).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of morning, afternoon, night",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeName string `json:"employee_name"`
	ClockOut     string `json:"clock_out"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if validator.IsEmpty(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out is required",
		})
	} else if !validator.IsValidClockTime(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be in HH:MM 24-hour format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRequest struct {
	EmployeeName string
	Month        string // YYYY-MM, optional
	Page         int
	Limit        int
}

func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

type AttendanceResponse struct {
	ID              string  `json:"id"`
	EmployeeName    string  `json:"employee_name"`
	Date            string  `json:"date"`
	Shift           string  `json:"shift"`
	ClockIn         string  `json:"clock_in"`
	ClockOut        *string `json:"clock_out"`
	LateMinutes     int     `json:"late_minutes"`
	OvertimeMinutes *int    `json:"overtime_minutes"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:              a.ID,
		EmployeeName:    a.EmployeeName,
		Date:            a.Date.Format("2006-01-02"),
		Shift:           string(a.Shift),
		ClockIn:         a.ClockIn,
		ClockOut:        a.ClockOut,
		LateMinutes:     a.LateMinutes,
		OvertimeMinutes: a.OvertimeMinutes,
		CreatedAt:       a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
