package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetOpenByEmployee returns the most recent attendance without a
	// checkout. Looked up by name rather than business date because a night
	// shift clocks out on the following business day.
	GetOpenByEmployee(ctx context.Context, employeeName string) (Attendance, error)
	ExistsByEmployeeAndDate(ctx context.Context, employeeName string, date time.Time) (bool, error)
	SetClockOut(ctx context.Context, id string, clockOut string, overtimeMinutes int) (Attendance, error)
	List(ctx context.Context, req ListRequest) ([]Attendance, int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Attendance, error)
	Delete(ctx context.Context, id string) error
}
