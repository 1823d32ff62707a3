package attendance

import (
	"time"

	"github.com/spbu-ops/setoran-backend-go/internal/domain/shift"
)

type Attendance struct {
	ID           string
	EmployeeName string
	// Date is the business date of the record. The station's day resets at
	// 03:00, so a night-shift checkout at 01:30 still belongs to the
	// previous calendar date.
	Date            time.Time
	Shift           shift.Kind
	ClockIn         string  // HH:MM
	ClockOut        *string // HH:MM, nil while the operator is still on shift
	LateMinutes     int
	OvertimeMinutes *int // nil until clock-out
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
