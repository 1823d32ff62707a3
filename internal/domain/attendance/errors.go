package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("already clocked in for this business day")
	ErrNotClockedIn       = errors.New("no open attendance to clock out from")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
