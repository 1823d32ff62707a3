package response

import (
	"errors"
	"net/http"

	"github.com/spbu-ops/setoran-backend-go/internal/domain/attendance"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/auth"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/deposit"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/report"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/shift"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/user"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this business day")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open attendance to clock out from")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, shift.ErrInvalidTimeOfDay):
		BadRequest(w, err.Error(), nil)

	// Deposit domain errors
	case errors.Is(err, deposit.ErrDepositNotFound):
		NotFound(w, "Deposit not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
