package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/attendance"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/shift"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/database"
	"github.com/spbu-ops/setoran-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	loc    *time.Location
	now    func() time.Time
	withTx func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		loc:                  loc,
		now:                  time.Now,
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockIn, err := shift.ParseTimeOfDay(req.ClockIn)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	kind := shift.Kind(req.Shift)
	if req.Shift == "" {
		kind = shift.Detect(clockIn)
	}

	date := shift.BusinessDate(a.now().In(a.loc))

	// The exists-check and the insert have to see the same state, so both
	// run inside one transaction.
	var created attendance.Attendance
	err = a.withTx(ctx, func(txCtx context.Context) error {
		exists, err := a.AttendanceRepository.ExistsByEmployeeAndDate(txCtx, req.EmployeeName, date)
		if err != nil {
			return fmt.Errorf("failed to check existing attendance: %w", err)
		}
		if exists {
			return attendance.ErrAlreadyClockedIn
		}

		created, err = a.AttendanceRepository.Create(txCtx, attendance.Attendance{
			ID:           uuid.NewString(),
			EmployeeName: req.EmployeeName,
			Date:         date,
			Shift:        kind,
			ClockIn:      clockIn.String(),
			LateMinutes:  shift.Lateness(clockIn, kind),
		})
		if err != nil {
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockOut, err := shift.ParseTimeOfDay(req.ClockOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// GetOpenByEmployee only returns records without a checkout, so a second
	// clock-out attempt lands on ErrNotClockedIn.
	open, err := a.AttendanceRepository.GetOpenByEmployee(ctx, req.EmployeeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	overtime := shift.Overtime(&clockOut, open.Shift)

	updated, err := a.AttendanceRepository.SetClockOut(ctx, open.ID, clockOut.String(), overtime)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set clock out: %w", err)
	}

	return attendance.ToResponse(updated), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, req attendance.ListRequest) ([]attendance.AttendanceResponse, int64, error) {
	req.Normalize()

	records, total, err := a.AttendanceRepository.List(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, total, nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return attendance.ToResponse(record), nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}
