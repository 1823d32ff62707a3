package attendance

import (
	"context"
)

type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
	List(ctx context.Context, req ListRequest) ([]AttendanceResponse, int64, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
