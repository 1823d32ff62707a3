package deposit

import (
	"context"
)

type DepositService interface {
	Create(ctx context.Context, req CreateRequest) (DepositResponse, error)
	Get(ctx context.Context, id string) (DepositResponse, error)
	Update(ctx context.Context, id string, req UpdateRequest) (DepositResponse, error)
	List(ctx context.Context, req ListRequest) ([]DepositResponse, int64, error)
	Delete(ctx context.Context, id string) error
	// Preview runs the calculation without persisting anything.
	Preview(ctx context.Context, req CreateRequest) (Calculation, error)
}
