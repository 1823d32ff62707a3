package deposit

import (
	"context"
	"time"
)

type DepositRepository interface {
	Create(ctx context.Context, newDeposit Deposit) (Deposit, error)
	GetByID(ctx context.Context, id string) (Deposit, error)
	Update(ctx context.Context, updated Deposit) (Deposit, error)
	List(ctx context.Context, req ListRequest) ([]Deposit, int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Deposit, error)
	Delete(ctx context.Context, id string) error
}
