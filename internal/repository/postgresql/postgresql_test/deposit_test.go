package postgresql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/deposit"
	"github.com/spbu-ops/setoran-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDeposit(t *testing.T, repo deposit.DepositRepository) deposit.Deposit {
	t.Helper()

	created, err := repo.Create(context.Background(), deposit.Deposit{
		ID:           uuid.NewString(),
		EmployeeName: "Budi",
		ClockIn:      "07:00",
		ClockOut:     "15:00",
		MeterStart:   1000,
		MeterEnd:     1100,
		TotalLiters:  100,
		TotalRevenue: 1150000,
		QRISAmount:   150000,
		CashDeposit:  1000000,
		Expenses: []deposit.LineItem{
			{ID: uuid.NewString(), Description: "Makan siang", Amount: 25000},
		},
		TotalExpenses: 25000,
		TotalIncome:   0,
		NetTotal:      975000,
	})
	require.NoError(t, err)
	return created
}

func TestDepositRepository_CreateAndGet(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db, "deposits")

	repo := postgresql.NewDepositRepository(db)
	created := seedDeposit(t, repo)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.EmployeeName, got.EmployeeName)
	assert.Equal(t, created.NetTotal, got.NetTotal)
	require.Len(t, got.Expenses, 1)
	assert.Equal(t, "Makan siang", got.Expenses[0].Description)
	assert.Empty(t, got.Income)
}

func TestDepositRepository_Update(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db, "deposits")

	repo := postgresql.NewDepositRepository(db)
	created := seedDeposit(t, repo)

	created.MeterEnd = 1200
	created.TotalLiters = 200
	created.TotalRevenue = 2300000
	created.CashDeposit = 2150000
	created.NetTotal = 2125000

	updated, err := repo.Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, float64(1200), updated.MeterEnd)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(2125000), got.NetTotal)
}

func TestDepositRepository_ListAndDelete(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db, "deposits")

	repo := postgresql.NewDepositRepository(db)
	created := seedDeposit(t, repo)

	deposits, total, err := repo.List(context.Background(), deposit.ListRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, deposits, 1)

	require.NoError(t, repo.Delete(context.Background(), created.ID))
	err = repo.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
