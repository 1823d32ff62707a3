package deposit

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/deposit"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	rows map[string]deposit.Deposit
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[string]deposit.Deposit)}
}

func (f *fakeRepository) Create(_ context.Context, newDeposit deposit.Deposit) (deposit.Deposit, error) {
	newDeposit.CreatedAt = time.Now()
	newDeposit.UpdatedAt = newDeposit.CreatedAt
	f.rows[newDeposit.ID] = newDeposit
	return newDeposit, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (deposit.Deposit, error) {
	row, ok := f.rows[id]
	if !ok {
		return deposit.Deposit{}, pgx.ErrNoRows
	}
	return row, nil
}

func (f *fakeRepository) Update(_ context.Context, updated deposit.Deposit) (deposit.Deposit, error) {
	if _, ok := f.rows[updated.ID]; !ok {
		return deposit.Deposit{}, pgx.ErrNoRows
	}
	updated.UpdatedAt = time.Now()
	f.rows[updated.ID] = updated
	return updated, nil
}

func (f *fakeRepository) List(_ context.Context, req deposit.ListRequest) ([]deposit.Deposit, int64, error) {
	var result []deposit.Deposit
	for _, row := range f.rows {
		result = append(result, row)
	}
	return result, int64(len(result)), nil
}

func (f *fakeRepository) ListByDateRange(_ context.Context, from, to time.Time) ([]deposit.Deposit, error) {
	var result []deposit.Deposit
	for _, row := range f.rows {
		if !row.CreatedAt.Before(from) && !row.CreatedAt.After(to) {
			result = append(result, row)
		}
	}
	return result, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.rows, id)
	return nil
}

func validCreateRequest() deposit.CreateRequest {
	return deposit.CreateRequest{
		EmployeeName: "Budi",
		ClockIn:      "07:00",
		ClockOut:     "15:00",
		MeterStart:   1000,
		MeterEnd:     1100,
		QRISAmount:   150000,
		Expenses:     []deposit.LineItem{{ID: "1", Description: "oli", Amount: 50000}},
		Income:       []deposit.LineItem{{ID: "2", Description: "galon", Amount: 20000}},
	}
}

func TestCreate_ComputesAllTotals(t *testing.T) {
	t.Parallel()
	svc := NewDepositService(newFakeRepository())

	resp, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 100.0, resp.TotalLiters)
	assert.Equal(t, 1150000.0, resp.TotalRevenue)
	assert.Equal(t, 1000000.0, resp.CashDeposit)
	assert.Equal(t, 50000.0, resp.TotalExpense)
	assert.Equal(t, 20000.0, resp.TotalIncome)
	assert.Equal(t, 970000.0, resp.NetTotal)
}

func TestCreate_RejectsMeterGoingBackwards(t *testing.T) {
	t.Parallel()
	svc := NewDepositService(newFakeRepository())

	req := validCreateRequest()
	req.MeterEnd = 900

	_, err := svc.Create(context.Background(), req)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "nomor_akhir")
}

func TestUpdate_RecalculatesWhenInputsChange(t *testing.T) {
	t.Parallel()
	svc := NewDepositService(newFakeRepository())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	newEnd := 1200.0
	updated, err := svc.Update(context.Background(), created.ID, deposit.UpdateRequest{
		MeterEnd: &newEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.TotalLiters)
	assert.Equal(t, 2300000.0, updated.TotalRevenue)
	assert.Equal(t, 2150000.0, updated.CashDeposit)
	// Untouched inputs are preserved.
	assert.Equal(t, "Budi", updated.EmployeeName)
	assert.Equal(t, 150000.0, updated.QRISAmount)
}

func TestUpdate_NameOnlyKeepsTotals(t *testing.T) {
	t.Parallel()
	svc := NewDepositService(newFakeRepository())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	name := "Sari"
	updated, err := svc.Update(context.Background(), created.ID, deposit.UpdateRequest{
		EmployeeName: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "Sari", updated.EmployeeName)
	assert.Equal(t, created.NetTotal, updated.NetTotal)
}

func TestUpdate_RejectsMergedMeterConflict(t *testing.T) {
	t.Parallel()
	svc := NewDepositService(newFakeRepository())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Valid on its own but below the stored meter start.
	newEnd := 500.0
	_, err = svc.Update(context.Background(), created.ID, deposit.UpdateRequest{MeterEnd: &newEnd})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewDepositService(newFakeRepository())

	name := "Sari"
	_, err := svc.Update(context.Background(), "missing", deposit.UpdateRequest{EmployeeName: &name})
	assert.ErrorIs(t, err, deposit.ErrDepositNotFound)
}

func TestPreview_DoesNotPersist(t *testing.T) {
	t.Parallel()
	repo := newFakeRepository()
	svc := NewDepositService(repo)

	calc, err := svc.Preview(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, 970000.0, calc.NetTotal)
	assert.Empty(t, repo.rows)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewDepositService(newFakeRepository())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, deposit.ErrDepositNotFound)
}
