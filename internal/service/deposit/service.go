package deposit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/deposit"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/validator"
)

type DepositServiceImpl struct {
	deposit.DepositRepository
}

func NewDepositService(depositRepository deposit.DepositRepository) deposit.DepositService {
	return &DepositServiceImpl{
		DepositRepository: depositRepository,
	}
}

// Create implements deposit.DepositService.
func (d *DepositServiceImpl) Create(ctx context.Context, req deposit.CreateRequest) (deposit.DepositResponse, error) {
	if err := req.Validate(); err != nil {
		return deposit.DepositResponse{}, err
	}

	calc := deposit.Calculate(req.MeterStart, req.MeterEnd, req.QRISAmount, req.Expenses, req.Income)

	created, err := d.DepositRepository.Create(ctx, deposit.Deposit{
		ID:            uuid.NewString(),
		EmployeeName:  req.EmployeeName,
		ClockIn:       req.ClockIn,
		ClockOut:      req.ClockOut,
		MeterStart:    req.MeterStart,
		MeterEnd:      req.MeterEnd,
		TotalLiters:   calc.TotalLiters,
		TotalRevenue:  calc.TotalRevenue,
		QRISAmount:    req.QRISAmount,
		CashDeposit:   calc.CashDeposit,
		Expenses:      req.Expenses,
		TotalExpenses: calc.TotalExpenses,
		Income:        req.Income,
		TotalIncome:   calc.TotalIncome,
		NetTotal:      calc.NetTotal,
	})
	if err != nil {
		return deposit.DepositResponse{}, fmt.Errorf("failed to create deposit: %w", err)
	}

	return deposit.ToResponse(created), nil
}

// Get implements deposit.DepositService.
func (d *DepositServiceImpl) Get(ctx context.Context, id string) (deposit.DepositResponse, error) {
	record, err := d.DepositRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deposit.DepositResponse{}, deposit.ErrDepositNotFound
		}
		return deposit.DepositResponse{}, fmt.Errorf("failed to get deposit: %w", err)
	}
	return deposit.ToResponse(record), nil
}

// Update implements deposit.DepositService. Fields absent from the request
// keep their stored values; touching any calculation input recomputes all
// derived figures.
func (d *DepositServiceImpl) Update(ctx context.Context, id string, req deposit.UpdateRequest) (deposit.DepositResponse, error) {
	if err := req.Validate(); err != nil {
		return deposit.DepositResponse{}, err
	}

	record, err := d.DepositRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deposit.DepositResponse{}, deposit.ErrDepositNotFound
		}
		return deposit.DepositResponse{}, fmt.Errorf("failed to get deposit: %w", err)
	}

	if req.EmployeeName != nil {
		record.EmployeeName = *req.EmployeeName
	}
	if req.ClockIn != nil {
		record.ClockIn = *req.ClockIn
	}
	if req.ClockOut != nil {
		record.ClockOut = *req.ClockOut
	}
	if req.MeterStart != nil {
		record.MeterStart = *req.MeterStart
	}
	if req.MeterEnd != nil {
		record.MeterEnd = *req.MeterEnd
	}
	if req.QRISAmount != nil {
		record.QRISAmount = *req.QRISAmount
	}
	if req.Expenses != nil {
		record.Expenses = *req.Expenses
	}
	if req.Income != nil {
		record.Income = *req.Income
	}

	// Cross-field check has to run against the merged record, not the
	// partial request.
	if record.MeterEnd < record.MeterStart {
		return deposit.DepositResponse{}, validator.ValidationErrors{{
			Field:   "nomor_akhir",
			Message: "nomor_akhir must be greater than or equal to nomor_awal",
		}}
	}

	if req.Recalculates() {
		calc := deposit.Calculate(record.MeterStart, record.MeterEnd, record.QRISAmount, record.Expenses, record.Income)
		record.TotalLiters = calc.TotalLiters
		record.TotalRevenue = calc.TotalRevenue
		record.CashDeposit = calc.CashDeposit
		record.TotalExpenses = calc.TotalExpenses
		record.TotalIncome = calc.TotalIncome
		record.NetTotal = calc.NetTotal
	}

	updated, err := d.DepositRepository.Update(ctx, record)
	if err != nil {
		return deposit.DepositResponse{}, fmt.Errorf("failed to update deposit: %w", err)
	}

	return deposit.ToResponse(updated), nil
}

// List implements deposit.DepositService.
func (d *DepositServiceImpl) List(ctx context.Context, req deposit.ListRequest) ([]deposit.DepositResponse, int64, error) {
	req.Normalize()

	records, total, err := d.DepositRepository.List(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deposits: %w", err)
	}

	responses := make([]deposit.DepositResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, deposit.ToResponse(record))
	}
	return responses, total, nil
}

// Delete implements deposit.DepositService.
func (d *DepositServiceImpl) Delete(ctx context.Context, id string) error {
	if err := d.DepositRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deposit.ErrDepositNotFound
		}
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	return nil
}

// Preview implements deposit.DepositService.
func (d *DepositServiceImpl) Preview(ctx context.Context, req deposit.CreateRequest) (deposit.Calculation, error) {
	if err := req.Validate(); err != nil {
		return deposit.Calculation{}, err
	}
	return deposit.Calculate(req.MeterStart, req.MeterEnd, req.QRISAmount, req.Expenses, req.Income), nil
}
