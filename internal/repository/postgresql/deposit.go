package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/deposit"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/database"
)

type depositRepository struct {
	db *database.DB
}

func NewDepositRepository(db *database.DB) deposit.DepositRepository {
	return &depositRepository{db: db}
}

const depositColumns = `id, employee_name, clock_in, clock_out,
	meter_start, meter_end, total_liters,
	total_revenue, qris_amount, cash_deposit,
	expenses, total_expenses, income, total_income, net_total,
	created_at, updated_at`

func scanDeposit(row interface{ Scan(dest ...any) error }) (deposit.Deposit, error) {
	var dep deposit.Deposit
	var expensesJSON, incomeJSON []byte

	err := row.Scan(
		&dep.ID, &dep.EmployeeName, &dep.ClockIn, &dep.ClockOut,
		&dep.MeterStart, &dep.MeterEnd, &dep.TotalLiters,
		&dep.TotalRevenue, &dep.QRISAmount, &dep.CashDeposit,
		&expensesJSON, &dep.TotalExpenses, &incomeJSON, &dep.TotalIncome, &dep.NetTotal,
		&dep.CreatedAt, &dep.UpdatedAt,
	)
	if err != nil {
		return deposit.Deposit{}, err
	}

	if len(expensesJSON) > 0 {
		if err := json.Unmarshal(expensesJSON, &dep.Expenses); err != nil {
			return deposit.Deposit{}, fmt.Errorf("failed to decode expenses: %w", err)
		}
	}
	if len(incomeJSON) > 0 {
		if err := json.Unmarshal(incomeJSON, &dep.Income); err != nil {
			return deposit.Deposit{}, fmt.Errorf("failed to decode income: %w", err)
		}
	}

	return dep, nil
}

func encodeItems(items []deposit.LineItem) ([]byte, error) {
	if items == nil {
		items = []deposit.LineItem{}
	}
	return json.Marshal(items)
}

// Create implements deposit.DepositRepository.
func (d *depositRepository) Create(ctx context.Context, newDeposit deposit.Deposit) (deposit.Deposit, error) {
	q := GetQuerier(ctx, d.db)

	expensesJSON, err := encodeItems(newDeposit.Expenses)
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to encode expenses: %w", err)
	}
	incomeJSON, err := encodeItems(newDeposit.Income)
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to encode income: %w", err)
	}

	query := `
		INSERT INTO deposits (
			id, employee_name, clock_in, clock_out,
			meter_start, meter_end, total_liters,
			total_revenue, qris_amount, cash_deposit,
			expenses, total_expenses, income, total_income, net_total
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newDeposit.ID,
		newDeposit.EmployeeName,
		newDeposit.ClockIn,
		newDeposit.ClockOut,
		newDeposit.MeterStart,
		newDeposit.MeterEnd,
		newDeposit.TotalLiters,
		newDeposit.TotalRevenue,
		newDeposit.QRISAmount,
		newDeposit.CashDeposit,
		expensesJSON,
		newDeposit.TotalExpenses,
		incomeJSON,
		newDeposit.TotalIncome,
		newDeposit.NetTotal,
	).Scan(&newDeposit.CreatedAt, &newDeposit.UpdatedAt)
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to create deposit: %w", err)
	}

	return newDeposit, nil
}

// GetByID implements deposit.DepositRepository.
func (d *depositRepository) GetByID(ctx context.Context, id string) (deposit.Deposit, error) {
	q := GetQuerier(ctx, d.db)

	query := `SELECT ` + depositColumns + ` FROM deposits WHERE id = $1`

	dep, err := scanDeposit(q.QueryRow(ctx, query, id))
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to get deposit: %w", err)
	}
	return dep, nil
}

// Update implements deposit.DepositRepository.
func (d *depositRepository) Update(ctx context.Context, updated deposit.Deposit) (deposit.Deposit, error) {
	q := GetQuerier(ctx, d.db)

	expensesJSON, err := encodeItems(updated.Expenses)
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to encode expenses: %w", err)
	}
	incomeJSON, err := encodeItems(updated.Income)
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to encode income: %w", err)
	}

	query := `
		UPDATE deposits SET
			employee_name = $2, clock_in = $3, clock_out = $4,
			meter_start = $5, meter_end = $6, total_liters = $7,
			total_revenue = $8, qris_amount = $9, cash_deposit = $10,
			expenses = $11, total_expenses = $12, income = $13,
			total_income = $14, net_total = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		updated.ID,
		updated.EmployeeName,
		updated.ClockIn,
		updated.ClockOut,
		updated.MeterStart,
		updated.MeterEnd,
		updated.TotalLiters,
		updated.TotalRevenue,
		updated.QRISAmount,
		updated.CashDeposit,
		expensesJSON,
		updated.TotalExpenses,
		incomeJSON,
		updated.TotalIncome,
		updated.NetTotal,
	).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to update deposit: %w", err)
	}

	return updated, nil
}

// List implements deposit.DepositRepository.
func (d *depositRepository) List(ctx context.Context, req deposit.ListRequest) ([]deposit.Deposit, int64, error) {
	q := GetQuerier(ctx, d.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM deposits`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count deposits: %w", err)
	}

	query := `SELECT ` + depositColumns + ` FROM deposits ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := q.Query(ctx, query, req.Limit, (req.Page-1)*req.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []deposit.Deposit
	for rows.Next() {
		dep, err := scanDeposit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan deposit: %w", err)
		}
		deposits = append(deposits, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate deposits: %w", err)
	}

	return deposits, total, nil
}

// ListByDateRange implements deposit.DepositRepository.
func (d *depositRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]deposit.Deposit, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT ` + depositColumns + `
		FROM deposits
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits by date range: %w", err)
	}
	defer rows.Close()

	var deposits []deposit.Deposit
	for rows.Next() {
		dep, err := scanDeposit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deposit: %w", err)
		}
		deposits = append(deposits, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deposits: %w", err)
	}

	return deposits, nil
}

// Delete implements deposit.DepositRepository.
func (d *depositRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `DELETE FROM deposits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
