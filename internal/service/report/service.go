package report

import (
	"context"
	"fmt"
	"time"

	"github.com/spbu-ops/setoran-backend-go/internal/domain/attendance"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/deposit"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	depositSheet    = "Setoran"
	attendanceSheet = "Absensi"
)

type ReportServiceImpl struct {
	deposit.DepositRepository
	attendance.AttendanceRepository
}

func NewReportService(depositRepository deposit.DepositRepository, attendanceRepository attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		DepositRepository:    depositRepository,
		AttendanceRepository: attendanceRepository,
	}
}

// MonthlyRecap implements report.ReportService.
func (r *ReportServiceImpl) MonthlyRecap(ctx context.Context, month string) (report.MonthlyRecap, error) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return report.MonthlyRecap{}, report.ErrInvalidMonth
	}
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	deposits, err := r.DepositRepository.ListByDateRange(ctx, from, to)
	if err != nil {
		return report.MonthlyRecap{}, fmt.Errorf("failed to list deposits: %w", err)
	}

	attendances, err := r.AttendanceRepository.ListByDateRange(ctx, from, to)
	if err != nil {
		return report.MonthlyRecap{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	content, err := buildWorkbook(deposits, attendances)
	if err != nil {
		return report.MonthlyRecap{}, fmt.Errorf("failed to build workbook: %w", err)
	}

	return report.MonthlyRecap{
		Filename: fmt.Sprintf("rekap-%s.xlsx", month),
		Content:  content,
	}, nil
}

func buildWorkbook(deposits []deposit.Deposit, attendances []attendance.Attendance) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", depositSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(attendanceSheet); err != nil {
		return nil, err
	}

	if err := writeDepositSheet(f, deposits); err != nil {
		return nil, err
	}
	if err := writeAttendanceSheet(f, attendances); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDepositSheet(f *excelize.File, deposits []deposit.Deposit) error {
	headers := []interface{}{
		"Tanggal", "Karyawan", "Jam Masuk", "Jam Keluar",
		"Total Liter", "Total Setoran", "QRIS", "Cash",
		"Pengeluaran", "Pemasukan", "Total Keseluruhan",
	}
	if err := f.SetSheetRow(depositSheet, "A1", &headers); err != nil {
		return err
	}

	var liters, revenue, net float64
	for i, d := range deposits {
		row := []interface{}{
			d.CreatedAt.Format("2006-01-02"), d.EmployeeName, d.ClockIn, d.ClockOut,
			d.TotalLiters, d.TotalRevenue, d.QRISAmount, d.CashDeposit,
			d.TotalExpenses, d.TotalIncome, d.NetTotal,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(depositSheet, cell, &row); err != nil {
			return err
		}
		liters += d.TotalLiters
		revenue += d.TotalRevenue
		net += d.NetTotal
	}

	totals := []interface{}{"TOTAL", "", "", "", liters, revenue, "", "", "", "", net}
	cell, err := excelize.CoordinatesToCellName(1, len(deposits)+2)
	if err != nil {
		return err
	}
	return f.SetSheetRow(depositSheet, cell, &totals)
}

func writeAttendanceSheet(f *excelize.File, attendances []attendance.Attendance) error {
	headers := []interface{}{
		"Tanggal", "Karyawan", "Shift", "Jam Masuk", "Jam Keluar",
		"Terlambat (menit)", "Lembur (menit)",
	}
	if err := f.SetSheetRow(attendanceSheet, "A1", &headers); err != nil {
		return err
	}

	var late, overtime int
	for i, a := range attendances {
		clockOut := ""
		if a.ClockOut != nil {
			clockOut = *a.ClockOut
		}
		overtimeMinutes := 0
		if a.OvertimeMinutes != nil {
			overtimeMinutes = *a.OvertimeMinutes
		}

		row := []interface{}{
			a.Date.Format("2006-01-02"), a.EmployeeName, string(a.Shift),
			a.ClockIn, clockOut, a.LateMinutes, overtimeMinutes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(attendanceSheet, cell, &row); err != nil {
			return err
		}
		late += a.LateMinutes
		overtime += overtimeMinutes
	}

	totals := []interface{}{"TOTAL", "", "", "", "", late, overtime}
	cell, err := excelize.CoordinatesToCellName(1, len(attendances)+2)
	if err != nil {
		return err
	}
	return f.SetSheetRow(attendanceSheet, cell, &totals)
}
