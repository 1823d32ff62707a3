package report

import (
	"context"
	"errors"
)

var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

// MonthlyRecap is the generated workbook plus the filename it should be
// served under.
type MonthlyRecap struct {
	Filename string
	Content  []byte
}

type ReportService interface {
	// MonthlyRecap builds an XLSX recap of deposits and attendance for the
	// given "YYYY-MM" month.
	MonthlyRecap(ctx context.Context, month string) (MonthlyRecap, error)
}
