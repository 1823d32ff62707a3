package http

import (
	"fmt"
	"net/http"

	"github.com/spbu-ops/setoran-backend-go/internal/domain/report"
	"github.com/spbu-ops/setoran-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyRecap(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// MonthlyRecap implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyRecap(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	recap, err := h.reportService.MonthlyRecap(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", recap.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(recap.Content)
}
