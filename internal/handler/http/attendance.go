package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/attendance"
	"github.com/spbu-ops/setoran-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockInReq attendance.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	attendanceResponse, err := a.attendanceService.ClockIn(r.Context(), clockInReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in successfully", attendanceResponse)
}

// ClockOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var clockOutReq attendance.ClockOutRequest

	if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	attendanceResponse, err := a.attendanceService.ClockOut(r.Context(), clockOutReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", attendanceResponse)
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	listReq := attendance.ListRequest{
		EmployeeName: query.Get("employee_name"),
		Month:        query.Get("month"),
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		listReq.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		listReq.Limit = limit
	}

	attendances, total, err := a.attendanceService.List(r.Context(), listReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	listReq.Normalize()
	response.SuccessWithMeta(w, attendances, &response.Meta{
		Page:       listReq.Page,
		Limit:      listReq.Limit,
		TotalItems: total,
		TotalPages: int((total + int64(listReq.Limit) - 1) / int64(listReq.Limit)),
	})
}

// Get implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	attendanceID := chi.URLParam(r, "id")

	attendanceResponse, err := a.attendanceService.Get(r.Context(), attendanceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendanceResponse)
}

// Delete implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	attendanceID := chi.URLParam(r, "id")

	if err := a.attendanceService.Delete(r.Context(), attendanceID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}
