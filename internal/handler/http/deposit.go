package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/deposit"
	"github.com/spbu-ops/setoran-backend-go/internal/handler/http/response"
)

type DepositHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Calculate(w http.ResponseWriter, r *http.Request)
}

type DepositHandlerImpl struct {
	depositService deposit.DepositService
}

func NewDepositHandler(depositService deposit.DepositService) DepositHandler {
	return &DepositHandlerImpl{
		depositService: depositService,
	}
}

// Create implements DepositHandler.
func (d *DepositHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq deposit.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create deposit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	depositResponse, err := d.depositService.Create(r.Context(), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deposit recorded successfully", depositResponse)
}

// Get implements DepositHandler.
func (d *DepositHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	depositID := chi.URLParam(r, "id")

	depositResponse, err := d.depositService.Get(r.Context(), depositID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, depositResponse)
}

// Update implements DepositHandler.
func (d *DepositHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	depositID := chi.URLParam(r, "id")

	var updateReq deposit.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update deposit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	depositResponse, err := d.depositService.Update(r.Context(), depositID, updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deposit updated successfully", depositResponse)
}

// List implements DepositHandler.
func (d *DepositHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var listReq deposit.ListRequest
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		listReq.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		listReq.Limit = limit
	}

	deposits, total, err := d.depositService.List(r.Context(), listReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	listReq.Normalize()
	response.SuccessWithMeta(w, deposits, &response.Meta{
		Page:       listReq.Page,
		Limit:      listReq.Limit,
		TotalItems: total,
		TotalPages: int((total + int64(listReq.Limit) - 1) / int64(listReq.Limit)),
	})
}

// Delete implements DepositHandler.
func (d *DepositHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	depositID := chi.URLParam(r, "id")

	if err := d.depositService.Delete(r.Context(), depositID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deposit deleted successfully", nil)
}

// Calculate implements DepositHandler.
func (d *DepositHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var calculateReq deposit.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&calculateReq); err != nil {
		slog.Error("Calculate deposit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	calculation, err := d.depositService.Preview(r.Context(), calculateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calculation)
}
