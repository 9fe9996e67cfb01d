package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/basratech/hr-suite-go/internal/domain/salaryslip"
	"github.com/basratech/hr-suite-go/internal/handler/http/middleware"
	"github.com/basratech/hr-suite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalarySlipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
}

type salarySlipHandlerImpl struct {
	salarySlipService salaryslip.SalarySlipService
}

func NewSalarySlipHandler(salarySlipService salaryslip.SalarySlipService) SalarySlipHandler {
	return &salarySlipHandlerImpl{salarySlipService: salarySlipService}
}

// Generate implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req salaryslip.GenerateSalarySlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate salary slip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if identity, ok := middleware.IdentityFromContext(r.Context()); ok {
		req.GeneratedBy = &identity.UserID
	}

	result, err := h.salarySlipService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Salary slip generated", result)
}

// Get implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.salarySlipService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListByStaff implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	result, err := h.salarySlipService.ListByStaff(r.Context(), chi.URLParam(r, "staffId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
