package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/basratech/hr-suite-go/internal/domain/staff"
	"github.com/basratech/hr-suite-go/internal/handler/http/middleware"
	"github.com/basratech/hr-suite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StaffHandler interface {
	Onboard(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetByUserID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &staffHandlerImpl{staffService: staffService}
}

// Onboard implements StaffHandler.
func (h *staffHandlerImpl) Onboard(w http.ResponseWriter, r *http.Request) {
	var req staff.OnboardStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Onboard decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if identity, ok := middleware.IdentityFromContext(r.Context()); ok {
		req.CreatedBy = &identity.UserID
	}

	result, err := h.staffService.Onboard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Staff onboarded", result)
}

// Update implements StaffHandler.
func (h *staffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "staffId")

	result, err := h.staffService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff updated", result)
}

// Get implements StaffHandler.
func (h *staffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.staffService.GetByID(r.Context(), chi.URLParam(r, "staffId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetByUserID implements StaffHandler.
func (h *staffHandlerImpl) GetByUserID(w http.ResponseWriter, r *http.Request) {
	result, err := h.staffService.GetByUserID(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements StaffHandler.
func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter staff.ListStaffFilter
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "includeInactive must be a boolean", nil)
			return
		}
		filter.IncludeInactive = includeInactive
	}

	result, err := h.staffService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
