package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/basratech/hr-suite-go/internal/domain/timelog"
	"github.com/basratech/hr-suite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeTrackingHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	BreakIn(w http.ResponseWriter, r *http.Request)
	BreakOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetLogs(w http.ResponseWriter, r *http.Request)
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type timeTrackingHandlerImpl struct {
	timeLogService timelog.TimeLogService
}

func NewTimeTrackingHandler(timeLogService timelog.TimeLogService) TimeTrackingHandler {
	return &timeTrackingHandlerImpl{
		timeLogService: timeLogService,
	}
}

// Login implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req timelog.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timeLogService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Login recorded", result)
}

// Logout implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var req timelog.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Logout decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timeLogService.Logout(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Logout recorded", result)
}

// BreakIn implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) BreakIn(w http.ResponseWriter, r *http.Request) {
	var req timelog.BreakInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BreakIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.timeLogService.BreakIn(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Break started", struct{}{})
}

// BreakOut implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) BreakOut(w http.ResponseWriter, r *http.Request) {
	var req timelog.BreakOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BreakOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timeLogService.BreakOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Break ended", result)
}

// GetToday implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeLogService.GetToday(r.Context(), chi.URLParam(r, "staffId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetLogs implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) GetLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := timelog.LogsFilter{
		StaffID:   chi.URLParam(r, "staffId"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}

	result, err := h.timeLogService.GetLogs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetMonthlySummary implements TimeTrackingHandler.
func (h *timeTrackingHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be an integer", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "month must be an integer", nil)
		return
	}

	result, err := h.timeLogService.GetMonthlySummary(r.Context(), chi.URLParam(r, "staffId"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
