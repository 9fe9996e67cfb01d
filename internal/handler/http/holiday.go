package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/basratech/hr-suite-go/internal/domain/holiday"
	"github.com/basratech/hr-suite-go/internal/handler/http/middleware"
	"github.com/basratech/hr-suite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.AddHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if identity, ok := middleware.IdentityFromContext(r.Context()); ok {
		req.CreatedBy = &identity.UserID
	}

	result, err := h.holidayService.AddHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday added", result)
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter holiday.ListHolidaysFilter
	query := r.URL.Query()
	if query.Has("startDate") {
		v := query.Get("startDate")
		filter.StartDate = &v
	}
	if query.Has("endDate") {
		v := query.Get("endDate")
		filter.EndDate = &v
	}

	result, err := h.holidayService.ListHolidays(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListByMonth implements HolidayHandler.
func (h *holidayHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.holidayService.ListMonthHolidays(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
