package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/overtime"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OvertimeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DisabledDates(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.Service
}

func NewOvertimeHandler(overtimeService overtime.Service) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Create implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CreatedBy = middleware.UserID(r.Context())

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.overtimeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime recorded", record)
}

// List implements OvertimeHandler.
func (h *OvertimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := overtime.Filter{}

	if v := q.Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v, err := strconv.Atoi(q.Get("year")); err == nil {
		filter.Year = &v
	}
	if v, err := strconv.Atoi(q.Get("month")); err == nil {
		filter.Month = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, response.NewMeta(result.Page, result.Limit, result.Total))
}

// Delete implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	if err := h.overtimeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime record deleted", nil)
}

// DisabledDates implements OvertimeHandler.
func (h *OvertimeHandlerImpl) DisabledDates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID := q.Get("user_id")
	if userID == "" {
		response.BadRequest(w, "user_id is required", nil)
		return
	}

	now := time.Now()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || year <= 0 {
		year = now.Year()
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}

	result, err := h.overtimeService.DisabledDates(r.Context(), userID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
