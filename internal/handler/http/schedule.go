package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/schedule"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Get implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ws, err := h.scheduleService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ws)
}

// Upsert implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ws, err := h.scheduleService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work schedule saved", ws)
}
