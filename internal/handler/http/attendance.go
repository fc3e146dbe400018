package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/attendance"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListUnified(w http.ResponseWriter, r *http.Request)

	CreateSickLeave(w http.ResponseWriter, r *http.Request)
	ListSickLeaves(w http.ResponseWriter, r *http.Request)
	DeleteSickLeave(w http.ResponseWriter, r *http.Request)

	CreateBusinessTrip(w http.ResponseWriter, r *http.Request)
	ListBusinessTrips(w http.ResponseWriter, r *http.Request)
	DeleteBusinessTrip(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Create implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CreateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", record)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, from, to := attendanceQuery(r)

	records, err := h.attendanceService.ListAttendance(r.Context(), userID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteAttendance(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// ListUnified implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListUnified(w http.ResponseWriter, r *http.Request) {
	userID, from, to := attendanceQuery(r)

	records, err := h.attendanceService.ListUnified(r.Context(), userID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// CreateSickLeave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateSickLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRangeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSickLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CreateSickLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sick leave recorded", record)
}

// ListSickLeaves implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListSickLeaves(w http.ResponseWriter, r *http.Request) {
	userID, _, _ := attendanceQuery(r)

	records, err := h.attendanceService.ListSickLeaves(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// DeleteSickLeave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteSickLeave(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteSickLeave(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Sick leave deleted", nil)
}

// CreateBusinessTrip implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateBusinessTrip(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRangeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBusinessTrip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CreateBusinessTrip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Business trip recorded", record)
}

// ListBusinessTrips implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListBusinessTrips(w http.ResponseWriter, r *http.Request) {
	userID, _, _ := attendanceQuery(r)

	records, err := h.attendanceService.ListBusinessTrips(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// DeleteBusinessTrip implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteBusinessTrip(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteBusinessTrip(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Business trip deleted", nil)
}

// attendanceQuery resolves the target user and optional date bounds. Plain
// employees only see their own records; admins may pass user_id.
func attendanceQuery(r *http.Request) (string, *time.Time, *time.Time) {
	q := r.URL.Query()

	userID := middleware.UserID(r.Context())
	if v := q.Get("user_id"); v != "" && middleware.Role(r.Context()) == "admin" {
		userID = v
	}

	var from, to *time.Time
	if d, err := time.Parse("2006-01-02", q.Get("from")); err == nil {
		from = &d
	}
	if d, err := time.Parse("2006-01-02", q.Get("to")); err == nil {
		to = &d
	}

	return userID, from, to
}
