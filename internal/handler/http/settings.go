package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/settings"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetAdmin(w http.ResponseWriter, r *http.Request)
	UpsertAdmin(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
	UpsertDashboard(w http.ResponseWriter, r *http.Request)
	GetLogin(w http.ResponseWriter, r *http.Request)
	UpsertLogin(w http.ResponseWriter, r *http.Request)
	GetEmployeeLogo(w http.ResponseWriter, r *http.Request)
	UpsertEmployeeLogo(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// GetAdmin implements SettingsHandler.
func (h *SettingsHandlerImpl) GetAdmin(w http.ResponseWriter, r *http.Request) {
	s, err := h.settingsService.GetAdmin(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

// UpsertAdmin implements SettingsHandler.
func (h *SettingsHandlerImpl) UpsertAdmin(w http.ResponseWriter, r *http.Request) {
	var req settings.UpsertAdminSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	s, err := h.settingsService.UpsertAdmin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Admin settings saved", s)
}

// GetDashboard implements SettingsHandler.
func (h *SettingsHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	s, err := h.settingsService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

// UpsertDashboard implements SettingsHandler.
func (h *SettingsHandlerImpl) UpsertDashboard(w http.ResponseWriter, r *http.Request) {
	var req settings.UpsertDashboardSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertDashboard decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	s, err := h.settingsService.UpsertDashboard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Dashboard settings saved", s)
}

// GetLogin implements SettingsHandler. Public: the login page needs it
// before authentication.
func (h *SettingsHandlerImpl) GetLogin(w http.ResponseWriter, r *http.Request) {
	s, err := h.settingsService.GetLogin(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

// UpsertLogin implements SettingsHandler.
func (h *SettingsHandlerImpl) UpsertLogin(w http.ResponseWriter, r *http.Request) {
	var req settings.UpsertLoginSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertLogin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	s, err := h.settingsService.UpsertLogin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Login settings saved", s)
}

// GetEmployeeLogo implements SettingsHandler.
func (h *SettingsHandlerImpl) GetEmployeeLogo(w http.ResponseWriter, r *http.Request) {
	s, err := h.settingsService.GetEmployeeLogo(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

// UpsertEmployeeLogo implements SettingsHandler.
func (h *SettingsHandlerImpl) UpsertEmployeeLogo(w http.ResponseWriter, r *http.Request) {
	var req settings.UpsertEmployeeLogoRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertEmployeeLogo decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	s, err := h.settingsService.UpsertEmployeeLogo(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee logo saved", s)
}
