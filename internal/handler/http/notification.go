package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/notification"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	ListTemplates(w http.ResponseWriter, r *http.Request)
	UpsertTemplate(w http.ResponseWriter, r *http.Request)
	DeleteTemplate(w http.ResponseWriter, r *http.Request)

	ListMine(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// ListTemplates implements NotificationHandler.
func (h *NotificationHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.notificationService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

// UpsertTemplate implements NotificationHandler.
func (h *NotificationHandlerImpl) UpsertTemplate(w http.ResponseWriter, r *http.Request) {
	var req notification.UpsertTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertTemplate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tmpl, err := h.notificationService.UpsertTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email template saved", tmpl)
}

// DeleteTemplate implements NotificationHandler.
func (h *NotificationHandlerImpl) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Template ID is required", nil)
		return
	}

	if err := h.notificationService.DeleteTemplate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email template deleted", nil)
}

// ListMine implements NotificationHandler.
func (h *NotificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := h.notificationService.ListNotifications(
		r.Context(), middleware.UserID(r.Context()), unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notifications)
}

// MarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), id, middleware.UserID(r.Context())); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}
