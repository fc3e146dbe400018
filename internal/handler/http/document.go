package http

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/document"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/user"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 20 << 20 // 20 MiB

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DocumentHandlerImpl struct {
	documentService document.Service
}

func NewDocumentHandler(documentService document.Service) DocumentHandler {
	return &DocumentHandlerImpl{documentService: documentService}
}

// Upload implements DocumentHandler. Multipart form with a "file" part and
// an optional "user_id" field; omitting user_id publishes company-wide.
func (h *DocumentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form or file too large", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file", nil)
		return
	}
	defer file.Close()

	var targetUser *string
	if v := r.FormValue("user_id"); v != "" {
		targetUser = &v
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc, err := h.documentService.Upload(
		r.Context(), targetUser, header.Filename, contentType, header.Size,
		file, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded", doc)
}

// Download implements DocumentHandler.
func (h *DocumentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	isAdmin := middleware.Role(r.Context()) == string(user.RoleAdmin)

	doc, reader, err := h.documentService.Download(r.Context(), id, middleware.UserID(r.Context()), isAdmin)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	w.Header().Set("Content-Length", strconv.FormatInt(doc.SizeBytes, 10))

	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("document stream error", "document_id", doc.ID, "error", err)
	}
}

// ListMine implements DocumentHandler.
func (h *DocumentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListVisibleTo(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, docs)
}

// ListAll implements DocumentHandler.
func (h *DocumentHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, docs)
}

// Delete implements DocumentHandler.
func (h *DocumentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	if err := h.documentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted", nil)
}
