package document

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/document"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

type DocumentService struct {
	repo    document.Repository
	storage storage.FileStorage
}

func NewDocumentService(repo document.Repository, fileStorage storage.FileStorage) document.Service {
	return &DocumentService{
		repo:    repo,
		storage: fileStorage,
	}
}

func (s *DocumentService) Upload(ctx context.Context, userID *string, fileName, contentType string, size int64, file io.Reader, uploadedBy string) (document.Document, error) {
	// Stored under a generated key; the original name survives as metadata.
	key := fmt.Sprintf("documents/%d/%s%s",
		time.Now().Year(), uuid.NewString(), sanitizeExt(fileName))

	path, err := s.storage.Upload(ctx, file, key, contentType)
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to store document file: %w", err)
	}

	doc, err := s.repo.Create(ctx, document.Document{
		UserID:      userID,
		FileName:    fileName,
		FilePath:    path,
		ContentType: contentType,
		SizeBytes:   size,
		UploadedBy:  uploadedBy,
	})
	if err != nil {
		// Metadata insert failed: remove the orphaned file.
		_ = s.storage.Delete(ctx, path)
		return document.Document{}, fmt.Errorf("failed to create document record: %w", err)
	}

	return doc, nil
}

func (s *DocumentService) Download(ctx context.Context, id, requesterID string, isAdmin bool) (document.Document, io.ReadCloser, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return document.Document{}, nil, err
	}

	if !isAdmin && doc.UserID != nil && *doc.UserID != requesterID {
		return document.Document{}, nil, document.ErrAccessDenied
	}

	reader, err := s.storage.Download(ctx, doc.FilePath)
	if err != nil {
		return document.Document{}, nil, fmt.Errorf("failed to open document file: %w", err)
	}

	return doc, reader, nil
}

func (s *DocumentService) ListVisibleTo(ctx context.Context, userID string) ([]document.Document, error) {
	docs, err := s.repo.ListVisibleTo(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (s *DocumentService) ListAll(ctx context.Context) ([]document.Document, error) {
	docs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document record: %w", err)
	}

	if err := s.storage.Delete(ctx, doc.FilePath); err != nil {
		return fmt.Errorf("document record deleted but file removal failed: %w", err)
	}

	return nil
}

func sanitizeExt(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) > 10 {
		return ""
	}
	return ext
}
