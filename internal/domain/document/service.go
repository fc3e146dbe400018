package document

import (
	"context"
	"io"
)

type Service interface {
	// Upload stores the file and its metadata. userID nil publishes the
	// document company-wide.
	Upload(ctx context.Context, userID *string, fileName, contentType string, size int64, file io.Reader, uploadedBy string) (Document, error)
	// Download enforces visibility: employees reach their own and
	// company-wide documents, admins reach everything.
	Download(ctx context.Context, id, requesterID string, isAdmin bool) (Document, io.ReadCloser, error)
	ListVisibleTo(ctx context.Context, userID string) ([]Document, error)
	ListAll(ctx context.Context) ([]Document, error)
	Delete(ctx context.Context, id string) error
}
