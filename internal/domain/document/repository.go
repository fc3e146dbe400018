package document

import "context"

type Repository interface {
	Create(ctx context.Context, doc Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	// ListVisibleTo returns the user's own documents plus company-wide ones.
	ListVisibleTo(ctx context.Context, userID string) ([]Document, error)
	ListAll(ctx context.Context) ([]Document, error)
	Delete(ctx context.Context, id string) error
}
