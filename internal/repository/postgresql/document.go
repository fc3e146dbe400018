package postgresql

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/document"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.Repository {
	return &documentRepositoryImpl{db: db}
}

const documentColumns = `id, user_id, file_name, file_path, content_type, size_bytes, uploaded_by, created_at`

// Create implements document.Repository.
func (r *documentRepositoryImpl) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (id, user_id, file_name, file_path, content_type, size_bytes, uploaded_by, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	result := doc
	err := q.QueryRow(ctx, query,
		doc.UserID, doc.FileName, doc.FilePath, doc.ContentType, doc.SizeBytes, doc.UploadedBy,
	).Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return result, nil
}

// GetByID implements document.Repository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1
	`

	var doc document.Document
	err := q.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.UserID, &doc.FileName, &doc.FilePath,
		&doc.ContentType, &doc.SizeBytes, &doc.UploadedBy, &doc.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// ListVisibleTo implements document.Repository.
func (r *documentRepositoryImpl) ListVisibleTo(ctx context.Context, userID string) ([]document.Document, error) {
	return r.list(ctx, `WHERE user_id = $1 OR user_id IS NULL`, userID)
}

// ListAll implements document.Repository.
func (r *documentRepositoryImpl) ListAll(ctx context.Context) ([]document.Document, error) {
	return r.list(ctx, ``)
}

func (r *documentRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + documentColumns + `
		FROM documents
		` + where + `
		ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		var doc document.Document
		err := rows.Scan(
			&doc.ID, &doc.UserID, &doc.FileName, &doc.FilePath,
			&doc.ContentType, &doc.SizeBytes, &doc.UploadedBy, &doc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// Delete implements document.Repository.
func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}
