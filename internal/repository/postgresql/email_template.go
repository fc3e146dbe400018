package postgresql

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/notification"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type emailTemplateRepositoryImpl struct {
	db *database.DB
}

func NewEmailTemplateRepository(db *database.DB) notification.TemplateRepository {
	return &emailTemplateRepositoryImpl{db: db}
}

// GetByType implements notification.TemplateRepository.
func (r *emailTemplateRepositoryImpl) GetByType(ctx context.Context, templateType string) (notification.EmailTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type, subject, body, created_at, updated_at
		FROM email_templates
		WHERE type = $1
	`

	var tmpl notification.EmailTemplate
	err := q.QueryRow(ctx, query, templateType).Scan(
		&tmpl.ID, &tmpl.Type, &tmpl.Subject, &tmpl.Body,
		&tmpl.CreatedAt, &tmpl.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return notification.EmailTemplate{}, notification.ErrTemplateNotFound
		}
		return notification.EmailTemplate{}, fmt.Errorf("failed to get email template: %w", err)
	}

	return tmpl, nil
}

// List implements notification.TemplateRepository.
func (r *emailTemplateRepositoryImpl) List(ctx context.Context) ([]notification.EmailTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type, subject, body, created_at, updated_at
		FROM email_templates
		ORDER BY type
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	defer rows.Close()

	var templates []notification.EmailTemplate
	for rows.Next() {
		var tmpl notification.EmailTemplate
		err := rows.Scan(
			&tmpl.ID, &tmpl.Type, &tmpl.Subject, &tmpl.Body,
			&tmpl.CreatedAt, &tmpl.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan email template: %w", err)
		}
		templates = append(templates, tmpl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return templates, nil
}

// Upsert implements notification.TemplateRepository.
func (r *emailTemplateRepositoryImpl) Upsert(ctx context.Context, tmpl notification.EmailTemplate) (notification.EmailTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO email_templates (id, type, subject, body, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (type) DO UPDATE
		SET subject = EXCLUDED.subject,
			body = EXCLUDED.body,
			updated_at = NOW()
		RETURNING id, type, subject, body, created_at, updated_at
	`

	var result notification.EmailTemplate
	err := q.QueryRow(ctx, query, tmpl.Type, tmpl.Subject, tmpl.Body).Scan(
		&result.ID, &result.Type, &result.Subject, &result.Body,
		&result.CreatedAt, &result.UpdatedAt,
	)

	if err != nil {
		return notification.EmailTemplate{}, fmt.Errorf("failed to upsert email template: %w", err)
	}

	return result, nil
}

// Delete implements notification.TemplateRepository.
func (r *emailTemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM email_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete email template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrTemplateNotFound
	}

	return nil
}
