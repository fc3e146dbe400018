package notification

import "context"

type TemplateRepository interface {
	GetByType(ctx context.Context, templateType string) (EmailTemplate, error)
	List(ctx context.Context) ([]EmailTemplate, error)
	Upsert(ctx context.Context, tmpl EmailTemplate) (EmailTemplate, error)
	Delete(ctx context.Context, id string) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}
