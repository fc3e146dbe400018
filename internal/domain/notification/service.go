package notification

import "context"

type Service interface {
	UpsertTemplate(ctx context.Context, req UpsertTemplateRequest) (EmailTemplate, error)
	ListTemplates(ctx context.Context) ([]EmailTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error

	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}
