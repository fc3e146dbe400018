package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/employee"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/leave"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/notification"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/email"
)

// Built-in fallbacks used when no template row exists for the type.
var defaultTemplates = map[string]notification.EmailTemplate{
	notification.TemplateLeaveApproved: {
		Type:    notification.TemplateLeaveApproved,
		Subject: "Richiesta approvata: {{.Type}} {{.Period}}",
		Body: "<p>Ciao {{.EmployeeName}},</p>" +
			"<p>la tua richiesta di {{.Type}} per {{.Period}} è stata approvata.</p>" +
			"{{if .AdminNote}}<p>Nota: {{.AdminNote}}</p>{{end}}",
	},
	notification.TemplateLeaveRejected: {
		Type:    notification.TemplateLeaveRejected,
		Subject: "Richiesta rifiutata: {{.Type}} {{.Period}}",
		Body: "<p>Ciao {{.EmployeeName}},</p>" +
			"<p>la tua richiesta di {{.Type}} per {{.Period}} è stata rifiutata.</p>" +
			"{{if .AdminNote}}<p>Motivazione: {{.AdminNote}}</p>{{end}}",
	},
}

type NotificationService struct {
	templateRepo     notification.TemplateRepository
	notificationRepo notification.NotificationRepository
	mailer           email.Mailer
}

func NewNotificationService(
	templateRepo notification.TemplateRepository,
	notificationRepo notification.NotificationRepository,
	mailer email.Mailer,
) *NotificationService {
	return &NotificationService{
		templateRepo:     templateRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
	}
}

func (s *NotificationService) UpsertTemplate(ctx context.Context, req notification.UpsertTemplateRequest) (notification.EmailTemplate, error) {
	// Reject templates that would fail at send time.
	if _, err := template.New("subject").Parse(req.Subject); err != nil {
		return notification.EmailTemplate{}, fmt.Errorf("invalid subject template: %w", err)
	}
	if _, err := template.New("body").Parse(req.Body); err != nil {
		return notification.EmailTemplate{}, fmt.Errorf("invalid body template: %w", err)
	}

	saved, err := s.templateRepo.Upsert(ctx, notification.EmailTemplate{
		Type:    req.Type,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return notification.EmailTemplate{}, fmt.Errorf("failed to save email template: %w", err)
	}

	return saved, nil
}

func (s *NotificationService) ListTemplates(ctx context.Context) ([]notification.EmailTemplate, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	return templates, nil
}

func (s *NotificationService) DeleteTemplate(ctx context.Context, id string) error {
	return s.templateRepo.Delete(ctx, id)
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]notification.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

// NotifyLeaveDecision emails the employee about an approval or rejection and
// records an in-app notification row. Callers treat failures as warnings.
func (s *NotificationService) NotifyLeaveDecision(ctx context.Context, request leave.LeaveRequest, emp employee.Employee) error {
	templateType := notification.TemplateLeaveApproved
	if request.Status == leave.StatusRejected {
		templateType = notification.TemplateLeaveRejected
	}

	tmpl, err := s.templateRepo.GetByType(ctx, templateType)
	if err != nil {
		if !errors.Is(err, notification.ErrTemplateNotFound) {
			return fmt.Errorf("failed to load email template: %w", err)
		}
		tmpl = defaultTemplates[templateType]
	}

	data := decisionData(request, emp)

	subject, err := render("subject", tmpl.Subject, data)
	if err != nil {
		return err
	}
	body, err := render("body", tmpl.Body, data)
	if err != nil {
		return err
	}

	if err := s.mailer.Send(emp.Email, subject, body); err != nil {
		return err
	}

	_, err = s.notificationRepo.Create(ctx, notification.Notification{
		UserID:  request.UserID,
		Title:   subject,
		Message: fmt.Sprintf("%s %s: %s", data.Type, data.Period, request.Status),
	})
	if err != nil {
		slog.Warn("email sent but in-app notification failed",
			"user_id", request.UserID, "error", err)
	}

	return nil
}

func decisionData(request leave.LeaveRequest, emp employee.Employee) notification.LeaveDecisionData {
	from, to := request.Range()

	var period string
	if request.Type == leave.TypePermesso && request.TimeFrom != nil && request.TimeTo != nil {
		period = fmt.Sprintf("%s %s-%s", from.Format("02/01/2006"), *request.TimeFrom, *request.TimeTo)
	} else if from.Equal(to) {
		period = from.Format("02/01/2006")
	} else {
		period = fmt.Sprintf("%s - %s", from.Format("02/01/2006"), to.Format("02/01/2006"))
	}

	var adminNote string
	if request.AdminNote != nil {
		adminNote = *request.AdminNote
	}

	return notification.LeaveDecisionData{
		EmployeeName: emp.FullName(),
		Type:         string(request.Type),
		Period:       period,
		AdminNote:    adminNote,
	}
}

func render(name, src string, data notification.LeaveDecisionData) (string, error) {
	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return buf.String(), nil
}
