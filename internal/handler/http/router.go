package http

import (
	"log/slog"
	"os"

	"github.com/gestionale-hr/hr-backend-go/internal/config"
	"github.com/gestionale-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Leave        LeaveHandler
	Overtime     OvertimeHandler
	Attendance   AttendanceHandler
	Schedule     ScheduleHandler
	Employee     EmployeeHandler
	Notification NotificationHandler
	Document     DocumentHandler
	Settings     SettingsHandler
	Webhook      WebhookHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Post("/api/debug-webhook-test", h.Webhook.DebugEcho)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Login page branding is needed before authentication.
		r.Get("/settings/login", h.Settings.GetLogin)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/leave", func(r chi.Router) {
				r.Post("/requests", h.Leave.CreateRequest)
				r.Get("/requests/my", h.Leave.GetMyRequests)
				r.Get("/balance/my", h.Leave.GetMyBalance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/requests", h.Leave.ListRequests)
					r.Get("/requests/{id}", h.Leave.GetRequest)
					r.Post("/requests/manual", h.Leave.ManualEntry)
					r.Post("/requests/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/requests/{id}/reject", h.Leave.RejectRequest)
					r.Delete("/requests/{id}", h.Leave.DeleteRequest)
					r.Get("/balance/{userID}", h.Leave.GetBalance)
					r.Put("/balance", h.Leave.SetBalance)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Get("/", h.Overtime.List)
				r.Get("/disabled-dates", h.Overtime.DisabledDates)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Overtime.Create)
					r.Delete("/{id}", h.Overtime.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/unified", h.Attendance.ListUnified)
				r.Get("/sick-leaves", h.Attendance.ListSickLeaves)
				r.Get("/business-trips", h.Attendance.ListBusinessTrips)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Attendance.Create)
					r.Delete("/{id}", h.Attendance.Delete)
					r.Post("/sick-leaves", h.Attendance.CreateSickLeave)
					r.Delete("/sick-leaves/{id}", h.Attendance.DeleteSickLeave)
					r.Post("/business-trips", h.Attendance.CreateBusinessTrip)
					r.Delete("/business-trips/{id}", h.Attendance.DeleteBusinessTrip)
				})
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", h.Schedule.Get)
				r.With(middleware.AdminOnly).Put("/", h.Schedule.Upsert)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.ListMine)
				r.Post("/{id}/read", h.Notification.MarkRead)

				r.Route("/templates", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Notification.ListTemplates)
					r.Put("/", h.Notification.UpsertTemplate)
					r.Delete("/{id}", h.Notification.DeleteTemplate)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", h.Document.ListMine)
				r.Get("/{id}/download", h.Document.Download)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/all", h.Document.ListAll)
					r.Post("/", h.Document.Upload)
					r.Delete("/{id}", h.Document.Delete)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/dashboard", h.Settings.GetDashboard)
				r.Get("/employee-logo", h.Settings.GetEmployeeLogo)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/admin", h.Settings.GetAdmin)
					r.Put("/admin", h.Settings.UpsertAdmin)
					r.Put("/dashboard", h.Settings.UpsertDashboard)
					r.Put("/login", h.Settings.UpsertLogin)
					r.Put("/employee-logo", h.Settings.UpsertEmployeeLogo)
				})
			})
		})
	})

	return r
}
