package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gestionale-hr/hr-backend-go/internal/config"
	appHTTP "github.com/gestionale-hr/hr-backend-go/internal/handler/http"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/email"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/oauth"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/storage"
	"github.com/gestionale-hr/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/gestionale-hr/hr-backend-go/internal/service/attendance"
	serviceAuth "github.com/gestionale-hr/hr-backend-go/internal/service/auth"
	documentService "github.com/gestionale-hr/hr-backend-go/internal/service/document"
	employeeService "github.com/gestionale-hr/hr-backend-go/internal/service/employee"
	"github.com/gestionale-hr/hr-backend-go/internal/service/leave"
	notificationService "github.com/gestionale-hr/hr-backend-go/internal/service/notification"
	overtimeService "github.com/gestionale-hr/hr-backend-go/internal/service/overtime"
	scheduleService "github.com/gestionale-hr/hr-backend-go/internal/service/schedule"
	settingsService "github.com/gestionale-hr/hr-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	unifiedAttendanceRepo := postgresql.NewUnifiedAttendanceRepository(db)
	sickLeaveRepo := postgresql.NewSickLeaveRepository(db)
	businessTripRepo := postgresql.NewBusinessTripRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	emailTemplateRepo := postgresql.NewEmailTemplateRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	mailer := email.NewMailer(cfg.SMTP)

	notificationSvc := notificationService.NewNotificationService(emailTemplateRepo, notificationRepo, mailer)
	authSvc := serviceAuth.NewAuthService(userRepo, refreshTokenRepo, JWTService, GoogleService)
	leaveSvc := leave.NewLeaveService(
		txManager,
		leaveRequestRepo,
		leaveBalanceRepo,
		employeeRepo,
		unifiedAttendanceRepo,
		sickLeaveRepo,
		businessTripRepo,
		workScheduleRepo,
		notificationSvc,
	)
	overtimeSvc := overtimeService.NewOvertimeService(
		overtimeRepo,
		leaveRequestRepo,
		sickLeaveRepo,
		businessTripRepo,
		unifiedAttendanceRepo,
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		txManager,
		attendanceRepo,
		unifiedAttendanceRepo,
		sickLeaveRepo,
		businessTripRepo,
	)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo)
	employeeSvc := employeeService.NewEmployeeService(txManager, userRepo, employeeRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, fileStorage)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, JWTService),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Overtime:     appHTTP.NewOvertimeHandler(overtimeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Document:     appHTTP.NewDocumentHandler(documentSvc),
		Settings:     appHTTP.NewSettingsHandler(settingsSvc),
		Webhook:      appHTTP.NewWebhookHandler(),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
