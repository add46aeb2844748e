package main

import (
	"github.com/sirupsen/logrus"

	"github.com/qazimatch/qazimatch/internal/config"
	"github.com/qazimatch/qazimatch/internal/database"
	"github.com/qazimatch/qazimatch/internal/handlers"
	"github.com/qazimatch/qazimatch/internal/services"
	"github.com/qazimatch/qazimatch/internal/storage"
)

func main() {
	// 1. Configuration
	cfg := config.Load()

	// 2. Database
	db, err := database.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	logrus.Info("database connection established")

	// 3. Resume storage
	resumes, err := storage.NewLocalStore(cfg.ResumeDir, cfg.ResumeBaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("resume storage init failed")
	}

	// 4. Core services
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	jobService := services.NewJobService(db)
	appService := services.NewApplicationService(db, resumes)

	// 5. Optional candidate matcher (needs a Gemini key)
	matcher := services.NewMatchService(cfg.GeminiAPIKey)
	if matcher != nil {
		logrus.Info("candidate matcher enabled")
	}
	headhuntService := services.NewHeadhuntService(db, matcher)

	// 6. Resume relay (mailer is nil-tolerant when SMTP is unconfigured)
	mailer := services.NewSMTPMailer(cfg)
	var emailService *services.EmailService
	if mailer != nil {
		emailService = services.NewEmailService(mailer, cfg.OperatorMail)
	} else {
		logrus.Warn("SMTP not configured; resume relay will drop submissions")
		emailService = services.NewEmailService(nil, cfg.OperatorMail)
	}

	// 7. Router
	r := handlers.NewRouter(handlers.Deps{
		Auth:          handlers.NewAuthHandler(authService),
		Jobs:          handlers.NewJobHandler(jobService),
		Applications:  handlers.NewApplicationHandler(appService),
		Headhunts:     handlers.NewHeadhuntHandler(headhuntService),
		Resumes:       handlers.NewResumeHandler(emailService),
		JWTSecret:     cfg.JWTSecret,
		ResumeDir:     cfg.ResumeDir,
		ResumeBaseURL: cfg.ResumeBaseURL,
	})

	logrus.WithField("addr", cfg.Addr).Info("server starting")
	if err := r.Run(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server failed to start")
	}
}
