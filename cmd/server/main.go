package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"saferide/internal/config"
	"saferide/internal/database"
	"saferide/internal/handlers"
	"saferide/internal/repository"
	"saferide/internal/security"
	"saferide/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	parentRepo := repository.NewParentRepository(db)
	schoolRepo := repository.NewSchoolRepository(db)
	rideRepo := repository.NewRideRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Initialize services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AdminEmails, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	if !emailService.IsEnabled() {
		log.Println("Email notifications disabled (SES_FROM_EMAIL not set)")
	}

	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenDuration)

	authService := service.NewAuthService(parentRepo, tokens, emailService)
	if cfg.MicrosoftClientID != "" {
		authService.ConfigureMicrosoftOAuth(
			cfg.MicrosoftClientID,
			cfg.MicrosoftClientSecret,
			cfg.MicrosoftTenant,
			cfg.AppBaseURL+"/api/auth/microsoft/callback",
		)
		log.Println("Microsoft sign-in enabled")
	}

	creditService := service.NewCreditService(parentRepo, creditRepo)
	rideService := service.NewRideService(rideRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, schoolRepo, parentRepo, emailService)
	verificationService := service.NewVerificationService(parentRepo, documentRepo)
	adminService := service.NewAdminService(parentRepo, emailService)

	// Initialize handlers
	rateLimiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(tokens, rateLimiter)
	authHandler := handlers.NewAuthHandler(authService)
	creditsHandler := handlers.NewCreditsHandler(creditService)
	ridesHandler := handlers.NewRidesHandler(rideService)
	schoolsHandler := handlers.NewSchoolsHandler(enrollmentService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	adminHandler := handlers.NewAdminHandler(adminService)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup routes
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/auth/microsoft", middleware.RateLimit(authHandler.LoginWithMicrosoft))
	mux.HandleFunc("GET /api/auth/profile", middleware.RequireAuth(authHandler.Profile))

	// Credits
	mux.HandleFunc("GET /api/credits", middleware.RequireAuth(creditsHandler.GetBalance))
	mux.HandleFunc("POST /api/credits/add", middleware.RequireAuth(creditsHandler.AddCredit))
	mux.HandleFunc("POST /api/credits/deduct", middleware.RequireAuth(creditsHandler.DeductCredit))
	mux.HandleFunc("GET /api/credits/history", middleware.RequireAuth(creditsHandler.GetHistory))

	// Rides
	mux.HandleFunc("GET /api/rides", middleware.RequireAuth(ridesHandler.GetAvailableRides))
	mux.HandleFunc("POST /api/rides", middleware.RequireAuth(ridesHandler.OfferRide))
	mux.HandleFunc("POST /api/rides/{rideId}/reserve", middleware.RequireAuth(ridesHandler.ReserveSeat))
	mux.HandleFunc("POST /api/rides/{rideId}/deactivate", middleware.RequireAuth(ridesHandler.DeactivateOffer))
	mux.HandleFunc("GET /api/rides/reservations", middleware.RequireAuth(ridesHandler.GetReservations))
	mux.HandleFunc("POST /api/rides/reservations/{id}/cancel", middleware.RequireAuth(ridesHandler.CancelReservation))

	// Schools and enrollments
	mux.HandleFunc("GET /api/schools", schoolsHandler.ListSchools)
	mux.HandleFunc("POST /api/schools", middleware.RequireAdmin(schoolsHandler.CreateSchool))
	mux.HandleFunc("POST /api/schools/enroll", middleware.RequireAuth(schoolsHandler.RequestEnrollment))
	mux.HandleFunc("GET /api/schools/my-enrollments", middleware.RequireAuth(schoolsHandler.MyEnrollments))
	mux.HandleFunc("GET /api/schools/approved-schools", middleware.RequireAuth(schoolsHandler.ApprovedSchools))
	mux.HandleFunc("GET /api/schools/pending-enrollments", middleware.RequireAdmin(schoolsHandler.PendingEnrollments))
	mux.HandleFunc("POST /api/schools/approve-enrollment", middleware.RequireAdmin(schoolsHandler.ApproveEnrollment))
	mux.HandleFunc("POST /api/schools/reject-enrollment", middleware.RequireAdmin(schoolsHandler.RejectEnrollment))

	// Verification
	mux.HandleFunc("POST /api/verification/documents", middleware.RequireAuth(verificationHandler.UploadDocument))
	mux.HandleFunc("GET /api/verification/documents", middleware.RequireAuth(verificationHandler.MyDocuments))
	mux.HandleFunc("GET /api/verification/status", middleware.RequireAuth(verificationHandler.GetStatus))
	mux.HandleFunc("POST /api/verification/verify", middleware.RequireAuth(verificationHandler.Verify))

	// Admin
	mux.HandleFunc("GET /api/admin/pending-users", middleware.RequireAdmin(adminHandler.PendingUsers))
	mux.HandleFunc("POST /api/admin/review-user/{id}", middleware.RequireAdmin(adminHandler.ReviewUser))
	mux.HandleFunc("POST /api/admin/documents/{id}/review", middleware.RequireAdmin(verificationHandler.ReviewDocument))

	// Health
	mux.HandleFunc("GET /healthz", healthHandler.Healthz)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
