// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/SurveyOS/SurveyOS-api/internal/auth"
	"github.com/SurveyOS/SurveyOS-api/internal/config"
	"github.com/SurveyOS/SurveyOS-api/internal/email"
	"github.com/SurveyOS/SurveyOS-api/internal/handler"
	"github.com/SurveyOS/SurveyOS-api/internal/middleware"
	"github.com/SurveyOS/SurveyOS-api/internal/repository"
	"github.com/SurveyOS/SurveyOS-api/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	themeRepo := repository.NewThemeRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Initialize services
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, cfg)
	companyService := service.NewCompanyService(companyRepo, userRepo, emailService, cfg)
	workspaceService := service.NewWorkspaceService(workspaceRepo, userRepo, companyRepo, emailService, cfg)
	surveyService := service.NewSurveyService(surveyRepo, questionRepo)
	questionService := service.NewQuestionService(questionRepo)
	themeService := service.NewThemeService(themeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyService)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	surveyHandler := handler.NewSurveyHandler(surveyService)
	questionHandler := handler.NewQuestionHandler(questionService)
	themeHandler := handler.NewThemeHandler(themeService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/auth/login", authHandler.LoginHandler)
			r.Post("/auth/google", authHandler.GoogleLoginHandler)
			r.Post("/users/create", userHandler.CreateUserHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Get("/auth/me", authHandler.MeHandler)
			r.Post("/auth/refresh", authHandler.RefreshTokenHandler)

			r.Route("/company", func(r chi.Router) {
				r.Post("/create", companyHandler.CreateCompanyHandler)
				r.Get("/{id}", companyHandler.GetCompanyHandler)
				r.Post("/add-user", companyHandler.AddUserHandler)
				r.Delete("/{id}/users/{userID}", companyHandler.RemoveUserHandler)
			})

			r.Route("/workspace", func(r chi.Router) {
				r.Post("/create", workspaceHandler.CreateWorkspaceHandler)
				r.Get("/{id}", workspaceHandler.GetWorkspaceHandler)
				r.Patch("/{id}/members", workspaceHandler.UpdateMembersHandler)
				r.Delete("/{id}", workspaceHandler.DeleteWorkspaceHandler)
			})

			r.Route("/survey", func(r chi.Router) {
				r.Post("/create", surveyHandler.CreateSurveyHandler)
				r.Get("/{id}", surveyHandler.GetSurveyHandler)
				r.Patch("/{id}", surveyHandler.UpdateSurveyHandler)
				r.Post("/{id}/questions", surveyHandler.AddQuestionHandler)
				r.Get("/{id}/history", surveyHandler.GetSurveyHistoryHandler)
				r.Delete("/{id}", surveyHandler.DeleteSurveyHandler)
				r.Post("/template", surveyHandler.CreateTemplateHandler)
				r.Delete("/template/{id}", surveyHandler.DeleteTemplateHandler)
			})

			r.Route("/question", func(r chi.Router) {
				r.Post("/create", questionHandler.CreateQuestionHandler)
				r.Get("/{id}", questionHandler.GetQuestionHandler)
				r.Patch("/{id}", questionHandler.UpdateQuestionHandler)
				r.Post("/{id}/copy", questionHandler.CopyQuestionHandler)
				r.Delete("/{id}", questionHandler.DeleteQuestionHandler)
			})

			r.Route("/theme", func(r chi.Router) {
				r.Post("/create", themeHandler.CreateThemeHandler)
				r.Get("/{id}", themeHandler.GetThemeHandler)
				r.Patch("/{id}", themeHandler.UpdateThemeHandler)
				r.Get("/{id}/history", themeHandler.GetThemeHistoryHandler)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
