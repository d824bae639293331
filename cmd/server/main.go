package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"editorial/internal/auth"
	"editorial/internal/config"
	"editorial/internal/domain"
	"editorial/internal/domain/models"
	"editorial/internal/domain/repositories"
	"editorial/internal/export"
	"editorial/internal/handler"
	"editorial/internal/history"
	"editorial/internal/middleware"
	"editorial/internal/repository/postgres"
	"editorial/internal/service"
	"editorial/internal/service/generation"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logOutput := io.Writer(os.Stdout)
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Database
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool, logger)
	if err := userRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	logger.Info("database connected")

	if cfg.SeedUser {
		if err := seedDefaultUser(ctx, userRepo); err != nil {
			log.Fatalf("Failed to seed default user: %v", err)
		}
	}

	// Token issuing is always local; verification is local too unless a
	// remote JWKS endpoint is configured.
	tokenService, err := auth.NewTokenService(cfg.JWTSecret, logger)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}
	var verifier auth.TokenVerifier = tokenService
	if cfg.AuthJWKSURL != "" {
		verifier, err = auth.NewJWKSVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWKS verifier: %v", err)
		}
		logger.Info("token verification via remote JWKS", "url", cfg.AuthJWKSURL)
	}
	defer verifier.Close()

	// Generation
	geminiClient, err := generation.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	generationService := generation.NewService(geminiClient, logger)

	// Export
	rasterizer := export.NewRodRasterizer(cfg.ChromeBin)
	defer rasterizer.Close()
	exportService := export.NewService(rasterizer, logger)

	// History
	var store history.Store
	if cfg.HistoryDir != "" {
		store, err = history.NewFileStore(cfg.HistoryDir)
		if err != nil {
			log.Fatalf("Failed to open history store: %v", err)
		}
	} else {
		store = history.NewMemoryStore()
	}
	historyService := history.NewService(store, logger)

	authService := service.NewAuthService(userRepo, tokenService, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	generationHandler := handler.NewGenerationHandler(generationService, logger)
	documentHandler := handler.NewDocumentHandler(exportService, logger)
	historyHandler := handler.NewHistoryHandler(historyService, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.Health)

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/auth/verify", authHandler.Verify)
	mux.HandleFunc("GET /api/protected", authHandler.Protected)

	// Generation
	mux.HandleFunc("POST /api/generate", generationHandler.Generate)

	// Rendering and export
	mux.HandleFunc("POST /api/render", documentHandler.Render)
	mux.HandleFunc("POST /api/export", documentHandler.Export)

	// Saved projects
	mux.HandleFunc("POST /api/projects", historyHandler.Save)
	mux.HandleFunc("GET /api/projects", historyHandler.List)
	mux.HandleFunc("GET /api/projects/{id}", historyHandler.Get)

	// Middleware chain, applied in reverse order (they wrap each other).
	// Order: CORS → Recovery → Auth → Routes
	var httpHandler http.Handler = mux
	httpHandler = middleware.AuthMiddleware(verifier)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation and export calls are slow
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedDefaultUser creates the default editor account when it does not exist
// yet. Used for local development and demos.
func seedDefaultUser(ctx context.Context, users repositories.UserRepository) error {
	const (
		email    = "editor@elite.com"
		password = "senha123"
		name     = "Editor Elite"
	)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.BcryptCost)
	if err != nil {
		return err
	}

	err = users.Create(ctx, &models.User{
		Email:     email,
		SenhaHash: string(hash),
		Nome:      name,
	})
	if err != nil && !errors.Is(err, domain.ErrConflict) {
		return err
	}
	return nil
}
