package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httphandlers "github.com/rafabene/invoicing-backend/internal/handlers/http"
	"github.com/rafabene/invoicing-backend/internal/handlers/middleware"
	"github.com/rafabene/invoicing-backend/internal/infrastructure/config"
	"github.com/rafabene/invoicing-backend/internal/infrastructure/i18n"
	"github.com/rafabene/invoicing-backend/internal/infrastructure/logging"
	"github.com/rafabene/invoicing-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/invoicing-backend/internal/infrastructure/security"
	"github.com/rafabene/invoicing-backend/internal/services"
)

//	@title			Invoicing Backend API
//	@version		1.0
//	@description	API multi-tenant de back office de faturamento: usuários, perfis fiscais e faturas
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token JWT. Exemplo: "Bearer {token}"

func main() {
	// .env é opcional; variáveis de ambiente reais têm precedência
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting invoicing backend",
		"env", cfg.Env,
		"version", "dev",
	)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Repositories e unidades de infraestrutura
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewTaxProfileRepository(db)
	invoiceRepo := postgres.NewInvoiceRepository(db)
	uow := postgres.NewUnitOfWork(db)

	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)
	tokens := security.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Services
	authService := services.NewAuthService(userRepo, hasher, tokens, logger)
	userService := services.NewUserService(userRepo, hasher, logger)
	profileService := services.NewTaxProfileService(profileRepo, logger)
	invoiceService := services.NewInvoiceService(invoiceRepo, uow, logger)

	// Handlers e middlewares
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo, logger)

	router := httphandlers.NewRouter(
		httphandlers.RouterConfig{
			Env:            cfg.Env,
			BaseURL:        cfg.Server.BaseURL,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		i18nMiddleware,
		authMiddleware,
		httphandlers.RouterHandlers{
			Auth:       httphandlers.NewAuthHandler(authService),
			User:       httphandlers.NewUserHandler(userService),
			TaxProfile: httphandlers.NewTaxProfileHandler(profileService),
			Invoice:    httphandlers.NewInvoiceHandler(invoiceService),
		},
	)

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
