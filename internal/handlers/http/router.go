package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/invoicing-backend/docs"
	"github.com/rafabene/invoicing-backend/internal/handlers/middleware"
)

// RouterConfig agrupa o que o router precisa saber do ambiente
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
}

// RouterHandlers agrupa os handlers montados no router
type RouterHandlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	TaxProfile *TaxProfileHandler
	Invoice    *InvoiceHandler
}

// NewRouter monta o engine completo: middlewares globais, rotas públicas de
// autenticação e o grupo protegido por bearer token
func NewRouter(
	cfg RouterConfig,
	i18nMiddleware *middleware.I18nMiddleware,
	authMiddleware *middleware.AuthMiddleware,
	handlers RouterHandlers,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Base URL para os URIs de problema RFC 7807
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	router.Use(i18nMiddleware.DetectLanguage())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", handlers.Auth.Register)
			auth.POST("/login", handlers.Auth.Login)
		}

		protected := v1.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			users := protected.Group("/users")
			{
				users.GET("", handlers.User.ListUsers)
				// Antes de /:id para a rota literal não colidir
				users.GET("/deleted", handlers.User.ListDeletedUsers)
				users.GET("/:id", handlers.User.GetUser)
				users.POST("", handlers.User.CreateUser)
				users.PATCH("/:id", handlers.User.UpdateUser)
				users.DELETE("/:id", handlers.User.SoftDeleteUser)
				users.DELETE("/:id/permanent", handlers.User.HardDeleteUser)
				users.POST("/:id/restore", handlers.User.RestoreUser)
			}

			profiles := protected.Group("/tax-profiles")
			{
				profiles.GET("", handlers.TaxProfile.ListTaxProfiles)
				profiles.GET("/:id", handlers.TaxProfile.GetTaxProfile)
				profiles.POST("", handlers.TaxProfile.CreateTaxProfile)
				profiles.PATCH("/:id", handlers.TaxProfile.UpdateTaxProfile)
				profiles.DELETE("/:id", handlers.TaxProfile.SoftDeleteTaxProfile)
				profiles.DELETE("/:id/permanent", handlers.TaxProfile.HardDeleteTaxProfile)
				profiles.POST("/:id/restore", handlers.TaxProfile.RestoreTaxProfile)
			}

			invoices := protected.Group("/invoices")
			{
				invoices.GET("", handlers.Invoice.ListInvoices)
				invoices.GET("/:id", handlers.Invoice.GetInvoice)
				invoices.POST("", handlers.Invoice.CreateInvoice)
				invoices.PATCH("/:id", handlers.Invoice.UpdateInvoice)
				invoices.DELETE("/:id", handlers.Invoice.SoftDeleteInvoice)
				invoices.DELETE("/:id/permanent", handlers.Invoice.HardDeleteInvoice)
				invoices.POST("/:id/restore", handlers.Invoice.RestoreInvoice)
			}
		}
	}

	return router
}

func corsConfig(allowedOrigins string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"}

	if allowedOrigins == "" || allowedOrigins == "*" {
		config.AllowAllOrigins = true
		return config
	}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}
