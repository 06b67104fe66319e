package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/ports"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
	"github.com/rafabene/invoicing-backend/internal/infrastructure/i18n"
)

// AuthUserContextKey é a chave usada para armazenar o usuário autenticado
// no contexto do Gin
const AuthUserContextKey = "auth_user"

// AuthMiddleware valida o token Bearer e carrega a identidade do caller
type AuthMiddleware struct {
	tokens   ports.TokenManager
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens ports.TokenManager, userRepo repositories.UserRepository, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
		logger:   logger,
	}
}

// RequireAuth exige um token Bearer válido cujo usuário ainda exista.
// Cada variante de falha responde 401 com um detalhe distinto.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			m.logger.Warn("unauthorized: missing or malformed auth header",
				"ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			m.abortUnauthorized(c, "error.unauthorized.missing_token")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warn("unauthorized: invalid token",
				"ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			m.abortUnauthorized(c, "error.unauthorized.invalid_token")
			return
		}

		// O token pode sobreviver ao usuário (hard delete). Revalidar.
		user, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			m.logger.Warn("unauthorized: user not found",
				"userId", claims.UserID,
				"ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			m.abortUnauthorized(c, "error.unauthorized.user_not_found")
			return
		}

		c.Set(AuthUserContextKey, user)
		c.Next()
	}
}

// IdentityFromContext retorna o usuário autenticado da requisição, se houver
func IdentityFromContext(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(AuthUserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*entities.User)
	if !ok {
		return nil, false
	}

	return user, true
}

// abortUnauthorized responde 401 no formato RFC 7807. O pacote dto depende
// deste pacote, então a resposta é montada aqui mesmo.
func (m *AuthMiddleware) abortUnauthorized(c *gin.Context, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	title := m.translate(c, "error.unauthorized.title")
	detail := m.translate(c, detailKey)

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"type":     baseURL + errors.ProblemTypeUnauthorized,
		"title":    title,
		"status":   http.StatusUnauthorized,
		"detail":   detail,
		"instance": c.Request.URL.Path,
	})
}

func (m *AuthMiddleware) translate(c *gin.Context, key string) string {
	service, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	i18nService, ok := service.(*i18n.Service)
	if !ok {
		return key
	}

	lang := "en"
	if value, exists := c.Get(LanguageContextKey); exists {
		if langStr, ok := value.(string); ok {
			lang = langStr
		}
	}

	return i18nService.T(lang, key)
}
