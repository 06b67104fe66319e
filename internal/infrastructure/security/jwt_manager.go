package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/invoicing-backend/internal/domain/ports"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// jwtClaims é o payload assinado: {id, email} mais os claims registrados
// (iat, exp)
type jwtClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager implementa ports.TokenManager usando HS256
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

// NewJWTManager cria um novo gerenciador de tokens assinados com o segredo
// compartilhado e a expiração informada (24h por padrão na configuração)
func NewJWTManager(secret string, expiry time.Duration) ports.TokenManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (m *JWTManager) Generate(userID, email string) (string, error) {
	now := time.Now()

	claims := jwtClaims{
		ID:    userID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) Verify(tokenStr string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID: claims.ID,
		Email:  claims.Email,
	}, nil
}
