package ports

// PasswordHasher define a interface para hashing de senhas
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// TokenClaims é o payload carregado por um bearer token
type TokenClaims struct {
	UserID string
	Email  string
}

// TokenManager define a interface para emissão e verificação de tokens
// assinados com expiração
type TokenManager interface {
	Generate(userID, email string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
