package services

import (
	"context"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/ports"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
	"github.com/rafabene/invoicing-backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de negócio de autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput representa as credenciais de login
type LoginInput struct {
	Email    string
	Password string
}

// Register cria uma nova conta ACTIVE e emite um token para ela.
// Emails de contas soft-deletadas continuam reservados.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, *entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return "", nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		s.logger.Warn("registration failed, email already exists", "email", email.String())
		return "", nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return "", nil, err
	}

	user := &entities.User{
		Email:     email,
		Password:  hash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Status:    entities.UserStatusActive,
	}

	if err := user.Validate(); err != nil {
		return "", nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Email.String())
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user registered successfully", "user_id", user.ID, "email", user.Email.String())
	return token, user, nil
}

// Login autentica um usuário e emite um token.
// Contas deletadas e suspensas são bloqueadas ANTES da comparação de senha:
// uma conta bloqueada recebe o erro específico mesmo com a senha correta
// (decisão de design explícita, não uma otimização de segurança).
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, *entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		s.logger.Warn("login failed, user not found", "email", email.String())
		return "", nil, errors.ErrInvalidCredentials
	}

	if user.IsDeleted() {
		s.logger.Warn("login blocked, account is deleted", "user_id", user.ID, "email", user.Email.String())
		return "", nil, errors.ErrAccountDeleted
	}

	if user.IsSuspended() {
		s.logger.Warn("login blocked, account is suspended", "user_id", user.ID, "email", user.Email.String())
		return "", nil, errors.ErrAccountSuspended
	}

	if !s.hasher.Compare(user.Password, input.Password) {
		s.logger.Warn("login failed, invalid password", "user_id", user.ID, "email", user.Email.String())
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email.String())
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user logged in successfully", "user_id", user.ID)
	return token, user, nil
}
