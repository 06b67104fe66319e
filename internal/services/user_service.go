package services

import (
	"context"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/ports"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
	"github.com/rafabene/invoicing-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Status    entities.UserStatus // vazio vira ACTIVE
}

// UpdateUserInput representa uma atualização parcial de usuário.
// Campos nil são mantidos como estão.
type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Status    *entities.UserStatus
}

// List retorna uma página de usuários não deletados e o total sob o
// mesmo filtro
func (s *UserService) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	return s.userRepo.List(ctx, filters)
}

// ListDeleted retorna os usuários soft-deletados
func (s *UserService) ListDeleted(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.ListDeleted(ctx)
}

// Get busca um usuário por ID (ignora o soft delete)
func (s *UserService) Get(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// Create cria um novo usuário com a senha já em hash
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("creating user", "email", email.String())

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("user creation failed, email already exists", "email", email.String())
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entities.UserStatusActive
	}

	user := &entities.User{
		Email:     email,
		Password:  hash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Status:    status,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created successfully", "user_id", user.ID)
	return user, nil
}

// Update aplica uma atualização parcial. Senha presente é re-hasheada
// antes de persistir.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Warn("update failed, user not found", "user_id", id)
		return nil, errors.ErrUserNotFound
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		user.Email = email
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Status != nil {
		user.Status = *input.Status
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

// SoftDelete marca o usuário como deletado
func (s *UserService) SoftDelete(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrUserNotFound
	}

	user.SoftDelete()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user soft deleted", "user_id", id)
	return nil
}

// Restore limpa a marca de soft delete
func (s *UserService) Restore(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	user.Restore()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user restored", "user_id", id)
	return user, nil
}

// HardDelete remove a linha; o cascade do FK remove os perfis fiscais do
// usuário e as faturas deles
func (s *UserService) HardDelete(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		s.logger.Warn("hard deletion failed, user not found", "user_id", id)
		return errors.ErrUserNotFound
	}

	if err := s.userRepo.HardDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Warn("user hard deleted", "user_id", id)
	return nil
}
