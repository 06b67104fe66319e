package entities

import (
	"time"

	domainerrors "github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/valueobjects"
)

// User representa uma conta de usuário do sistema
type User struct {
	ID        string
	Email     valueobjects.Email
	Password  string // hash bcrypt, nunca o texto puro
	FirstName string
	LastName  string
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// IsSuspended verifica se a conta está suspensa
func (u *User) IsSuspended() bool {
	return u.Status == UserStatusSuspended
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Restore restaura um usuário deletado
func (u *User) Restore() {
	u.DeletedAt = nil
}

// FullName retorna o nome completo do usuário
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return domainerrors.NewValidationError("email is required")
	}

	if u.FirstName == "" {
		return domainerrors.NewValidationError("first name is required")
	}

	if u.LastName == "" {
		return domainerrors.NewValidationError("last name is required")
	}

	if !u.Status.Valid() {
		return domainerrors.NewValidationError("invalid user status")
	}

	return nil
}
