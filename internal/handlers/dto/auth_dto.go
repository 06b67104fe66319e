package dto

import (
	"github.com/rafabene/invoicing-backend/internal/services"
)

// RegisterRequest representa a requisição de registro
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse é a resposta de registro/login: token assinado + usuário
// sem a senha
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToRegisterInput converte a requisição para o input do serviço
func (r *RegisterRequest) ToRegisterInput() services.RegisterInput {
	return services.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// ToLoginInput converte a requisição para o input do serviço
func (r *LoginRequest) ToLoginInput() services.LoginInput {
	return services.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}
