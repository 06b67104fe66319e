package dto

import (
	"time"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
	"github.com/rafabene/invoicing-backend/internal/services"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Status    string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// UpdateUserRequest representa a requisição para atualizar um usuário
// (merge parcial: campos ausentes são mantidos)
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=72"`
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1,max=100"`
	Status    *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// UserQuery representa os filtros de listagem de usuários
type UserQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Email  string `form:"email"`
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// UserResponse representa a resposta de um usuário.
// A senha nunca é serializada.
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// UserListResponse é o envelope de listagem de usuários
type UserListResponse struct {
	Data []UserResponse `json:"data"`
	Meta ListMeta       `json:"meta"`
}

// DeletedUserResponse é a visão condensada dos usuários soft-deletados
type DeletedUserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// ToCreateUserInput converte a requisição para o input do serviço
func (r *CreateUserRequest) ToCreateUserInput() services.CreateUserInput {
	return services.CreateUserInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Status:    entities.UserStatus(r.Status),
	}
}

// ToUpdateUserInput converte a requisição para o input do serviço
func (r *UpdateUserRequest) ToUpdateUserInput() services.UpdateUserInput {
	input := services.UpdateUserInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
	if r.Status != nil {
		status := entities.UserStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// ToUserFilters converte a query para os filtros do repositório,
// aplicando os defaults de paginação (página 1, 10 itens)
func (q *UserQuery) ToUserFilters() repositories.UserFilters {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	filters := repositories.UserFilters{
		Email: q.Email,
		Page:  q.Page,
		Limit: q.Limit,
	}
	if q.Status != "" {
		status := entities.UserStatus(q.Status)
		filters.Status = &status
	}
	return filters
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		DeletedAt: user.DeletedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToDeletedUserResponses converte usuários deletados para a visão condensada
func ToDeletedUserResponses(users []*entities.User) []DeletedUserResponse {
	responses := make([]DeletedUserResponse, len(users))
	for i, user := range users {
		responses[i] = DeletedUserResponse{
			ID:        user.ID,
			Email:     user.Email.String(),
			DeletedAt: user.DeletedAt,
		}
	}
	return responses
}
