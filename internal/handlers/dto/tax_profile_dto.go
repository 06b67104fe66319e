package dto

import (
	"time"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
	"github.com/rafabene/invoicing-backend/internal/services"
)

// CreateTaxProfileRequest representa a requisição para criar um perfil
// fiscal. O userId nunca vem do corpo: é a identidade do caller.
type CreateTaxProfileRequest struct {
	CompanyName string  `json:"companyName" binding:"required,min=1,max=255"`
	VATNumber   string  `json:"vatNumber" binding:"required,min=1,max=50"`
	TaxCode     *string `json:"taxCode" binding:"omitempty,max=50"`
	Address     string  `json:"address" binding:"required,min=1,max=500"`
	City        string  `json:"city" binding:"required,min=1,max=100"`
	PostalCode  string  `json:"postalCode" binding:"required,min=1,max=20"`
	Country     string  `json:"country" binding:"required,len=2"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

// UpdateTaxProfileRequest representa uma atualização parcial de perfil fiscal
type UpdateTaxProfileRequest struct {
	CompanyName *string `json:"companyName" binding:"omitempty,min=1,max=255"`
	VATNumber   *string `json:"vatNumber" binding:"omitempty,min=1,max=50"`
	TaxCode     *string `json:"taxCode" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,min=1,max=500"`
	City        *string `json:"city" binding:"omitempty,min=1,max=100"`
	PostalCode  *string `json:"postalCode" binding:"omitempty,min=1,max=20"`
	Country     *string `json:"country" binding:"omitempty,len=2"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

// TaxProfileQuery representa os filtros de listagem de perfis fiscais
type TaxProfileQuery struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=100"`
	CompanyName string `form:"companyName"`
	VATNumber   string `form:"vatNumber"`
}

// TaxProfileResponse representa a resposta de um perfil fiscal
type TaxProfileResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	CompanyName string     `json:"companyName"`
	VATNumber   string     `json:"vatNumber"`
	TaxCode     *string    `json:"taxCode,omitempty"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	PostalCode  string     `json:"postalCode"`
	Country     string     `json:"country"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

// TaxProfileListResponse é o envelope de listagem de perfis fiscais
type TaxProfileListResponse struct {
	Data []TaxProfileResponse `json:"data"`
	Meta BasicListMeta        `json:"meta"`
}

// ToCreateTaxProfileInput converte a requisição para o input do serviço
func (r *CreateTaxProfileRequest) ToCreateTaxProfileInput() services.CreateTaxProfileInput {
	return services.CreateTaxProfileInput{
		CompanyName: r.CompanyName,
		VATNumber:   r.VATNumber,
		TaxCode:     r.TaxCode,
		Address:     r.Address,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
		Phone:       r.Phone,
		Email:       r.Email,
	}
}

// ToUpdateTaxProfileInput converte a requisição para o input do serviço
func (r *UpdateTaxProfileRequest) ToUpdateTaxProfileInput() services.UpdateTaxProfileInput {
	return services.UpdateTaxProfileInput{
		CompanyName: r.CompanyName,
		VATNumber:   r.VATNumber,
		TaxCode:     r.TaxCode,
		Address:     r.Address,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
		Phone:       r.Phone,
		Email:       r.Email,
	}
}

// ToTaxProfileFilters converte a query para os filtros do repositório.
// ownerUserID restringe a listagem ao dono (vazio = sem restrição).
func (q *TaxProfileQuery) ToTaxProfileFilters(ownerUserID string) repositories.TaxProfileFilters {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	return repositories.TaxProfileFilters{
		OwnerUserID: ownerUserID,
		CompanyName: q.CompanyName,
		VATNumber:   q.VATNumber,
		Page:        q.Page,
		Limit:       q.Limit,
	}
}

// ToTaxProfileResponse converte uma entidade TaxProfile para a resposta
func ToTaxProfileResponse(profile *entities.TaxProfile) TaxProfileResponse {
	return TaxProfileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		CompanyName: profile.CompanyName,
		VATNumber:   profile.VATNumber,
		TaxCode:     profile.TaxCode,
		Address:     profile.Address,
		City:        profile.City,
		PostalCode:  profile.PostalCode,
		Country:     profile.Country,
		Phone:       profile.Phone,
		Email:       profile.Email,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
		DeletedAt:   profile.DeletedAt,
	}
}

// ToTaxProfileResponses converte uma lista de perfis fiscais
func ToTaxProfileResponses(profiles []*entities.TaxProfile) []TaxProfileResponse {
	responses := make([]TaxProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = ToTaxProfileResponse(profile)
	}
	return responses
}
