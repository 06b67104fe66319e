package services

import (
	"context"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/ports"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
)

// TaxProfileService contém a lógica de negócio para perfis fiscais
type TaxProfileService struct {
	profileRepo repositories.TaxProfileRepository
	logger      ports.Logger
}

// NewTaxProfileService cria um novo TaxProfileService
func NewTaxProfileService(
	profileRepo repositories.TaxProfileRepository,
	logger ports.Logger,
) *TaxProfileService {
	return &TaxProfileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateTaxProfileInput representa os dados para criar um perfil fiscal.
// O dono não vem daqui: é sempre forçado a partir da identidade do caller.
type CreateTaxProfileInput struct {
	CompanyName string
	VATNumber   string
	TaxCode     *string
	Address     string
	City        string
	PostalCode  string
	Country     string
	Phone       *string
	Email       *string
}

// UpdateTaxProfileInput representa uma atualização parcial.
// O userId não é atualizável por este caminho.
type UpdateTaxProfileInput struct {
	CompanyName *string
	VATNumber   *string
	TaxCode     *string
	Address     *string
	City        *string
	PostalCode  *string
	Country     *string
	Phone       *string
	Email       *string
}

// List retorna perfis fiscais não deletados; quando o filtro traz um dono,
// a listagem fica restrita a ele
func (s *TaxProfileService) List(ctx context.Context, filters repositories.TaxProfileFilters) ([]*entities.TaxProfile, int64, error) {
	return s.profileRepo.List(ctx, filters)
}

// Get busca um perfil fiscal por ID (ignora o soft delete)
func (s *TaxProfileService) Get(ctx context.Context, id string) (*entities.TaxProfile, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		s.logger.Warn("tax profile not found", "tax_profile_id", id)
		return nil, errors.ErrTaxProfileNotFound
	}
	return profile, nil
}

// Create cria um perfil fiscal pertencente a ownerUserID
func (s *TaxProfileService) Create(ctx context.Context, ownerUserID string, input CreateTaxProfileInput) (*entities.TaxProfile, error) {
	s.logger.Info("creating tax profile",
		"user_id", ownerUserID,
		"company_name", input.CompanyName,
		"vat_number", input.VATNumber,
	)

	profile := &entities.TaxProfile{
		UserID:      ownerUserID,
		CompanyName: input.CompanyName,
		VATNumber:   input.VATNumber,
		TaxCode:     input.TaxCode,
		Address:     input.Address,
		City:        input.City,
		PostalCode:  input.PostalCode,
		Country:     input.Country,
		Phone:       input.Phone,
		Email:       input.Email,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("tax profile created successfully", "tax_profile_id", profile.ID)
	return profile, nil
}

// Update aplica uma atualização parcial, preservando o dono
func (s *TaxProfileService) Update(ctx context.Context, id string, input UpdateTaxProfileInput) (*entities.TaxProfile, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.ErrTaxProfileNotFound
	}

	if input.CompanyName != nil {
		profile.CompanyName = *input.CompanyName
	}
	if input.VATNumber != nil {
		profile.VATNumber = *input.VATNumber
	}
	if input.TaxCode != nil {
		profile.TaxCode = input.TaxCode
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.PostalCode != nil {
		profile.PostalCode = *input.PostalCode
	}
	if input.Country != nil {
		profile.Country = *input.Country
	}
	if input.Phone != nil {
		profile.Phone = input.Phone
	}
	if input.Email != nil {
		profile.Email = input.Email
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("tax profile updated", "tax_profile_id", profile.ID)
	return profile, nil
}

// SoftDelete marca o perfil fiscal como deletado
func (s *TaxProfileService) SoftDelete(ctx context.Context, id string) error {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		return errors.ErrTaxProfileNotFound
	}

	profile.SoftDelete()
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return err
	}

	s.logger.Info("tax profile soft deleted", "tax_profile_id", id)
	return nil
}

// Restore limpa a marca de soft delete
func (s *TaxProfileService) Restore(ctx context.Context, id string) (*entities.TaxProfile, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.ErrTaxProfileNotFound
	}

	profile.Restore()
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("tax profile restored", "tax_profile_id", id)
	return profile, nil
}

// HardDelete remove a linha; o cascade do FK remove as faturas do perfil
func (s *TaxProfileService) HardDelete(ctx context.Context, id string) error {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		s.logger.Warn("hard deletion failed, tax profile not found", "tax_profile_id", id)
		return errors.ErrTaxProfileNotFound
	}

	if err := s.profileRepo.HardDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Warn("tax profile hard deleted", "tax_profile_id", id)
	return nil
}
