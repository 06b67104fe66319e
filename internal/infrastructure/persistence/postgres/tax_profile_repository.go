package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
)

// TaxProfileRepository implementa repositories.TaxProfileRepository
type TaxProfileRepository struct {
	db *gorm.DB
}

// NewTaxProfileRepository cria um novo TaxProfileRepository
func NewTaxProfileRepository(db *gorm.DB) repositories.TaxProfileRepository {
	return &TaxProfileRepository{db: db}
}

func (r *TaxProfileRepository) Create(ctx context.Context, profile *entities.TaxProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	model := r.toModel(profile)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicateTaxProfile
		}
		return err
	}

	profile.CreatedAt = time.Unix(model.CreatedAt, 0)
	profile.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

// FindByID busca por chave primária ignorando o soft delete
func (r *TaxProfileRepository) FindByID(ctx context.Context, id string) (*entities.TaxProfile, error) {
	var model TaxProfileModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return taxProfileToEntity(&model), nil
}

func (r *TaxProfileRepository) Update(ctx context.Context, profile *entities.TaxProfile) error {
	model := r.toModel(profile)

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicateTaxProfile
		}
		return err
	}
	profile.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *TaxProfileRepository) HardDelete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	// Remoção física; o cascade do FK remove as faturas do perfil
	return db.Where("id = ?", id).Delete(&TaxProfileModel{}).Error
}

func (r *TaxProfileRepository) List(ctx context.Context, filters repositories.TaxProfileFilters) ([]*entities.TaxProfile, int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&TaxProfileModel{})

	// Soft delete: listagens ignoram registros deletados
	query = query.Where("deleted_at IS NULL")

	// Escopo por dono: caller não privilegiado só enxerga os próprios perfis
	if filters.OwnerUserID != "" {
		query = query.Where("user_id = ?", filters.OwnerUserID)
	}
	if filters.CompanyName != "" {
		query = query.Where("company_name LIKE ?", "%"+filters.CompanyName+"%")
	}
	if filters.VATNumber != "" {
		query = query.Where("vat_number LIKE ?", "%"+filters.VATNumber+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filters.Page, filters.Limit)
	offset := (page - 1) * limit

	var models []*TaxProfileModel
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	profiles := make([]*entities.TaxProfile, 0, len(models))
	for _, model := range models {
		profiles = append(profiles, taxProfileToEntity(model))
	}
	return profiles, total, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *TaxProfileRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *TaxProfileRepository) toModel(profile *entities.TaxProfile) *TaxProfileModel {
	return &TaxProfileModel{
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
		CreatedAt:   unixOrZero(profile.CreatedAt),
		UpdatedAt:   unixOrZero(profile.UpdatedAt),
		DeletedAt:   unixPtr(profile.DeletedAt),
	}
}

// taxProfileToEntity é compartilhado com o repositório de faturas, que
// carrega o perfil fiscal junto nos joins
func taxProfileToEntity(model *TaxProfileModel) *entities.TaxProfile {
	return &entities.TaxProfile{
		ID:          model.ID,
		UserID:      model.UserID,
		CompanyName: model.CompanyName,
		VATNumber:   model.VATNumber,
		TaxCode:     model.TaxCode,
		Address:     model.Address,
		City:        model.City,
		PostalCode:  model.PostalCode,
		Country:     model.Country,
		Phone:       model.Phone,
		Email:       model.Email,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
		DeletedAt:   timePtr(model.DeletedAt),
	}
}
