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

// InvoiceRepository implementa repositories.InvoiceRepository
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository cria um novo InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) repositories.InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *entities.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	model := r.toModel(invoice)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicateInvoiceNumber
		}
		return err
	}

	invoice.CreatedAt = time.Unix(model.CreatedAt, 0)
	invoice.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

// FindByID busca por chave primária ignorando o soft delete, com o perfil
// fiscal completo carregado junto
func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*entities.Invoice, error) {
	var model InvoiceModel

	db := r.getDB(ctx)
	if err := db.Preload("TaxProfile").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *entities.Invoice) error {
	model := r.toModel(invoice)

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicateInvoiceNumber
		}
		return err
	}
	invoice.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *InvoiceRepository) HardDelete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	return db.Where("id = ?", id).Delete(&InvoiceModel{}).Error
}

func (r *InvoiceRepository) List(ctx context.Context, filters repositories.InvoiceFilters) ([]*entities.Invoice, int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&InvoiceModel{})

	// Soft delete: listagens ignoram registros deletados
	query = query.Where("deleted_at IS NULL")

	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.IssueDate != nil {
		query = query.Where("issue_date = ?", filters.IssueDate.Unix())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filters.Page, filters.Limit)
	offset := (page - 1) * limit

	var models []*InvoiceModel
	if err := query.Preload("TaxProfile").Order("issue_date DESC").
		Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	invoices := make([]*entities.Invoice, 0, len(models))
	for _, model := range models {
		invoices = append(invoices, r.toEntity(model))
	}
	return invoices, total, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *InvoiceRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *InvoiceRepository) toModel(invoice *entities.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:            invoice.ID,
		TaxProfileID:  invoice.TaxProfileID,
		InvoiceNumber: invoice.InvoiceNumber,
		IssueDate:     invoice.IssueDate.Unix(),
		DueDate:       invoice.DueDate.Unix(),
		Amount:        invoice.Amount,
		Currency:      invoice.Currency,
		Status:        string(invoice.Status),
		Description:   invoice.Description,
		Notes:         invoice.Notes,
		CreatedAt:     unixOrZero(invoice.CreatedAt),
		UpdatedAt:     unixOrZero(invoice.UpdatedAt),
		DeletedAt:     unixPtr(invoice.DeletedAt),
	}
}

func (r *InvoiceRepository) toEntity(model *InvoiceModel) *entities.Invoice {
	invoice := &entities.Invoice{
		ID:            model.ID,
		TaxProfileID:  model.TaxProfileID,
		InvoiceNumber: model.InvoiceNumber,
		IssueDate:     time.Unix(model.IssueDate, 0),
		DueDate:       time.Unix(model.DueDate, 0),
		Amount:        model.Amount,
		Currency:      model.Currency,
		Status:        entities.InvoiceStatus(model.Status),
		Description:   model.Description,
		Notes:         model.Notes,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0),
		DeletedAt:     timePtr(model.DeletedAt),
	}

	if model.TaxProfile != nil {
		invoice.TaxProfile = taxProfileToEntity(model.TaxProfile)
	}

	return invoice
}
