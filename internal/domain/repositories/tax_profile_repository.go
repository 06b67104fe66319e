package repositories

import (
	"context"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
)

// TaxProfileRepository define a interface para persistência de perfis fiscais
type TaxProfileRepository interface {
	Create(ctx context.Context, profile *entities.TaxProfile) error
	// FindByID busca por chave primária ignorando o soft delete
	FindByID(ctx context.Context, id string) (*entities.TaxProfile, error)
	Update(ctx context.Context, profile *entities.TaxProfile) error
	HardDelete(ctx context.Context, id string) error
	List(ctx context.Context, filters TaxProfileFilters) ([]*entities.TaxProfile, int64, error)
}

// TaxProfileFilters contém filtros para listagem de perfis fiscais
type TaxProfileFilters struct {
	// OwnerUserID restringe a listagem aos perfis do dono informado.
	// Vazio significa sem restrição (caminho interno/privilegiado).
	OwnerUserID string
	CompanyName string // substring match
	VATNumber   string // substring match
	Page        int
	Limit       int
}
