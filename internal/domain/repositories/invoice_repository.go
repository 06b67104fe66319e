package repositories

import (
	"context"
	"time"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
)

// InvoiceRepository define a interface para persistência de faturas
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entities.Invoice) error
	// FindByID busca por chave primária ignorando o soft delete,
	// com o perfil fiscal completo carregado junto
	FindByID(ctx context.Context, id string) (*entities.Invoice, error)
	Update(ctx context.Context, invoice *entities.Invoice) error
	HardDelete(ctx context.Context, id string) error
	// List retorna faturas não deletadas ordenadas por issueDate decrescente,
	// cada uma com o perfil fiscal carregado junto
	List(ctx context.Context, filters InvoiceFilters) ([]*entities.Invoice, int64, error)
}

// InvoiceFilters contém filtros para listagem de faturas
type InvoiceFilters struct {
	Status    *entities.InvoiceStatus
	IssueDate *time.Time // match exato por data de emissão
	Page      int
	Limit     int
}
