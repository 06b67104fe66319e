package repositories

import (
	"context"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	// FindByID busca por chave primária ignorando o soft delete,
	// para permitir fluxos de restore
	FindByID(ctx context.Context, id string) (*entities.User, error)
	// FindByEmail também ignora o soft delete: o login precisa distinguir
	// conta deletada de credenciais inválidas
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	HardDelete(ctx context.Context, id string) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, int64, error)
	ListDeleted(ctx context.Context) ([]*entities.User, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Email  string // substring match
	Status *entities.UserStatus
	Page   int // Página (começa em 1)
	Limit  int // Itens por página (default: 10, max: 100)
}
