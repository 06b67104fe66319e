package entities

import (
	"time"

	domainerrors "github.com/rafabene/invoicing-backend/internal/domain/errors"
)

// TaxProfile representa uma entidade de faturamento (empresa) pertencente a
// um usuário. O dono nunca muda depois da criação.
type TaxProfile struct {
	ID          string
	UserID      string
	CompanyName string
	VATNumber   string
	TaxCode     *string
	Address     string
	City        string
	PostalCode  string
	Country     string // código ISO-3166 alpha-2
	Phone       *string
	Email       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft delete
}

// IsDeleted verifica se o perfil fiscal foi deletado (soft delete)
func (p *TaxProfile) IsDeleted() bool {
	return p.DeletedAt != nil
}

// SoftDelete marca o perfil fiscal como deletado
func (p *TaxProfile) SoftDelete() {
	now := time.Now()
	p.DeletedAt = &now
}

// Restore restaura um perfil fiscal deletado
func (p *TaxProfile) Restore() {
	p.DeletedAt = nil
}

// OwnedBy verifica se o perfil fiscal pertence ao usuário informado
func (p *TaxProfile) OwnedBy(userID string) bool {
	return p.UserID == userID
}

// Validate valida regras de negócio da entidade TaxProfile
func (p *TaxProfile) Validate() error {
	if p.UserID == "" {
		return domainerrors.NewValidationError("owner user id is required")
	}

	if p.CompanyName == "" {
		return domainerrors.NewValidationError("company name is required")
	}

	if p.VATNumber == "" {
		return domainerrors.NewValidationError("vat number is required")
	}

	if len(p.Country) != 2 {
		return domainerrors.NewValidationError("country must be an ISO-3166 alpha-2 code")
	}

	return nil
}
