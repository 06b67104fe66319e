package entities

import (
	"time"

	domainerrors "github.com/rafabene/invoicing-backend/internal/domain/errors"
)

// Invoice representa uma fatura emitida por um perfil fiscal.
// O invoiceNumber é único dentro do escopo do perfil fiscal.
type Invoice struct {
	ID            string
	TaxProfileID  string
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	Amount        float64
	Currency      string // código de 3 letras, default EUR
	Status        InvoiceStatus
	Description   *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft delete

	// TaxProfile é carregado junto quando a consulta faz o join
	TaxProfile *TaxProfile
}

// IsDeleted verifica se a fatura foi deletada (soft delete)
func (i *Invoice) IsDeleted() bool {
	return i.DeletedAt != nil
}

// SoftDelete marca a fatura como deletada. Qualquer status permite soft delete.
func (i *Invoice) SoftDelete() {
	now := time.Now()
	i.DeletedAt = &now
}

// Restore restaura uma fatura deletada
func (i *Invoice) Restore() {
	i.DeletedAt = nil
}

// CanHardDelete indica se a fatura pode ser removida permanentemente.
// Somente DRAFT e CANCELLED; faturas emitidas são imutáveis nesse aspecto.
func (i *Invoice) CanHardDelete() bool {
	return i.Status.Deletable()
}

// Validate valida regras de negócio da entidade Invoice
func (i *Invoice) Validate() error {
	if i.TaxProfileID == "" {
		return domainerrors.NewValidationError("tax profile id is required")
	}

	if i.InvoiceNumber == "" {
		return domainerrors.NewValidationError("invoice number is required")
	}

	if i.Amount <= 0 {
		return domainerrors.NewValidationError("amount must be positive")
	}

	if len(i.Currency) != 3 {
		return domainerrors.NewValidationError("currency must be a 3-letter code")
	}

	if !i.Status.Valid() {
		return domainerrors.NewValidationError("invalid invoice status")
	}

	return nil
}
