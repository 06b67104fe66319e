package services

import (
	"context"
	errs "errors"
	"time"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/ports"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
)

// InvoiceService contém a lógica de negócio para faturas
type InvoiceService struct {
	invoiceRepo repositories.InvoiceRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewInvoiceService cria um novo InvoiceService
func NewInvoiceService(
	invoiceRepo repositories.InvoiceRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		uow:         uow,
		logger:      logger,
	}
}

// CreateInvoiceInput representa os dados para criar uma fatura
type CreateInvoiceInput struct {
	TaxProfileID  string
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	Amount        float64
	Currency      string                 // vazio vira EUR
	Status        entities.InvoiceStatus // vazio vira DRAFT
	Description   *string
	Notes         *string
}

// UpdateInvoiceInput representa uma atualização parcial.
// O taxProfileId é imutável depois da criação.
type UpdateInvoiceInput struct {
	InvoiceNumber *string
	IssueDate     *time.Time
	DueDate       *time.Time
	Amount        *float64
	Currency      *string
	Status        *entities.InvoiceStatus
	Description   *string
	Notes         *string
}

// List retorna faturas não deletadas ordenadas por issueDate decrescente.
// A listagem NÃO é restrita por dono: todo caller autenticado enxerga
// todas as faturas.
func (s *InvoiceService) List(ctx context.Context, filters repositories.InvoiceFilters) ([]*entities.Invoice, int64, error) {
	return s.invoiceRepo.List(ctx, filters)
}

// Get busca uma fatura por ID (ignora o soft delete), com o perfil fiscal
// completo
func (s *InvoiceService) Get(ctx context.Context, id string) (*entities.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		s.logger.Warn("invoice not found", "invoice_id", id)
		return nil, errors.ErrInvoiceNotFound
	}
	return invoice, nil
}

// Create cria uma nova fatura. Número duplicado dentro do mesmo perfil
// fiscal resulta em ErrDuplicateInvoiceNumber.
func (s *InvoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*entities.Invoice, error) {
	s.logger.Info("creating invoice",
		"tax_profile_id", input.TaxProfileID,
		"invoice_number", input.InvoiceNumber,
	)

	currency := input.Currency
	if currency == "" {
		currency = "EUR"
	}
	status := input.Status
	if status == "" {
		status = entities.InvoiceStatusDraft
	}

	invoice := &entities.Invoice{
		TaxProfileID:  input.TaxProfileID,
		InvoiceNumber: input.InvoiceNumber,
		IssueDate:     input.IssueDate,
		DueDate:       input.DueDate,
		Amount:        input.Amount,
		Currency:      currency,
		Status:        status,
		Description:   input.Description,
		Notes:         input.Notes,
	}

	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		if errs.Is(err, errors.ErrDuplicateInvoiceNumber) {
			s.logger.Warn("invoice creation failed, duplicate invoice number",
				"invoice_number", input.InvoiceNumber,
				"tax_profile_id", input.TaxProfileID,
			)
		}
		return nil, err
	}

	s.logger.Info("invoice created successfully",
		"invoice_id", invoice.ID,
		"invoice_number", invoice.InvoiceNumber,
	)

	// Recarrega com o perfil fiscal para a resposta trazer o join
	return s.Get(ctx, invoice.ID)
}

// Update aplica uma atualização parcial e retorna a fatura com o perfil
// fiscal carregado
func (s *InvoiceService) Update(ctx context.Context, id string, input UpdateInvoiceInput) (*entities.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, errors.ErrInvoiceNotFound
	}

	if input.InvoiceNumber != nil {
		invoice.InvoiceNumber = *input.InvoiceNumber
	}
	if input.IssueDate != nil {
		invoice.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.Amount != nil {
		invoice.Amount = *input.Amount
	}
	if input.Currency != nil {
		invoice.Currency = *input.Currency
	}
	if input.Status != nil {
		invoice.Status = *input.Status
	}
	if input.Description != nil {
		invoice.Description = input.Description
	}
	if input.Notes != nil {
		invoice.Notes = input.Notes
	}

	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("invoice updated", "invoice_id", invoice.ID)
	return invoice, nil
}

// SoftDelete marca a fatura como deletada. Não há checagem de status:
// qualquer fatura pode ser soft-deletada.
func (s *InvoiceService) SoftDelete(ctx context.Context, id string) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return errors.ErrInvoiceNotFound
	}

	invoice.SoftDelete()
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return err
	}

	s.logger.Info("invoice soft deleted", "invoice_id", id)
	return nil
}

// Restore limpa a marca de soft delete
func (s *InvoiceService) Restore(ctx context.Context, id string) (*entities.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, errors.ErrInvoiceNotFound
	}

	invoice.Restore()
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("invoice restored", "invoice_id", id)
	return invoice, nil
}

// HardDelete remove a fatura permanentemente. O invariante central do
// sistema: somente DRAFT e CANCELLED podem ser removidas; faturas emitidas
// (PENDING, PAID, OVERDUE) são permanentemente indeletáveis. A checagem e
// a remoção rodam na mesma transação para não haver corrida entre elas.
func (s *InvoiceService) HardDelete(ctx context.Context, id string) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		invoice, err := s.invoiceRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if invoice == nil {
			s.logger.Warn("hard deletion failed, invoice not found", "invoice_id", id)
			return errors.ErrInvoiceNotFound
		}

		if !invoice.CanHardDelete() {
			s.logger.Warn("hard deletion blocked, invalid invoice status",
				"invoice_id", id,
				"invoice_number", invoice.InvoiceNumber,
				"status", string(invoice.Status),
			)
			return &errors.InvoiceNotDeletableError{
				InvoiceNumber: invoice.InvoiceNumber,
				Status:        string(invoice.Status),
			}
		}

		if err := s.invoiceRepo.HardDelete(txCtx, id); err != nil {
			return err
		}

		s.logger.Warn("invoice hard deleted",
			"invoice_id", id,
			"invoice_number", invoice.InvoiceNumber,
		)
		return nil
	})
}
