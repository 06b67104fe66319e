package dto

import (
	"time"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
	"github.com/rafabene/invoicing-backend/internal/services"
)

// CreateInvoiceRequest representa a requisição para criar uma fatura
type CreateInvoiceRequest struct {
	TaxProfileID  string    `json:"taxProfileId" binding:"required,uuid"`
	InvoiceNumber string    `json:"invoiceNumber" binding:"required,min=1,max=50"`
	IssueDate     time.Time `json:"issueDate" binding:"required"`
	DueDate       time.Time `json:"dueDate" binding:"required"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	Currency      string    `json:"currency" binding:"omitempty,len=3"`
	Status        string    `json:"status" binding:"omitempty,oneof=DRAFT PENDING PAID CANCELLED OVERDUE"`
	Description   *string   `json:"description"`
	Notes         *string   `json:"notes"`
}

// UpdateInvoiceRequest representa uma atualização parcial de fatura.
// O taxProfileId é imutável e por isso não aparece aqui.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string    `json:"invoiceNumber" binding:"omitempty,min=1,max=50"`
	IssueDate     *time.Time `json:"issueDate"`
	DueDate       *time.Time `json:"dueDate"`
	Amount        *float64   `json:"amount" binding:"omitempty,gt=0"`
	Currency      *string    `json:"currency" binding:"omitempty,len=3"`
	Status        *string    `json:"status" binding:"omitempty,oneof=DRAFT PENDING PAID CANCELLED OVERDUE"`
	Description   *string    `json:"description"`
	Notes         *string    `json:"notes"`
}

// InvoiceQuery representa os filtros de listagem de faturas
type InvoiceQuery struct {
	Page   int        `form:"page" binding:"omitempty,min=1"`
	Limit  int        `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string     `form:"status" binding:"omitempty,oneof=DRAFT PENDING PAID CANCELLED OVERDUE"`
	Date   *time.Time `form:"date" time_format:"2006-01-02"`
}

// InvoiceTaxProfileSummary é a visão condensada do perfil fiscal nas
// listagens de faturas
type InvoiceTaxProfileSummary struct {
	CompanyName string  `json:"companyName"`
	VATNumber   string  `json:"vatNumber"`
	Email       *string `json:"email,omitempty"`
}

// InvoiceResponse representa a resposta de uma fatura. Em findOne/create/
// update o perfil fiscal completo vem junto.
type InvoiceResponse struct {
	ID            string              `json:"id"`
	TaxProfileID  string              `json:"taxProfileId"`
	InvoiceNumber string              `json:"invoiceNumber"`
	IssueDate     time.Time           `json:"issueDate"`
	DueDate       time.Time           `json:"dueDate"`
	Amount        float64             `json:"amount"`
	Currency      string              `json:"currency"`
	Status        string              `json:"status"`
	Description   *string             `json:"description,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	DeletedAt     *time.Time          `json:"deletedAt,omitempty"`
	TaxProfile    *TaxProfileResponse `json:"taxProfile,omitempty"`
}

// InvoiceListItem é um item da listagem: fatura + perfil fiscal condensado
type InvoiceListItem struct {
	ID            string                    `json:"id"`
	TaxProfileID  string                    `json:"taxProfileId"`
	InvoiceNumber string                    `json:"invoiceNumber"`
	IssueDate     time.Time                 `json:"issueDate"`
	DueDate       time.Time                 `json:"dueDate"`
	Amount        float64                   `json:"amount"`
	Currency      string                    `json:"currency"`
	Status        string                    `json:"status"`
	TaxProfile    *InvoiceTaxProfileSummary `json:"taxProfile,omitempty"`
}

// InvoiceListResponse é o envelope de listagem de faturas
type InvoiceListResponse struct {
	Data []InvoiceListItem `json:"data"`
	Meta ListMeta          `json:"meta"`
}

// ToCreateInvoiceInput converte a requisição para o input do serviço
func (r *CreateInvoiceRequest) ToCreateInvoiceInput() services.CreateInvoiceInput {
	return services.CreateInvoiceInput{
		TaxProfileID:  r.TaxProfileID,
		InvoiceNumber: r.InvoiceNumber,
		IssueDate:     r.IssueDate,
		DueDate:       r.DueDate,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Status:        entities.InvoiceStatus(r.Status),
		Description:   r.Description,
		Notes:         r.Notes,
	}
}

// ToUpdateInvoiceInput converte a requisição para o input do serviço
func (r *UpdateInvoiceRequest) ToUpdateInvoiceInput() services.UpdateInvoiceInput {
	input := services.UpdateInvoiceInput{
		InvoiceNumber: r.InvoiceNumber,
		IssueDate:     r.IssueDate,
		DueDate:       r.DueDate,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Description:   r.Description,
		Notes:         r.Notes,
	}
	if r.Status != nil {
		status := entities.InvoiceStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// ToInvoiceFilters converte a query para os filtros do repositório
func (q *InvoiceQuery) ToInvoiceFilters() repositories.InvoiceFilters {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	filters := repositories.InvoiceFilters{
		IssueDate: q.Date,
		Page:      q.Page,
		Limit:     q.Limit,
	}
	if q.Status != "" {
		status := entities.InvoiceStatus(q.Status)
		filters.Status = &status
	}
	return filters
}

// ToInvoiceResponse converte uma entidade Invoice para a resposta completa
func ToInvoiceResponse(invoice *entities.Invoice) InvoiceResponse {
	response := InvoiceResponse{
		ID:            invoice.ID,
		TaxProfileID:  invoice.TaxProfileID,
		InvoiceNumber: invoice.InvoiceNumber,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		Amount:        invoice.Amount,
		Currency:      invoice.Currency,
		Status:        string(invoice.Status),
		Description:   invoice.Description,
		Notes:         invoice.Notes,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
		DeletedAt:     invoice.DeletedAt,
	}

	if invoice.TaxProfile != nil {
		profile := ToTaxProfileResponse(invoice.TaxProfile)
		response.TaxProfile = &profile
	}

	return response
}

// ToInvoiceListItems converte faturas para itens de listagem com o perfil
// fiscal condensado
func ToInvoiceListItems(invoices []*entities.Invoice) []InvoiceListItem {
	items := make([]InvoiceListItem, len(invoices))
	for i, invoice := range invoices {
		item := InvoiceListItem{
			ID:            invoice.ID,
			TaxProfileID:  invoice.TaxProfileID,
			InvoiceNumber: invoice.InvoiceNumber,
			IssueDate:     invoice.IssueDate,
			DueDate:       invoice.DueDate,
			Amount:        invoice.Amount,
			Currency:      invoice.Currency,
			Status:        string(invoice.Status),
		}
		if invoice.TaxProfile != nil {
			item.TaxProfile = &InvoiceTaxProfileSummary{
				CompanyName: invoice.TaxProfile.CompanyName,
				VATNumber:   invoice.TaxProfile.VATNumber,
				Email:       invoice.TaxProfile.Email,
			}
		}
		items[i] = item
	}
	return items
}
