package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/invoicing-backend/internal/handlers/dto"
	"github.com/rafabene/invoicing-backend/internal/services"
)

// InvoiceHandler lida com requisições HTTP de faturas
type InvoiceHandler struct {
	invoiceService *services.InvoiceService
}

// NewInvoiceHandler cria um novo InvoiceHandler
func NewInvoiceHandler(invoiceService *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// ListInvoices lista faturas não deletadas
//
//	@Summary		Lista faturas
//	@Description	Retorna faturas não deletadas ordenadas por issueDate decrescente, com o perfil fiscal condensado
//	@Tags			invoices
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page	query		int		false	"Página (padrão 1)"
//	@Param			limit	query		int		false	"Itens por página (padrão 10, máximo 100)"
//	@Param			status	query		string	false	"Filtro por status"	Enums(DRAFT, PENDING, PAID, CANCELLED, OVERDUE)
//	@Param			date	query		string	false	"Filtro por data de emissão (YYYY-MM-DD)"
//	@Success		200		{object}	dto.InvoiceListResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Router			/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var query dto.InvoiceQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), query.ToInvoiceFilters())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceListResponse{
		Data: dto.ToInvoiceListItems(invoices),
		Meta: dto.NewListMeta(total, query.Page, query.Limit),
	})
}

// GetInvoice busca uma fatura por ID
//
//	@Summary		Busca uma fatura
//	@Description	Retorna a fatura pelo ID com o perfil fiscal completo, mesmo que soft-deletada
//	@Tags			invoices
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID da fatura"
//	@Success		200	{object}	dto.InvoiceResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// CreateInvoice cria uma nova fatura
//
//	@Summary		Cria uma fatura
//	@Description	Cria a fatura (padrões: EUR, DRAFT). Número repetido dentro do mesmo perfil fiscal responde 409.
//	@Tags			invoices
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateInvoiceRequest	true	"Dados da fatura"
//	@Success		201		{object}	dto.InvoiceResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req.ToCreateInvoiceInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// UpdateInvoice aplica uma atualização parcial a uma fatura
//
//	@Summary		Atualiza uma fatura
//	@Description	Merge parcial: campos ausentes são mantidos. O perfil fiscal da fatura é imutável.
//	@Tags			invoices
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"ID da fatura"
//	@Param			request	body		dto.UpdateInvoiceRequest	true	"Campos a atualizar"
//	@Success		200		{object}	dto.InvoiceResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/invoices/{id} [patch]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var req dto.UpdateInvoiceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), c.Param("id"), req.ToUpdateInvoiceInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// SoftDeleteInvoice marca uma fatura como deletada
//
//	@Summary		Soft-deleta uma fatura
//	@Description	Qualquer status pode ser soft-deletado; a fatura segue recuperável
//	@Tags			invoices
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID da fatura"
//	@Success		204
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/invoices/{id} [delete]
func (h *InvoiceHandler) SoftDeleteInvoice(c *gin.Context) {
	if err := h.invoiceService.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HardDeleteInvoice remove uma fatura permanentemente
//
//	@Summary		Remove uma fatura permanentemente
//	@Description	Somente DRAFT e CANCELLED. Faturas emitidas respondem 403 com o número da fatura no detalhe.
//	@Tags			invoices
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID da fatura"
//	@Success		204
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		403	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/invoices/{id}/permanent [delete]
func (h *InvoiceHandler) HardDeleteInvoice(c *gin.Context) {
	if err := h.invoiceService.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreInvoice limpa a marca de soft delete de uma fatura
//
//	@Summary		Restaura uma fatura
//	@Tags			invoices
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID da fatura"
//	@Success		200	{object}	dto.InvoiceResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/invoices/{id}/restore [post]
func (h *InvoiceHandler) RestoreInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
