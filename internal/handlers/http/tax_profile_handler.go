package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/handlers/dto"
	"github.com/rafabene/invoicing-backend/internal/handlers/middleware"
	"github.com/rafabene/invoicing-backend/internal/services"
)

// TaxProfileHandler lida com requisições HTTP de perfis fiscais.
// Perfil fiscal é o único recurso com escopo por dono: toda operação sobre
// um perfil de outro usuário responde 403 (distinto do 404 de inexistente).
type TaxProfileHandler struct {
	profileService *services.TaxProfileService
}

// NewTaxProfileHandler cria um novo TaxProfileHandler
func NewTaxProfileHandler(profileService *services.TaxProfileService) *TaxProfileHandler {
	return &TaxProfileHandler{
		profileService: profileService,
	}
}

// ListTaxProfiles lista os perfis fiscais do caller
//
//	@Summary		Lista perfis fiscais
//	@Description	Retorna os perfis fiscais não deletados do usuário autenticado
//	@Tags			tax-profiles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page		query		int		false	"Página (padrão 1)"
//	@Param			limit		query		int		false	"Itens por página (padrão 10, máximo 100)"
//	@Param			companyName	query		string	false	"Filtro parcial por razão social"
//	@Param			vatNumber	query		string	false	"Filtro parcial por VAT"
//	@Success		200			{object}	dto.TaxProfileListResponse
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		401			{object}	dto.ErrorResponse
//	@Router			/tax-profiles [get]
func (h *TaxProfileHandler) ListTaxProfiles(c *gin.Context) {
	var query dto.TaxProfileQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	ownerUserID := ""
	if caller, ok := middleware.IdentityFromContext(c); ok {
		ownerUserID = caller.ID
	}

	profiles, total, err := h.profileService.List(c.Request.Context(), query.ToTaxProfileFilters(ownerUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaxProfileListResponse{
		Data: dto.ToTaxProfileResponses(profiles),
		Meta: dto.BasicListMeta{
			Total: total,
			Page:  query.Page,
			Limit: query.Limit,
		},
	})
}

// GetTaxProfile busca um perfil fiscal por ID
//
//	@Summary		Busca um perfil fiscal
//	@Description	Retorna o perfil pelo ID. Perfil de outro usuário responde 403.
//	@Tags			tax-profiles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do perfil fiscal"
//	@Success		200	{object}	dto.TaxProfileResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		403	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/tax-profiles/{id} [get]
func (h *TaxProfileHandler) GetTaxProfile(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !h.callerOwns(c, profile) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c, "error.forbidden.detail"))
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxProfileResponse(profile))
}

// CreateTaxProfile cria um perfil fiscal pertencente ao caller
//
//	@Summary		Cria um perfil fiscal
//	@Description	O dono é sempre o usuário autenticado; o corpo não carrega userId
//	@Tags			tax-profiles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateTaxProfileRequest	true	"Dados do perfil fiscal"
//	@Success		201		{object}	dto.TaxProfileResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/tax-profiles [post]
func (h *TaxProfileHandler) CreateTaxProfile(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized.detail"))
		return
	}

	var req dto.CreateTaxProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), caller.ID, req.ToCreateTaxProfileInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaxProfileResponse(profile))
}

// UpdateTaxProfile aplica uma atualização parcial a um perfil fiscal
//
//	@Summary		Atualiza um perfil fiscal
//	@Description	Merge parcial: campos ausentes são mantidos. O dono nunca muda.
//	@Tags			tax-profiles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"ID do perfil fiscal"
//	@Param			request	body		dto.UpdateTaxProfileRequest	true	"Campos a atualizar"
//	@Success		200		{object}	dto.TaxProfileResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Failure		403		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/tax-profiles/{id} [patch]
func (h *TaxProfileHandler) UpdateTaxProfile(c *gin.Context) {
	var req dto.UpdateTaxProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	id := c.Param("id")

	existing, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !h.callerOwns(c, existing) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c, "error.forbidden.detail"))
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), id, req.ToUpdateTaxProfileInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxProfileResponse(profile))
}

// SoftDeleteTaxProfile marca um perfil fiscal como deletado
//
//	@Summary		Soft-deleta um perfil fiscal
//	@Tags			tax-profiles
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID do perfil fiscal"
//	@Success		204
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		403	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/tax-profiles/{id} [delete]
func (h *TaxProfileHandler) SoftDeleteTaxProfile(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !h.callerOwns(c, existing) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c, "error.forbidden.detail"))
		return
	}

	if err := h.profileService.SoftDelete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HardDeleteTaxProfile remove um perfil fiscal permanentemente
//
//	@Summary		Remove um perfil fiscal permanentemente
//	@Description	Remove a linha; as faturas do perfil vão junto (cascade)
//	@Tags			tax-profiles
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID do perfil fiscal"
//	@Success		204
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		403	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/tax-profiles/{id}/permanent [delete]
func (h *TaxProfileHandler) HardDeleteTaxProfile(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !h.callerOwns(c, existing) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c, "error.forbidden.detail"))
		return
	}

	if err := h.profileService.HardDelete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreTaxProfile limpa a marca de soft delete de um perfil fiscal
//
//	@Summary		Restaura um perfil fiscal
//	@Tags			tax-profiles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do perfil fiscal"
//	@Success		200	{object}	dto.TaxProfileResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		403	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/tax-profiles/{id}/restore [post]
func (h *TaxProfileHandler) RestoreTaxProfile(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !h.callerOwns(c, existing) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c, "error.forbidden.detail"))
		return
	}

	profile, err := h.profileService.Restore(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxProfileResponse(profile))
}

// callerOwns verifica a posse do perfil. Sem identidade no contexto a
// checagem é vácua: a rota protegida garante que isso não acontece em
// produção, mas o comportamento fica explícito.
func (h *TaxProfileHandler) callerOwns(c *gin.Context, profile *entities.TaxProfile) bool {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		return true
	}
	return profile.OwnedBy(caller.ID)
}
