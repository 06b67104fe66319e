package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/invoicing-backend/internal/handlers/dto"
	"github.com/rafabene/invoicing-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers lista usuários não deletados com paginação e filtros
//
//	@Summary		Lista usuários
//	@Description	Retorna usuários não deletados, com filtros por email (parcial) e status
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			page	query		int		false	"Página (padrão 1)"
//	@Param			limit	query		int		false	"Itens por página (padrão 10, máximo 100)"
//	@Param			email	query		string	false	"Filtro parcial por email"
//	@Param			status	query		string	false	"Filtro por status"	Enums(ACTIVE, INACTIVE, SUSPENDED)
//	@Success		200		{object}	dto.UserListResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Router			/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.UserQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), query.ToUserFilters())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Data: dto.ToUserResponses(users),
		Meta: dto.NewListMeta(total, query.Page, query.Limit),
	})
}

// ListDeletedUsers lista os usuários soft-deletados
//
//	@Summary		Lista usuários deletados
//	@Description	Retorna a visão condensada (id, email, deletedAt) dos usuários soft-deletados
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DeletedUserResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/users/deleted [get]
func (h *UserHandler) ListDeletedUsers(c *gin.Context) {
	users, err := h.userService.ListDeleted(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeletedUserResponses(users))
}

// GetUser busca um usuário por ID
//
//	@Summary		Busca um usuário
//	@Description	Retorna o usuário pelo ID, mesmo que soft-deletado
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do usuário"
//	@Success		200	{object}	dto.UserResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// CreateUser cria um novo usuário
//
//	@Summary		Cria um usuário
//	@Description	Cria um usuário com a senha em hash. Email duplicado responde 409.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateUserRequest	true	"Dados do usuário"
//	@Success		201		{object}	dto.UserResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.ToCreateUserInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// UpdateUser aplica uma atualização parcial a um usuário
//
//	@Summary		Atualiza um usuário
//	@Description	Merge parcial: campos ausentes são mantidos. Senha presente é re-hasheada.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"ID do usuário"
//	@Param			request	body		dto.UpdateUserRequest	true	"Campos a atualizar"
//	@Success		200		{object}	dto.UserResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), req.ToUpdateUserInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// SoftDeleteUser marca um usuário como deletado
//
//	@Summary		Soft-deleta um usuário
//	@Description	Marca o usuário como deletado; ele some das listagens mas segue recuperável
//	@Tags			users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID do usuário"
//	@Success		204
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/users/{id} [delete]
func (h *UserHandler) SoftDeleteUser(c *gin.Context) {
	if err := h.userService.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HardDeleteUser remove um usuário permanentemente
//
//	@Summary		Remove um usuário permanentemente
//	@Description	Remove a linha do usuário; perfis fiscais e faturas dele vão junto (cascade)
//	@Tags			users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID do usuário"
//	@Success		204
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/users/{id}/permanent [delete]
func (h *UserHandler) HardDeleteUser(c *gin.Context) {
	if err := h.userService.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreUser limpa a marca de soft delete de um usuário
//
//	@Summary		Restaura um usuário
//	@Description	Limpa o deletedAt e retorna o usuário restaurado
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do usuário"
//	@Success		200	{object}	dto.UserResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/users/{id}/restore [post]
func (h *UserHandler) RestoreUser(c *gin.Context) {
	user, err := h.userService.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
