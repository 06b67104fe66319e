package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/handlers/dto"
)

// respondServiceError traduz erros de negócio para respostas RFC 7807.
// Erros não reconhecidos viram 500 genérico (o detalhe fica nos logs).
func respondServiceError(c *gin.Context, err error) {
	var notDeletable *errors.InvoiceNotDeletableError
	if errs.As(err, &notDeletable) {
		response := dto.ForbiddenErrorResponseI18n(c, "error.invoice_not_deletable", map[string]interface{}{
			"InvoiceNumber": notDeletable.InvoiceNumber,
			"Status":        notDeletable.Status,
		})
		c.JSON(http.StatusForbidden, response)
		return
	}

	switch {
	// Regras estruturais do domínio que o binding HTTP não cobre
	// (ex.: regex de email mais estrita) respondem 400, não 500
	case errs.Is(err, errors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))

	case errs.Is(err, errors.ErrUserNotFound),
		errs.Is(err, errors.ErrTaxProfileNotFound),
		errs.Is(err, errors.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrEmailAlreadyExists),
		errs.Is(err, errors.ErrDuplicateTaxProfile),
		errs.Is(err, errors.ErrDuplicateInvoiceNumber):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrInvalidCredentials),
		errs.Is(err, errors.ErrAccountDeleted):
		// Conta deletada responde igual a credencial inválida no status,
		// mas com detalhe próprio
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrAccountSuspended):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c, err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}

// respondBindingError responde 400 com os erros de validação do binding
func respondBindingError(c *gin.Context, err error) {
	response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFromBinding(err))
	c.JSON(http.StatusBadRequest, response)
}
