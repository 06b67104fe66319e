package errors

import (
	"errors"
	"fmt"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrTaxProfileNotFound = errors.New("error.tax_profile_not_found")
	ErrInvoiceNotFound    = errors.New("error.invoice_not_found")

	ErrEmailAlreadyExists     = errors.New("error.email_already_exists")
	ErrDuplicateTaxProfile    = errors.New("error.tax_profile_already_exists")
	ErrDuplicateInvoiceNumber = errors.New("error.duplicate_invoice_number")

	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrAccountSuspended   = errors.New("error.account_suspended")
	ErrAccountDeleted     = errors.New("error.account_deleted")

	ErrUnauthorized = errors.New("error.unauthorized")
	ErrForbidden    = errors.New("error.forbidden")

	// ErrValidation classifica violações de regras estruturais das
	// entidades e value objects. Tudo que o envolve responde 400.
	ErrValidation = errors.New("error.validation.detail")
)

// NewValidationError cria um erro de validação com o motivo específico,
// comparável a ErrValidation via errors.Is
func NewValidationError(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrValidation)
}

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// InvoiceNotDeletableError indica tentativa de remoção permanente de uma
// fatura emitida. Carrega o número da fatura para a mensagem ao cliente.
type InvoiceNotDeletableError struct {
	InvoiceNumber string
	Status        string
}

func (e *InvoiceNotDeletableError) Error() string {
	return "error.invoice_not_deletable"
}

// Is permite comparação com errors.Is contra ErrForbidden
func (e *InvoiceNotDeletableError) Is(target error) bool {
	return target == ErrForbidden
}
