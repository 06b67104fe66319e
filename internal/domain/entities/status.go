package entities

// UserStatus representa o estado de uma conta de usuário
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// Valid verifica se o status de usuário pertence ao vocabulário fechado
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

// InvoiceStatus representa o estado de uma fatura
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
)

// Valid verifica se o status de fatura pertence ao vocabulário fechado
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPaid,
		InvoiceStatusCancelled, InvoiceStatusOverdue:
		return true
	}
	return false
}

// Deletable indica se uma fatura neste status pode ser removida
// permanentemente. Faturas emitidas (PENDING, PAID, OVERDUE) nunca podem.
func (s InvoiceStatus) Deletable() bool {
	return s == InvoiceStatusDraft || s == InvoiceStatusCancelled
}
