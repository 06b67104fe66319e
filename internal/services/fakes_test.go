package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/ports"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
)

// Fakes em memória para os testes de serviço. Os repositórios reais são
// cobertos pelos testes do pacote postgres.

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (fakeHasher) Compare(hash, plain string) bool {
	return hash == "hashed:"+plain
}

type fakeTokens struct{}

func (fakeTokens) Generate(userID, email string) (string, error) {
	return "token:" + userID + ":" + email, nil
}

func (fakeTokens) Verify(token string) (*ports.TokenClaims, error) {
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 || parts[0] != "token" {
		return nil, fmt.Errorf("invalid token")
	}
	return &ports.TokenClaims{UserID: parts[1], Email: parts[2]}, nil
}

type fakeUnitOfWork struct {
	calls int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *fakeUnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (u *fakeUnitOfWork) Rollback(ctx context.Context) error                 { return nil }

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	u.calls++
	return fn(ctx)
}

type fakeUserRepo struct {
	users map[string]*entities.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.seq++
	copied := *user
	copied.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[copied.ID] = &copied
	*user = copied
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entities.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) HardDelete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	var result []*entities.User
	for _, user := range r.users {
		if user.DeletedAt != nil {
			continue
		}
		if filters.Email != "" && !strings.Contains(user.Email.String(), filters.Email) {
			continue
		}
		if filters.Status != nil && user.Status != *filters.Status {
			continue
		}
		copied := *user
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}

func (r *fakeUserRepo) ListDeleted(ctx context.Context) ([]*entities.User, error) {
	var result []*entities.User
	for _, user := range r.users {
		if user.DeletedAt == nil {
			continue
		}
		copied := *user
		result = append(result, &copied)
	}
	return result, nil
}

type fakeTaxProfileRepo struct {
	profiles map[string]*entities.TaxProfile
	seq      int
}

func newFakeTaxProfileRepo() *fakeTaxProfileRepo {
	return &fakeTaxProfileRepo{profiles: make(map[string]*entities.TaxProfile)}
}

func (r *fakeTaxProfileRepo) Create(ctx context.Context, profile *entities.TaxProfile) error {
	r.seq++
	copied := *profile
	copied.ID = fmt.Sprintf("profile-%d", r.seq)
	r.profiles[copied.ID] = &copied
	*profile = copied
	return nil
}

func (r *fakeTaxProfileRepo) FindByID(ctx context.Context, id string) (*entities.TaxProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeTaxProfileRepo) Update(ctx context.Context, profile *entities.TaxProfile) error {
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeTaxProfileRepo) HardDelete(ctx context.Context, id string) error {
	delete(r.profiles, id)
	return nil
}

func (r *fakeTaxProfileRepo) List(ctx context.Context, filters repositories.TaxProfileFilters) ([]*entities.TaxProfile, int64, error) {
	var result []*entities.TaxProfile
	for _, profile := range r.profiles {
		if profile.DeletedAt != nil {
			continue
		}
		if filters.OwnerUserID != "" && profile.UserID != filters.OwnerUserID {
			continue
		}
		if filters.CompanyName != "" && !strings.Contains(profile.CompanyName, filters.CompanyName) {
			continue
		}
		if filters.VATNumber != "" && !strings.Contains(profile.VATNumber, filters.VATNumber) {
			continue
		}
		copied := *profile
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entities.Invoice
	seq      int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entities.Invoice)}
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entities.Invoice) error {
	r.seq++
	copied := *invoice
	copied.ID = fmt.Sprintf("invoice-%d", r.seq)
	r.invoices[copied.ID] = &copied
	*invoice = copied
	return nil
}

func (r *fakeInvoiceRepo) FindByID(ctx context.Context, id string) (*entities.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	copied := *invoice
	return &copied, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, invoice *entities.Invoice) error {
	copied := *invoice
	r.invoices[invoice.ID] = &copied
	return nil
}

func (r *fakeInvoiceRepo) HardDelete(ctx context.Context, id string) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, filters repositories.InvoiceFilters) ([]*entities.Invoice, int64, error) {
	var result []*entities.Invoice
	for _, invoice := range r.invoices {
		if invoice.DeletedAt != nil {
			continue
		}
		if filters.Status != nil && invoice.Status != *filters.Status {
			continue
		}
		if filters.IssueDate != nil && !invoice.IssueDate.Equal(*filters.IssueDate) {
			continue
		}
		copied := *invoice
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}
