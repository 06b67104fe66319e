package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/valueobjects"
)

// setupTestDB abre um SQLite em memória com o mesmo schema e a mesma
// tradução de erros do banco real
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// SQLite não aplica FKs por padrão
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

var testSeq int

func newTestUser(t *testing.T) *entities.User {
	t.Helper()

	testSeq++
	email, err := valueobjects.NewEmail(fmt.Sprintf("user%d@example.com", testSeq))
	if err != nil {
		t.Fatalf("invalid test email: %v", err)
	}

	return &entities.User{
		Email:     email,
		Password:  "hash",
		FirstName: "Maria",
		LastName:  "Silva",
		Status:    entities.UserStatusActive,
	}
}

func seedUser(t *testing.T, db *gorm.DB) *entities.User {
	t.Helper()

	repo := NewUserRepository(db)
	user := newTestUser(t)
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedProfile(t *testing.T, db *gorm.DB, userID string) *entities.TaxProfile {
	t.Helper()

	testSeq++
	repo := NewTaxProfileRepository(db)
	profile := &entities.TaxProfile{
		UserID:      userID,
		CompanyName: "ACME Ltda",
		VATNumber:   fmt.Sprintf("PT%09d", testSeq),
		Address:     "Rua das Flores 100",
		City:        "Lisboa",
		PostalCode:  "1000-001",
		Country:     "PT",
	}
	if err := repo.Create(context.Background(), profile); err != nil {
		t.Fatalf("failed to seed tax profile: %v", err)
	}
	return profile
}

func seedInvoice(t *testing.T, db *gorm.DB, profileID, number string, status entities.InvoiceStatus) *entities.Invoice {
	t.Helper()

	repo := NewInvoiceRepository(db)
	invoice := &entities.Invoice{
		TaxProfileID:  profileID,
		InvoiceNumber: number,
		IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:        150.50,
		Currency:      "EUR",
		Status:        status,
	}
	if err := repo.Create(context.Background(), invoice); err != nil {
		t.Fatalf("failed to seed invoice: %v", err)
	}
	return invoice
}
