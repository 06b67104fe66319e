package postgres

import (
	"context"
	errs "errors"
	"testing"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
)

func TestTaxProfileRepository_Create(t *testing.T) {
	t.Run("preenche timestamps na criação", func(t *testing.T) {
		db := setupTestDB(t)
		user := seedUser(t, db)
		profile := seedProfile(t, db, user.ID)

		if profile.CreatedAt.IsZero() || profile.UpdatedAt.IsZero() {
			t.Error("esperava createdAt e updatedAt preenchidos")
		}
		if profile.CreatedAt.Year() < 2000 {
			t.Errorf("createdAt fora da realidade: %v", profile.CreatedAt)
		}
	})

	t.Run("vat duplicado vira ErrDuplicateTaxProfile", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaxProfileRepository(db)
		user := seedUser(t, db)
		existing := seedProfile(t, db, user.ID)

		duplicate := &entities.TaxProfile{
			UserID:      user.ID,
			CompanyName: "Outra Empresa",
			VATNumber:   existing.VATNumber,
			Address:     "Av. Central 1",
			City:        "Porto",
			PostalCode:  "4000-001",
			Country:     "PT",
		}
		err := repo.Create(context.Background(), duplicate)
		if !errs.Is(err, domainerrors.ErrDuplicateTaxProfile) {
			t.Errorf("esperava ErrDuplicateTaxProfile, obteve %v", err)
		}
	})
}

func TestTaxProfileRepository_List(t *testing.T) {
	t.Run("filtro por dono restringe a listagem", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaxProfileRepository(db)

		owner := seedUser(t, db)
		other := seedUser(t, db)
		seedProfile(t, db, owner.ID)
		seedProfile(t, db, owner.ID)
		seedProfile(t, db, other.ID)

		profiles, total, err := repo.List(context.Background(), repositories.TaxProfileFilters{
			OwnerUserID: owner.ID,
			Page:        1,
			Limit:       10,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if total != 2 || len(profiles) != 2 {
			t.Errorf("esperava 2 perfis do dono, obteve %d", total)
		}
		for _, profile := range profiles {
			if profile.UserID != owner.ID {
				t.Errorf("perfil de outro dono vazou: %s", profile.UserID)
			}
		}
	})

	t.Run("exclui soft-deletados", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaxProfileRepository(db)
		user := seedUser(t, db)
		profile := seedProfile(t, db, user.ID)

		profile.SoftDelete()
		if err := repo.Update(context.Background(), profile); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		_, total, err := repo.List(context.Background(), repositories.TaxProfileFilters{
			OwnerUserID: user.ID,
			Page:        1,
			Limit:       10,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if total != 0 {
			t.Errorf("esperava listagem vazia, obteve %d", total)
		}

		// FindByID continua enxergando
		found, err := repo.FindByID(context.Background(), profile.ID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if found == nil || found.DeletedAt == nil {
			t.Error("FindByID deveria retornar o perfil deletado")
		}
	})

	t.Run("filtro por substring de companyName", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTaxProfileRepository(db)
		user := seedUser(t, db)

		profile := seedProfile(t, db, user.ID)
		profile.CompanyName = "Padaria Central"
		if err := repo.Update(context.Background(), profile); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		seedProfile(t, db, user.ID)

		profiles, total, err := repo.List(context.Background(), repositories.TaxProfileFilters{
			OwnerUserID: user.ID,
			CompanyName: "Padaria",
			Page:        1,
			Limit:       10,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if total != 1 || len(profiles) != 1 {
			t.Errorf("esperava 1 resultado, obteve %d", total)
		}
	})
}

func TestTaxProfileRepository_HardDelete(t *testing.T) {
	t.Run("remove a linha e cascateia as faturas", func(t *testing.T) {
		db := setupTestDB(t)
		profileRepo := NewTaxProfileRepository(db)
		invoiceRepo := NewInvoiceRepository(db)

		user := seedUser(t, db)
		profile := seedProfile(t, db, user.ID)
		invoice := seedInvoice(t, db, profile.ID, "INV-001", entities.InvoiceStatusDraft)

		if err := profileRepo.HardDelete(context.Background(), profile.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if found, _ := profileRepo.FindByID(context.Background(), profile.ID); found != nil {
			t.Error("perfil deveria ter sumido")
		}
		if found, _ := invoiceRepo.FindByID(context.Background(), invoice.ID); found != nil {
			t.Error("fatura deveria ter ido junto no cascade")
		}
	})
}
