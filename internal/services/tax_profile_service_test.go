package services

import (
	"context"
	errs "errors"
	"testing"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
)

func newProfileService(repo *fakeTaxProfileRepo) *TaxProfileService {
	return NewTaxProfileService(repo, noopLogger{})
}

func createProfile(t *testing.T, svc *TaxProfileService, ownerID, vat string) *entities.TaxProfile {
	t.Helper()

	profile, err := svc.Create(context.Background(), ownerID, CreateTaxProfileInput{
		CompanyName: "ACME Ltda",
		VATNumber:   vat,
		Address:     "Rua das Flores 100",
		City:        "Lisboa",
		PostalCode:  "1000-001",
		Country:     "PT",
	})
	if err != nil {
		t.Fatalf("erro inesperado na criação: %v", err)
	}
	return profile
}

func TestTaxProfileService_Create(t *testing.T) {
	t.Run("o dono é sempre o caller", func(t *testing.T) {
		svc := newProfileService(newFakeTaxProfileRepo())

		profile := createProfile(t, svc, "user-1", "PT123456789")

		if profile.UserID != "user-1" {
			t.Errorf("esperava dono user-1, obteve %s", profile.UserID)
		}
	})

	t.Run("valida país ISO-3166 alpha-2", func(t *testing.T) {
		svc := newProfileService(newFakeTaxProfileRepo())

		_, err := svc.Create(context.Background(), "user-1", CreateTaxProfileInput{
			CompanyName: "ACME Ltda",
			VATNumber:   "PT123456789",
			Address:     "Rua das Flores 100",
			City:        "Lisboa",
			PostalCode:  "1000-001",
			Country:     "Portugal",
		})
		if err == nil {
			t.Error("esperava erro de validação de país")
		}
	})
}

func TestTaxProfileService_Update(t *testing.T) {
	t.Run("merge parcial preserva o dono", func(t *testing.T) {
		svc := newProfileService(newFakeTaxProfileRepo())
		profile := createProfile(t, svc, "user-1", "PT123456789")

		novoNome := "ACME Internacional"
		updated, err := svc.Update(context.Background(), profile.ID, UpdateTaxProfileInput{
			CompanyName: &novoNome,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if updated.CompanyName != "ACME Internacional" {
			t.Errorf("esperava ACME Internacional, obteve %s", updated.CompanyName)
		}
		if updated.UserID != "user-1" {
			t.Errorf("dono deveria ser imutável, obteve %s", updated.UserID)
		}
		if updated.VATNumber != "PT123456789" {
			t.Errorf("vatNumber deveria ser mantido, obteve %s", updated.VATNumber)
		}
	})

	t.Run("ID inexistente retorna ErrTaxProfileNotFound", func(t *testing.T) {
		svc := newProfileService(newFakeTaxProfileRepo())

		nome := "Qualquer"
		_, err := svc.Update(context.Background(), "nao-existe", UpdateTaxProfileInput{CompanyName: &nome})
		if !errs.Is(err, errors.ErrTaxProfileNotFound) {
			t.Errorf("esperava ErrTaxProfileNotFound, obteve %v", err)
		}
	})
}

func TestTaxProfileService_List(t *testing.T) {
	t.Run("filtro por dono restringe a listagem", func(t *testing.T) {
		svc := newProfileService(newFakeTaxProfileRepo())
		createProfile(t, svc, "user-1", "PT111111111")
		createProfile(t, svc, "user-1", "PT222222222")
		createProfile(t, svc, "user-2", "PT333333333")

		profiles, total, err := svc.List(context.Background(), repositories.TaxProfileFilters{
			OwnerUserID: "user-1",
			Page:        1,
			Limit:       10,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if total != 2 || len(profiles) != 2 {
			t.Errorf("esperava 2 perfis do user-1, obteve %d", total)
		}
		for _, profile := range profiles {
			if profile.UserID != "user-1" {
				t.Errorf("perfil de outro dono vazou na listagem: %s", profile.UserID)
			}
		}
	})

	t.Run("perfis soft-deletados ficam fora da listagem", func(t *testing.T) {
		svc := newProfileService(newFakeTaxProfileRepo())
		profile := createProfile(t, svc, "user-1", "PT111111111")

		if err := svc.SoftDelete(context.Background(), profile.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		_, total, err := svc.List(context.Background(), repositories.TaxProfileFilters{
			OwnerUserID: "user-1",
			Page:        1,
			Limit:       10,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if total != 0 {
			t.Errorf("esperava listagem vazia, obteve %d", total)
		}
	})
}

func TestTaxProfileService_Lifecycle(t *testing.T) {
	t.Run("soft delete e restore", func(t *testing.T) {
		svc := newProfileService(newFakeTaxProfileRepo())
		profile := createProfile(t, svc, "user-1", "PT111111111")

		if err := svc.SoftDelete(context.Background(), profile.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		found, err := svc.Get(context.Background(), profile.ID)
		if err != nil {
			t.Fatalf("busca por ID deve ignorar o soft delete: %v", err)
		}
		if found.DeletedAt == nil {
			t.Error("esperava deletedAt preenchido")
		}

		restored, err := svc.Restore(context.Background(), profile.ID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if restored.DeletedAt != nil {
			t.Error("deletedAt deveria estar limpo após restore")
		}
	})

	t.Run("hard delete remove de vez", func(t *testing.T) {
		svc := newProfileService(newFakeTaxProfileRepo())
		profile := createProfile(t, svc, "user-1", "PT111111111")

		if err := svc.HardDelete(context.Background(), profile.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		_, err := svc.Get(context.Background(), profile.ID)
		if !errs.Is(err, errors.ErrTaxProfileNotFound) {
			t.Errorf("esperava ErrTaxProfileNotFound, obteve %v", err)
		}
	})

	t.Run("operações em ID inexistente retornam ErrTaxProfileNotFound", func(t *testing.T) {
		svc := newProfileService(newFakeTaxProfileRepo())

		if err := svc.SoftDelete(context.Background(), "nao-existe"); !errs.Is(err, errors.ErrTaxProfileNotFound) {
			t.Errorf("soft delete: esperava ErrTaxProfileNotFound, obteve %v", err)
		}
		if _, err := svc.Restore(context.Background(), "nao-existe"); !errs.Is(err, errors.ErrTaxProfileNotFound) {
			t.Errorf("restore: esperava ErrTaxProfileNotFound, obteve %v", err)
		}
		if err := svc.HardDelete(context.Background(), "nao-existe"); !errs.Is(err, errors.ErrTaxProfileNotFound) {
			t.Errorf("hard delete: esperava ErrTaxProfileNotFound, obteve %v", err)
		}
	})
}
