package postgres

import (
	"context"
	errs "errors"
	"testing"
)

func TestUnitOfWork_WithTransaction(t *testing.T) {
	t.Run("commit persiste as escritas", func(t *testing.T) {
		db := setupTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewUserRepository(db)

		user := newTestUser(t)
		err := uow.WithTransaction(context.Background(), func(txCtx context.Context) error {
			return repo.Create(txCtx, user)
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		found, err := repo.FindByID(context.Background(), user.ID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if found == nil {
			t.Error("usuário deveria ter sido persistido")
		}
	})

	t.Run("erro no callback desfaz as escritas", func(t *testing.T) {
		db := setupTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewUserRepository(db)

		boom := errs.New("boom")
		user := newTestUser(t)
		err := uow.WithTransaction(context.Background(), func(txCtx context.Context) error {
			if err := repo.Create(txCtx, user); err != nil {
				return err
			}
			return boom
		})
		if !errs.Is(err, boom) {
			t.Fatalf("esperava o erro do callback, obteve %v", err)
		}

		found, err := repo.FindByID(context.Background(), user.ID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if found != nil {
			t.Error("rollback deveria ter desfeito a escrita")
		}
	})
}
