package services

import (
	"context"
	errs "errors"
	"testing"

	"github.com/rafabene/invoicing-backend/internal/domain/entities"
	"github.com/rafabene/invoicing-backend/internal/domain/errors"
	"github.com/rafabene/invoicing-backend/internal/domain/repositories"
)

func newUserService(repo *fakeUserRepo) *UserService {
	return NewUserService(repo, fakeHasher{}, noopLogger{})
}

func createUser(t *testing.T, svc *UserService, email string) *entities.User {
	t.Helper()

	user, err := svc.Create(context.Background(), CreateUserInput{
		Email:     email,
		Password:  "senha-secreta",
		FirstName: "João",
		LastName:  "Santos",
	})
	if err != nil {
		t.Fatalf("erro inesperado na criação: %v", err)
	}
	return user
}

func TestUserService_Create(t *testing.T) {
	t.Run("cria usuário com status ACTIVE por padrão", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())

		user := createUser(t, svc, "joao@example.com")

		if user.Status != entities.UserStatusActive {
			t.Errorf("esperava ACTIVE, obteve %s", user.Status)
		}
		if user.Password != "hashed:senha-secreta" {
			t.Error("senha deveria estar em hash")
		}
	})

	t.Run("aceita status explícito", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())

		user, err := svc.Create(context.Background(), CreateUserInput{
			Email:     "joao@example.com",
			Password:  "senha-secreta",
			FirstName: "João",
			LastName:  "Santos",
			Status:    entities.UserStatusSuspended,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if user.Status != entities.UserStatusSuspended {
			t.Errorf("esperava SUSPENDED, obteve %s", user.Status)
		}
	})

	t.Run("rejeita email duplicado", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())
		createUser(t, svc, "joao@example.com")

		_, err := svc.Create(context.Background(), CreateUserInput{
			Email:     "joao@example.com",
			Password:  "outra",
			FirstName: "Outro",
			LastName:  "João",
		})
		if !errs.Is(err, errors.ErrEmailAlreadyExists) {
			t.Errorf("esperava ErrEmailAlreadyExists, obteve %v", err)
		}
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("retorna ErrUserNotFound para ID inexistente", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())

		_, err := svc.Get(context.Background(), "nao-existe")
		if !errs.Is(err, errors.ErrUserNotFound) {
			t.Errorf("esperava ErrUserNotFound, obteve %v", err)
		}
	})

	t.Run("retorna usuário soft-deletado", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newUserService(repo)
		user := createUser(t, svc, "joao@example.com")

		if err := svc.SoftDelete(context.Background(), user.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		found, err := svc.Get(context.Background(), user.ID)
		if err != nil {
			t.Fatalf("busca por ID deve ignorar o soft delete: %v", err)
		}
		if found.DeletedAt == nil {
			t.Error("esperava deletedAt preenchido")
		}
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("merge parcial mantém campos ausentes", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())
		user := createUser(t, svc, "joao@example.com")

		novoNome := "Pedro"
		updated, err := svc.Update(context.Background(), user.ID, UpdateUserInput{
			FirstName: &novoNome,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if updated.FirstName != "Pedro" {
			t.Errorf("esperava Pedro, obteve %s", updated.FirstName)
		}
		if updated.LastName != "Santos" {
			t.Errorf("lastName deveria ser mantido, obteve %s", updated.LastName)
		}
		if updated.Email.String() != "joao@example.com" {
			t.Errorf("email deveria ser mantido, obteve %s", updated.Email.String())
		}
	})

	t.Run("senha presente é re-hasheada", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())
		user := createUser(t, svc, "joao@example.com")

		novaSenha := "nova-senha"
		updated, err := svc.Update(context.Background(), user.ID, UpdateUserInput{
			Password: &novaSenha,
		})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if updated.Password != "hashed:nova-senha" {
			t.Error("senha deveria ter sido re-hasheada")
		}
	})

	t.Run("ID inexistente retorna ErrUserNotFound", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())

		nome := "Pedro"
		_, err := svc.Update(context.Background(), "nao-existe", UpdateUserInput{FirstName: &nome})
		if !errs.Is(err, errors.ErrUserNotFound) {
			t.Errorf("esperava ErrUserNotFound, obteve %v", err)
		}
	})
}

func TestUserService_Lifecycle(t *testing.T) {
	t.Run("soft delete tira da listagem e restore devolve", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newUserService(repo)
		user := createUser(t, svc, "joao@example.com")

		if err := svc.SoftDelete(context.Background(), user.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		users, total, err := svc.List(context.Background(), repositories.UserFilters{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if total != 0 || len(users) != 0 {
			t.Errorf("usuário deletado não deveria aparecer na listagem, obteve %d", total)
		}

		deleted, err := svc.ListDeleted(context.Background())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(deleted) != 1 {
			t.Fatalf("esperava 1 usuário deletado, obteve %d", len(deleted))
		}

		restored, err := svc.Restore(context.Background(), user.ID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if restored.DeletedAt != nil {
			t.Error("deletedAt deveria estar limpo após restore")
		}

		_, total, err = svc.List(context.Background(), repositories.UserFilters{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if total != 1 {
			t.Errorf("usuário restaurado deveria voltar à listagem, obteve %d", total)
		}
	})

	t.Run("restore de usuário não deletado é um no-op", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())
		user := createUser(t, svc, "joao@example.com")

		restored, err := svc.Restore(context.Background(), user.ID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if restored.DeletedAt != nil {
			t.Error("esperava deletedAt nulo")
		}
	})

	t.Run("hard delete remove de vez", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newUserService(repo)
		user := createUser(t, svc, "joao@example.com")

		if err := svc.HardDelete(context.Background(), user.ID); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		_, err := svc.Get(context.Background(), user.ID)
		if !errs.Is(err, errors.ErrUserNotFound) {
			t.Errorf("esperava ErrUserNotFound, obteve %v", err)
		}
	})

	t.Run("hard delete de ID inexistente retorna ErrUserNotFound", func(t *testing.T) {
		svc := newUserService(newFakeUserRepo())

		err := svc.HardDelete(context.Background(), "nao-existe")
		if !errs.Is(err, errors.ErrUserNotFound) {
			t.Errorf("esperava ErrUserNotFound, obteve %v", err)
		}
	})
}
