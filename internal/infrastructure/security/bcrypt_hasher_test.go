package security

import "testing"

func TestBcryptHasher(t *testing.T) {
	// Custo mínimo para os testes não arrastarem
	hasher := NewBcryptHasher(4)

	t.Run("hash confere com a senha original", func(t *testing.T) {
		hash, err := hasher.Hash("senha-secreta")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if hash == "senha-secreta" {
			t.Error("hash não pode ser o texto puro")
		}
		if !hasher.Compare(hash, "senha-secreta") {
			t.Error("esperava comparação positiva")
		}
	})

	t.Run("senha errada não confere", func(t *testing.T) {
		hash, err := hasher.Hash("senha-secreta")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if hasher.Compare(hash, "senha-errada") {
			t.Error("esperava comparação negativa")
		}
	})

	t.Run("custo inválido cai no default sem falhar", func(t *testing.T) {
		invalid := NewBcryptHasher(99)

		hash, err := invalid.Hash("senha")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if !invalid.Compare(hash, "senha") {
			t.Error("esperava comparação positiva")
		}
	})
}
