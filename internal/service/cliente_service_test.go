package service

import (
	"testing"

	"ngpromant/internal/domain/entity"
	"ngpromant/internal/domain/sqlite/repository"

	"github.com/go-playground/validator/v10"
)

func TestDeleteClienteRepeatable(t *testing.T) {
	repo := repository.NewClienteRepository(setupDB(t))
	svc := NewClienteService(repo, validator.New())

	if err := repo.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("seed cliente: %v", err)
	}

	if apierr := svc.DeleteCliente(1); apierr != nil {
		t.Fatalf("delete: %v", apierr)
	}
	// Deleting a row that is already flagged is a no-op, not an error.
	if apierr := svc.DeleteCliente(1); apierr != nil {
		t.Fatalf("repeat delete: %v", apierr)
	}

	got, err := repo.FindByID(1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.Activo() {
		t.Fatal("cliente should stay flagged after repeated deletes")
	}
}
