package repository

import (
	"testing"

	"ngpromant/internal/domain/entity"
)

func intPtr(i int) *int { return &i }

func TestLocalizadorNextID(t *testing.T) {
	repo := NewLocalizadorRepository(setupDB(t))

	id, err := repo.NextID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected 1 on empty table, got %d", id)
	}

	if err := repo.Save(&entity.Localizador{ID: 30, Modelo: strPtr("GL300")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	id, err = repo.NextID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != 31 {
		t.Fatalf("expected 31, got %d", id)
	}
}

func TestLocalizadorFindByIDLoadsCliente(t *testing.T) {
	db := setupDB(t)
	clientes := NewClienteRepository(db)
	repo := NewLocalizadorRepository(db)

	if err := clientes.Save(&entity.Cliente{ID: 9, Nombre: strPtr("Flota SA")}); err != nil {
		t.Fatalf("save cliente: %v", err)
	}
	if err := repo.Save(&entity.Localizador{ID: 1, ClienteID: intPtr(9), Modelo: strPtr("GL300")}); err != nil {
		t.Fatalf("save localizador: %v", err)
	}

	got, err := repo.FindByID(1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("localizador not found")
	}
	if got.Cliente == nil || got.Cliente.Nombre == nil || *got.Cliente.Nombre != "Flota SA" {
		t.Fatal("expected Cliente relation resolved on read")
	}
}

func TestLocalizadorFindByTipoCatchAll(t *testing.T) {
	repo := NewLocalizadorRepository(setupDB(t))

	if err := repo.Save(&entity.Localizador{ID: 1, Tipo: strPtr("MOTO")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(&entity.Localizador{ID: 2, Tipo: strPtr("CAMION")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	motos, err := repo.FindByTipo("MOTO")
	if err != nil {
		t.Fatalf("find by tipo: %v", err)
	}
	if len(motos) != 1 {
		t.Fatalf("expected 1 MOTO, got %d", len(motos))
	}

	// GPS_TRACKER is the catch-all and ignores the column.
	todos, err := repo.FindByTipo("GPS_TRACKER")
	if err != nil {
		t.Fatalf("find by tipo: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("expected all 2 localizadores, got %d", len(todos))
	}
}

func TestLocalizadorDeleteRaw(t *testing.T) {
	repo := NewLocalizadorRepository(setupDB(t))

	if err := repo.Save(&entity.Localizador{ID: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}

	affected, err := repo.DeleteRaw(1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	affected, err = repo.DeleteRaw(1)
	if err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows affected on repeat, got %d", affected)
	}
}
