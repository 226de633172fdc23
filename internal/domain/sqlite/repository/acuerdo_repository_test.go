package repository

import (
	"testing"
	"time"

	"ngpromant/internal/domain/entity"
)

func timePtr(ts time.Time) *time.Time { return &ts }

func TestAcuerdoNextID(t *testing.T) {
	repo := NewAcuerdoRepository(setupDB(t))

	id, err := repo.NextID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected 1 on empty table, got %d", id)
	}

	if err := repo.Save(&entity.Acuerdo{ID: 7, Nombre: strPtr("Siete")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	id, err = repo.NextID()
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if id != 8 {
		t.Fatalf("expected 8, got %d", id)
	}
}

func TestAcuerdoFindActivos(t *testing.T) {
	repo := NewAcuerdoRepository(setupDB(t))
	now := time.Now().UTC()

	casos := []struct {
		acuerdo *entity.Acuerdo
		activo  bool
	}{
		// Second justification submitted, not withdrawn: active.
		{&entity.Acuerdo{ID: 1, SegundJustPresentado: timePtr(now)}, true},
		// "NO KIT" segment substitutes for the justification.
		{&entity.Acuerdo{ID: 2, Segmento: strPtr("NO KIT")}, true},
		// Any other segment without the justification: inactive.
		{&entity.Acuerdo{ID: 3, Segmento: strPtr("KIT DIGITAL")}, false},
		// Withdrawn rows are never active, justification or not.
		{&entity.Acuerdo{ID: 4, SegundJustPresentado: timePtr(now), Baja: boolPtr(true)}, false},
		// Explicit false on baja keeps the row active.
		{&entity.Acuerdo{ID: 5, Segmento: strPtr("NO KIT"), Baja: boolPtr(false)}, true},
	}

	for _, caso := range casos {
		if err := repo.Save(caso.acuerdo); err != nil {
			t.Fatalf("save acuerdo %d: %v", caso.acuerdo.ID, err)
		}
	}

	activos, err := repo.FindActivos()
	if err != nil {
		t.Fatalf("find activos: %v", err)
	}

	got := make(map[int]bool, len(activos))
	for _, a := range activos {
		got[a.ID] = true
	}

	for _, caso := range casos {
		if got[caso.acuerdo.ID] != caso.activo {
			t.Errorf("acuerdo %d: active=%v, expected %v", caso.acuerdo.ID, got[caso.acuerdo.ID], caso.activo)
		}
	}
}

func TestAcuerdoEsActivoMatchesQuery(t *testing.T) {
	repo := NewAcuerdoRepository(setupDB(t))
	now := time.Now().UTC()

	acuerdos := []*entity.Acuerdo{
		{ID: 1, SegundJustPresentado: timePtr(now)},
		{ID: 2, Segmento: strPtr("NO KIT")},
		{ID: 3, Segmento: strPtr("KIT")},
		{ID: 4, SegundJustPresentado: timePtr(now), Baja: boolPtr(true)},
	}
	for _, a := range acuerdos {
		if err := repo.Save(a); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	activos, err := repo.FindActivos()
	if err != nil {
		t.Fatalf("find activos: %v", err)
	}

	enQuery := make(map[int]bool)
	for _, a := range activos {
		enQuery[a.ID] = true
	}

	// The SQL predicate and the in-memory helper must agree row by row.
	todos, err := repo.FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	for _, a := range todos {
		if a.EsActivo() != enQuery[a.ID] {
			t.Errorf("acuerdo %d: EsActivo()=%v but query says %v", a.ID, a.EsActivo(), enQuery[a.ID])
		}
	}
}

func TestAcuerdoFindActivosRepeatable(t *testing.T) {
	repo := NewAcuerdoRepository(setupDB(t))
	now := time.Now().UTC()

	acuerdos := []*entity.Acuerdo{
		{ID: 1, SegundJustPresentado: timePtr(now)},
		{ID: 2, Segmento: strPtr("NO KIT")},
		{ID: 3, Segmento: strPtr("KIT")},
	}
	for _, a := range acuerdos {
		if err := repo.Save(a); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	primera, err := repo.FindActivos()
	if err != nil {
		t.Fatalf("find activos: %v", err)
	}
	segunda, err := repo.FindActivos()
	if err != nil {
		t.Fatalf("find activos again: %v", err)
	}

	// Two reads with no writes in between must return the same rows.
	if len(primera) != len(segunda) {
		t.Fatalf("result sets differ in size: %d vs %d", len(primera), len(segunda))
	}
	ids := make(map[int]bool, len(primera))
	for _, a := range primera {
		ids[a.ID] = true
	}
	for _, a := range segunda {
		if !ids[a.ID] {
			t.Errorf("acuerdo %d only in the second read", a.ID)
		}
	}
}

func TestAcuerdoDeleteTracked(t *testing.T) {
	repo := NewAcuerdoRepository(setupDB(t))

	a := &entity.Acuerdo{ID: 1, Nombre: strPtr("Temporal")}
	if err := repo.Save(a); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Delete(a); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.FindByID(1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Fatal("deleted acuerdo should be gone")
	}
}
