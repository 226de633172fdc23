package service

import (
	"testing"
	"time"

	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/domain/sqlite"
	"ngpromant/internal/domain/sqlite/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func newContratoService(t *testing.T) (*DefaultContratoService, *repository.DefaultClienteRepository) {
	t.Helper()
	db := setupDB(t)
	clientes := repository.NewClienteRepository(db)
	contratos := repository.NewContratoRepository(db)
	return NewContratoService(contratos, clientes, validator.New()), clientes
}

func validCreateRequest(clienteID int) *contract.CreateContratoRequest {
	return &contract.CreateContratoRequest{
		ClienteId:    clienteID,
		Area:         entity.AreaSoftware,
		Descripcion:  "Mantenimiento ERP",
		FechaInicio:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		FechaFin:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Periodicidad: entity.PeriodicidadMensual,
		Importe:      250,
	}
}

func TestCreateContratoRejectsMissingCliente(t *testing.T) {
	svc, _ := newContratoService(t)

	_, apierr := svc.CreateContrato(validCreateRequest(99))
	if apierr == nil {
		t.Fatal("expected an error for a dangling cliente")
	}
	if apierr.Code() != 400 {
		t.Fatalf("expected 400, got %d", apierr.Code())
	}

	// Nothing may have been written.
	contratos, serr := svc.GetContratos(nil)
	if serr != nil {
		t.Fatalf("list: %v", serr)
	}
	if len(contratos) != 0 {
		t.Fatalf("expected no contratos, got %d", len(contratos))
	}
}

func TestCreateContratoResolvesClienteNombre(t *testing.T) {
	svc, clientes := newContratoService(t)

	if err := clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("save cliente: %v", err)
	}

	contrato, apierr := svc.CreateContrato(validCreateRequest(1))
	if apierr != nil {
		t.Fatalf("create: %v", apierr)
	}

	if contrato.IdContrato == 0 {
		t.Fatal("expected a generated IdContrato")
	}
	if contrato.Estado != entity.EstadoActivo {
		t.Fatalf("expected default estado Activo, got %d", contrato.Estado)
	}
	if contrato.ClienteNombre == nil || *contrato.ClienteNombre != "Acme" {
		t.Fatal("expected client name resolved in response")
	}
	if contrato.CreadoPor == nil || *contrato.CreadoPor != "API User" {
		t.Fatal("expected creation stamp")
	}
}

func TestUpdateContratoStampsModification(t *testing.T) {
	svc, clientes := newContratoService(t)

	if err := clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("save cliente: %v", err)
	}
	created, apierr := svc.CreateContrato(validCreateRequest(1))
	if apierr != nil {
		t.Fatalf("create: %v", apierr)
	}

	updated, apierr := svc.UpdateContrato(created.IdContrato, &contract.UpdateContratoRequest{
		Area:         entity.AreaGPS,
		Descripcion:  "Mantenimiento flota",
		FechaInicio:  created.FechaInicio,
		FechaFin:     created.FechaFin,
		Periodicidad: entity.PeriodicidadAnual,
		Importe:      990,
		Estado:       entity.EstadoActivo,
	})
	if apierr != nil {
		t.Fatalf("update: %v", apierr)
	}

	if updated.FechaModificacion == nil {
		t.Fatal("expected FechaModificacion stamped")
	}
	if updated.Area != entity.AreaGPS || updated.Importe != 990 {
		t.Fatal("update did not overwrite fields")
	}
}

func TestCancelContratoKeepsRow(t *testing.T) {
	svc, clientes := newContratoService(t)

	if err := clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("save cliente: %v", err)
	}
	created, apierr := svc.CreateContrato(validCreateRequest(1))
	if apierr != nil {
		t.Fatalf("create: %v", apierr)
	}

	cancelled, apierr := svc.CancelContrato(created.IdContrato)
	if apierr != nil {
		t.Fatalf("cancel: %v", apierr)
	}
	if cancelled.Estado != entity.EstadoCancelado {
		t.Fatalf("expected estado Cancelado, got %d", cancelled.Estado)
	}

	// Unlike DeleteContrato, the row is still there.
	got, apierr := svc.GetContratoByID(created.IdContrato)
	if apierr != nil {
		t.Fatalf("get: %v", apierr)
	}
	if got == nil {
		t.Fatal("cancelled contrato should still exist")
	}
}

func TestDeleteContratoRemovesRow(t *testing.T) {
	svc, clientes := newContratoService(t)

	if err := clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("save cliente: %v", err)
	}
	created, apierr := svc.CreateContrato(validCreateRequest(1))
	if apierr != nil {
		t.Fatalf("create: %v", apierr)
	}

	if apierr := svc.DeleteContrato(created.IdContrato); apierr != nil {
		t.Fatalf("delete: %v", apierr)
	}

	_, apierr = svc.GetContratoByID(created.IdContrato)
	if apierr == nil || apierr.Code() != 404 {
		t.Fatal("expected 404 after hard delete")
	}
}

func TestEstadisticasGroupsByEstado(t *testing.T) {
	svc, clientes := newContratoService(t)

	if err := clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("save cliente: %v", err)
	}

	importes := []float64{100, 200, 300}
	var cancelarID int
	for i, importe := range importes {
		req := validCreateRequest(1)
		req.Importe = importe
		created, apierr := svc.CreateContrato(req)
		if apierr != nil {
			t.Fatalf("create %d: %v", i, apierr)
		}
		cancelarID = created.IdContrato
	}
	if _, apierr := svc.CancelContrato(cancelarID); apierr != nil {
		t.Fatalf("cancel: %v", apierr)
	}

	stats, apierr := svc.GetEstadisticas()
	if apierr != nil {
		t.Fatalf("estadisticas: %v", apierr)
	}

	if stats.TotalContratos != 3 {
		t.Fatalf("expected 3 contratos, got %d", stats.TotalContratos)
	}
	if stats.ImporteTotal != 600 {
		t.Fatalf("expected 600 total, got %f", stats.ImporteTotal)
	}

	porEstado := make(map[string]contract.EstadisticaEstado)
	for _, e := range stats.EstadisticasPorEstado {
		porEstado[e.Estado] = e
	}
	if porEstado["Activo"].Cantidad != 2 || porEstado["Activo"].ImporteTotal != 300 {
		t.Fatalf("unexpected Activo group: %+v", porEstado["Activo"])
	}
	if porEstado["Cancelado"].Cantidad != 1 || porEstado["Cancelado"].ImporteTotal != 300 {
		t.Fatalf("unexpected Cancelado group: %+v", porEstado["Cancelado"])
	}
}

func TestGetContratoByIDSumsLineas(t *testing.T) {
	db := setupDB(t)
	clientes := repository.NewClienteRepository(db)
	svc := NewContratoService(repository.NewContratoRepository(db), clientes, validator.New())

	if err := clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("seed cliente: %v", err)
	}
	creado, apierr := svc.CreateContrato(validCreateRequest(1))
	if apierr != nil {
		t.Fatalf("create: %v", apierr)
	}

	lineas := []entity.LineaContrato{
		{IdContrato: creado.IdContrato, Concepto: "Horas de soporte", Cantidad: 3, PrecioUnitario: 40, FechaCreacion: time.Now().UTC()},
		{IdContrato: creado.IdContrato, Concepto: "Licencia anual", Cantidad: 1, PrecioUnitario: 120, FechaCreacion: time.Now().UTC()},
	}
	for i := range lineas {
		if err := db.Create(&lineas[i]).Error; err != nil {
			t.Fatalf("seed linea: %v", err)
		}
	}

	got, apierr := svc.GetContratoByID(creado.IdContrato)
	if apierr != nil {
		t.Fatalf("get: %v", apierr)
	}
	if got.TotalLineas == nil || *got.TotalLineas != 2 {
		t.Fatalf("expected 2 lineas, got %v", got.TotalLineas)
	}
	if got.ImporteLineas == nil || *got.ImporteLineas != 240 {
		t.Fatalf("expected 240 across lineas, got %v", got.ImporteLineas)
	}
}
