package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ngpromant/internal/domain/entity"
	"ngpromant/internal/domain/sqlite"
	"ngpromant/internal/domain/sqlite/repository"
	"ngpromant/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func newClienteRoute(t *testing.T) (*DefaultClienteRoute, *repository.DefaultClienteSimpleRepository) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	narrowDB, err := sqlite.InitClientes(dsn)
	if err != nil {
		t.Fatalf("open narrow db: %v", err)
	}
	fullDB, err := sqlite.Init(dsn)
	if err != nil {
		t.Fatalf("open full db: %v", err)
	}

	narrow := repository.NewClienteSimpleRepository(narrowDB)
	full := repository.NewClienteRepository(fullDB)
	validate := validator.New()
	route := NewClienteDefault(
		service.NewClienteSimpleService(narrow, validate),
		service.NewClienteService(full, validate),
	)
	return route, narrow
}

func callWithID(t *testing.T, h echo.HandlerFunc, method, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestCreateClienteSimpleAllocatesNextID(t *testing.T) {
	route, repo := newClienteRoute(t)

	nombre := "Existente"
	if err := repo.Save(&entity.Cliente{ID: 41, Nombre: &nombre}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := postJSON(t, route.CreateClienteSimple, "/api/ClientesSimple",
		`{"nombre": "Talleres Paco"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var cliente entity.Cliente
	if err := json.Unmarshal(rec.Body.Bytes(), &cliente); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cliente.ID != 42 {
		t.Fatalf("expected id 42, got %d", cliente.ID)
	}
	if cliente.Pais == nil || *cliente.Pais != "España" {
		t.Fatal("expected default pais España")
	}
	if cliente.Descatalogado == nil || *cliente.Descatalogado {
		t.Fatal("expected new cliente not decommissioned")
	}
}

func TestCreateClienteSimpleRequiresNombre(t *testing.T) {
	route, _ := newClienteRoute(t)

	rec := postJSON(t, route.CreateClienteSimple, "/api/ClientesSimple", `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "obligatorio") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateClienteSimpleKeepsAbsentFields(t *testing.T) {
	route, repo := newClienteRoute(t)

	nombre := "Talleres Paco"
	telefono := "600111222"
	if err := repo.Save(&entity.Cliente{ID: 7, Nombre: &nombre, Telef1: &telefono}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := callWithID(t, route.UpdateClienteSimple, http.MethodPut, "7",
		`{"poblacion": "Murcia"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var cliente entity.Cliente
	if err := json.Unmarshal(rec.Body.Bytes(), &cliente); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cliente.Poblacion == nil || *cliente.Poblacion != "Murcia" {
		t.Fatal("expected poblacion patched")
	}
	if cliente.Nombre == nil || *cliente.Nombre != "Talleres Paco" {
		t.Fatal("absent nombre must keep its stored value")
	}
	if cliente.Telef1 == nil || *cliente.Telef1 != "600111222" {
		t.Fatal("absent telef1 must keep its stored value")
	}
}

func TestDeleteClienteSimple(t *testing.T) {
	route, repo := newClienteRoute(t)

	nombre := "Efímero"
	if err := repo.Save(&entity.Cliente{ID: 3, Nombre: &nombre}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := callWithID(t, route.DeleteClienteSimple, http.MethodDelete, "3", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = callWithID(t, route.DeleteClienteSimple, http.MethodDelete, "3", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Cliente con ID 3 no encontrado") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetClienteSimpleBadParam(t *testing.T) {
	route, _ := newClienteRoute(t)

	rec := callWithID(t, route.GetClienteSimple, http.MethodGet, "abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "'id'") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestFullPathwayFiltersDecommissioned(t *testing.T) {
	route, repo := newClienteRoute(t)

	activo, baja := "Activo SA", "Baja SL"
	si := true
	if err := repo.Save(&entity.Cliente{ID: 1, Nombre: &activo}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.Save(&entity.Cliente{ID: 2, Nombre: &baja, Descatalogado: &si}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/Clientes", nil)
	rec := httptest.NewRecorder()
	if err := route.GetClientes(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var clientes []entity.Cliente
	if err := json.Unmarshal(rec.Body.Bytes(), &clientes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(clientes) != 1 || clientes[0].ID != 1 {
		t.Fatalf("expected only the active cliente, got %+v", clientes)
	}

	// The narrow listing keeps both.
	req = httptest.NewRequest(http.MethodGet, "/api/ClientesSimple", nil)
	rec = httptest.NewRecorder()
	if err := route.GetClientesSimple(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &clientes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(clientes) != 2 {
		t.Fatalf("expected both clientes on the narrow listing, got %d", len(clientes))
	}
}
