package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ngpromant/internal/contract"
	"ngpromant/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func newAuthRoute() *DefaultAuthRoute {
	return NewAuthDefault(service.NewAuthService(validator.New()))
}

func TestLoginMatchingCredentials(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@ngpro.es")
	t.Setenv("ADMIN_PASSWORD", "s3cretos")

	rec := postJSON(t, newAuthRoute().Login, "/api/Auth/login",
		`{"email": "admin@ngpro.es", "password": "s3cretos"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp contract.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "mock-jwt-token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
	if resp.User == nil || resp.User.Email != "admin@ngpro.es" || resp.User.Name != "SuperAdmin" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@ngpro.es")
	t.Setenv("ADMIN_PASSWORD", "s3cretos")

	rec := postJSON(t, newAuthRoute().Login, "/api/Auth/login",
		`{"email": "admin@ngpro.es", "password": "equivocada"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Credenciales inválidas") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLoginUnconfiguredAdminAlwaysFails(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	// Empty password must not match an unset ADMIN_PASSWORD.
	rec := postJSON(t, newAuthRoute().Login, "/api/Auth/login",
		`{"email": "admin@ngpro.es", "password": "loquesea"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginValidatesBody(t *testing.T) {
	rec := postJSON(t, newAuthRoute().Login, "/api/Auth/login",
		`{"email": "no-es-un-correo", "password": "corta"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors["email"]) == 0 || len(resp.Errors["password"]) == 0 {
		t.Fatalf("expected problems for email and password, got %v", resp.Errors)
	}
}

func TestRegisterEchoesUserWithoutPersisting(t *testing.T) {
	rec := postJSON(t, newAuthRoute().Register, "/api/Auth/register",
		`{"name": "Ana", "email": "ana@ngpro.es", "password": "s3cretos"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user contract.AuthUser
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.ID != 1 || user.Name != "Ana" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
