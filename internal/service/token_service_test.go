package service

import (
	"testing"
	"time"

	"ngpromant/internal/domain/entity"
	"ngpromant/internal/domain/sqlite/repository"
)

func newTokenService(t *testing.T) (*TokenService, *repository.DefaultUsuarioRepository) {
	t.Helper()
	db := setupDB(t)
	repo := repository.NewUsuarioRepository(db)
	svc := NewTokenService(repo, TokenConfig{
		Secret:            "clave-de-prueba",
		Issuer:            "ngpromant",
		Audience:          "ngpromant-frontend",
		ExpirationMinutes: 60,
	})
	return svc, repo
}

func seedUsuario(t *testing.T, repo *repository.DefaultUsuarioRepository, email, password string, activo bool) *entity.Usuario {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	usuario := &entity.Usuario{
		Nombre:        "Marta",
		Apellidos:     "Ruiz",
		Email:         email,
		PasswordHash:  hash,
		Rol:           entity.RolGestor,
		Activo:        activo,
		FechaCreacion: time.Now().UTC(),
	}
	if err := repo.Save(usuario); err != nil {
		t.Fatalf("seed usuario: %v", err)
	}
	if !activo {
		// The column has a database default of true which wins on insert;
		// deactivation has to be a second write.
		usuario.Activo = false
		if err := repo.Save(usuario); err != nil {
			t.Fatalf("deactivate usuario: %v", err)
		}
	}
	return usuario
}

func TestAuthenticateRoundTrip(t *testing.T) {
	svc, repo := newTokenService(t)
	seeded := seedUsuario(t, repo, "marta@ngpro.es", "s3cretos!", true)

	token, usuario, apierr := svc.Authenticate("marta@ngpro.es", "s3cretos!")
	if apierr != nil {
		t.Fatalf("authenticate: %v", apierr)
	}
	if usuario.IdUsuario != seeded.IdUsuario {
		t.Fatalf("expected usuario %d, got %d", seeded.IdUsuario, usuario.IdUsuario)
	}
	if usuario.UltimoAcceso == nil {
		t.Fatal("expected last-access stamped")
	}
	if usuario.NombreCompleto() != "Marta Ruiz" {
		t.Fatalf("unexpected full name %q", usuario.NombreCompleto())
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.IdUsuario != seeded.IdUsuario {
		t.Fatalf("expected claim for usuario %d, got %d", seeded.IdUsuario, claims.IdUsuario)
	}
	if claims.Rol != "Gestor" {
		t.Fatalf("expected rol Gestor, got %q", claims.Rol)
	}
	if claims.Subject != "marta@ngpro.es" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
}

func TestAuthenticateFailuresLookAlike(t *testing.T) {
	svc, repo := newTokenService(t)
	seedUsuario(t, repo, "marta@ngpro.es", "s3cretos!", true)

	_, _, desconocido := svc.Authenticate("nadie@ngpro.es", "s3cretos!")
	_, _, equivocada := svc.Authenticate("marta@ngpro.es", "otra")

	if desconocido == nil || equivocada == nil {
		t.Fatal("expected both attempts rejected")
	}
	if desconocido != equivocada {
		t.Fatal("unknown email and wrong password must yield the same answer")
	}
	if desconocido.Code() != 401 {
		t.Fatalf("expected 401, got %d", desconocido.Code())
	}
}

func TestAuthenticateIgnoresInactiveUsuario(t *testing.T) {
	svc, repo := newTokenService(t)
	seedUsuario(t, repo, "baja@ngpro.es", "s3cretos!", false)

	_, _, apierr := svc.Authenticate("baja@ngpro.es", "s3cretos!")
	if apierr == nil || apierr.Code() != 401 {
		t.Fatal("expected inactive usuario rejected with 401")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc, repo := newTokenService(t)
	seedUsuario(t, repo, "marta@ngpro.es", "s3cretos!", true)

	token, _, apierr := svc.Authenticate("marta@ngpro.es", "s3cretos!")
	if apierr != nil {
		t.Fatalf("authenticate: %v", apierr)
	}

	otro := NewTokenService(svc.Repo, TokenConfig{
		Secret:            "otra-clave",
		Issuer:            svc.Config.Issuer,
		Audience:          svc.Config.Audience,
		ExpirationMinutes: 60,
	})
	if _, err := otro.ValidateToken(token); err == nil {
		t.Fatal("expected signature rejection under a different secret")
	}
}
