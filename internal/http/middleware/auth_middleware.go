package middleware

import (
	"net/http"
	"strings"

	"ngpromant/internal/domain/entity"
	"ngpromant/internal/service"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UsuarioFinder interface {
	FindByID(id int) (*entity.Usuario, error)
}

type AuthMiddlewareConfig struct {
	Tokens      *service.TokenService
	UsuarioRepo UsuarioFinder
}

// NewAuthMiddleware validates the bearer token and loads the Usuario into
// the request context under "usuario". Not attached to any route group
// until login moves off the env-var pathway.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(raw, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidCredentialsError)
			}

			claims, err := cfg.Tokens.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidCredentialsError)
			}

			usuario, err := cfg.UsuarioRepo.FindByID(claims.IdUsuario)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if usuario == nil || !usuario.Activo {
				// Row deleted or deactivated after the token was issued.
				return c.JSON(http.StatusUnauthorized, apierror.InvalidCredentialsError)
			}

			c.Set("usuario", usuario)
			return next(c)
		}
	}
}
