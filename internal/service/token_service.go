package service

import (
	"errors"
	"time"

	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

type UsuarioRepository interface {
	FindActiveByEmail(email string) (*entity.Usuario, error)
	FindByID(id int) (*entity.Usuario, error)
	Save(usuario *entity.Usuario) error
}

// TokenConfig carries the signing parameters, loaded from the environment
// at startup.
type TokenConfig struct {
	Secret            string
	Issuer            string
	Audience          string
	ExpirationMinutes int
}

// AccessClaims is the JWT payload for a logged-in Usuario.
type AccessClaims struct {
	IdUsuario int    `json:"IdUsuario"`
	Rol       string `json:"Rol"`
	jwt.RegisteredClaims
}

// TokenService is the credential pathway backed by the Usuarios table:
// bcrypt password check, signed HS256 token, validation for middleware.
// No route group consumes it yet; login still runs on DefaultAuthService
// until the user administration screens ship.
type TokenService struct {
	Repo   UsuarioRepository
	Config TokenConfig
}

func NewTokenService(repo UsuarioRepository, config TokenConfig) *TokenService {
	return &TokenService{
		Repo:   repo,
		Config: config,
	}
}

// Authenticate checks the credentials against the active users and issues
// a token. The failure answer is identical for unknown email and wrong
// password.
func (s *TokenService) Authenticate(email, password string) (string, *entity.Usuario, apierror.ErrorResponse) {
	usuario, err := s.Repo.FindActiveByEmail(email)
	if err != nil {
		log.Errorf("failed to fetch usuario by email: %v", err)
		return "", nil, apierror.InternalServerError
	}

	if usuario == nil {
		return "", nil, apierror.InvalidCredentialsError
	}

	err = bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password))
	if err != nil {
		return "", nil, apierror.InvalidCredentialsError
	}

	now := utils.NowUTC()
	usuario.UltimoAcceso = &now
	if err := s.Repo.Save(usuario); err != nil {
		// Last-access is informative only, a failed stamp never blocks login.
		log.Errorf("failed to stamp last access for usuario %d: %v", usuario.IdUsuario, err)
	}

	token, err := s.issueToken(usuario)
	if err != nil {
		log.Errorf("failed to sign token for usuario %d: %v", usuario.IdUsuario, err)
		return "", nil, apierror.InternalServerError
	}

	log.Infof("usuario %q authenticated", usuario.NombreCompleto())
	return token, usuario, nil
}

// ValidateToken parses and verifies a bearer token, returning its claims.
func (s *TokenService) ValidateToken(tokenString string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.Config.Secret), nil
	},
		jwt.WithIssuer(s.Config.Issuer),
		jwt.WithAudience(s.Config.Audience),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// HashPassword produces the bcrypt hash stored in Usuarios.PasswordHash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *TokenService) issueToken(usuario *entity.Usuario) (string, error) {
	now := utils.NowUTC()
	claims := &AccessClaims{
		IdUsuario: usuario.IdUsuario,
		Rol:       usuario.Rol.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   usuario.Email,
			Issuer:    s.Config.Issuer,
			Audience:  jwt.ClaimStrings{s.Config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.Config.ExpirationMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.Config.Secret))
}
