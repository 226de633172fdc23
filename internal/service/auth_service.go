package service

import (
	"os"

	"ngpromant/internal/contract"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
)

// mockToken is what the login endpoint hands out today. The real token
// pathway lives in TokenService and is not attached to any route yet;
// the frontend only checks for token presence during the migration.
const mockToken = "mock-jwt-token"

// DefaultAuthService implements the env-var login the deployment runs on:
// a single administrator whose credentials come from ADMIN_EMAIL and
// ADMIN_PASSWORD. Registration and profile are simulated.
type DefaultAuthService struct {
	Validate *validator.Validate
}

func NewAuthService(validate *validator.Validate) *DefaultAuthService {
	return &DefaultAuthService{Validate: validate}
}

func (s *DefaultAuthService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || req.Email != adminEmail || req.Password != adminPassword {
		return nil, apierror.InvalidCredentialsError
	}

	return &contract.LoginResponse{
		Token: mockToken,
		User:  staticAdminUser(req.Email),
	}, nil
}

// Register does not persist anything; the single-admin deployment has no
// self-service signup. It validates and answers as if it had.
func (s *DefaultAuthService) Register(req *contract.RegisterRequest) (*contract.AuthUser, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	return &contract.AuthUser{
		ID:    1,
		Email: req.Email,
		Name:  req.Name,
	}, nil
}

func (s *DefaultAuthService) Profile() *contract.AuthUser {
	return staticAdminUser(os.Getenv("ADMIN_EMAIL"))
}

func staticAdminUser(email string) *contract.AuthUser {
	return &contract.AuthUser{
		ID:    1,
		Email: email,
		Name:  "SuperAdmin",
	}
}
