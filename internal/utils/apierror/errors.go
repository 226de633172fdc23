package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

// StoreError is the 500 body for persistence failures. It carries the
// underlying error text verbatim; the legacy API exposed it and the
// frontend surfaces it during migration. Known information-disclosure
// trade-off, kept for parity.
type StoreError struct {
	Message string `json:"message"`
	Detail  string `json:"error"`
	Status  int    `json:"-"`
}

func (s *StoreError) Code() int {
	return s.Status
}

var (
	MalformedBodyError  = NewSimple(400, "Cuerpo JSON mal formado")
	InternalServerError = NewSimple(500, "Error interno del servidor")

	NotFoundError           = NewSimple(404, "Recurso no encontrado")
	InvalidCredentialsError = NewSimple(401, "Credenciales inválidas")
	ClienteNoExisteError    = NewSimple(400, "El cliente especificado no existe")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "Este campo es obligatorio")
		case "min":
			problems[field] = append(problems[field], "Valor demasiado corto, mínimo: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Valor demasiado largo, máximo: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Formato de email inválido")
		case "gt":
			problems[field] = append(problems[field], "El valor debe ser mayor que "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Valor fuera del rango permitido: "+fe.Param())

		default:
			problems[field] = append(problems[field], "Valor inválido")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

// NewNotFound builds the conventional "<entity> con ID <n> no encontrado" 404.
func NewNotFound(entidad string, id int) *APIError {
	return NewSimple(http.StatusNotFound, "%s con ID %d no encontrado", entidad, id)
}

// NewStoreError wraps a persistence failure, exposing the underlying text.
func NewStoreError(msg string, err error) *StoreError {
	return &StoreError{
		Message: msg,
		Detail:  err.Error(),
		Status:  http.StatusInternalServerError,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "El parámetro '%s' tiene un tipo inválido, se esperaba: %s", name, dataType)
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Falta el parámetro obligatorio '%s'", name)
}
