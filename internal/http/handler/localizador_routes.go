package handler

import (
	"net/http"
	"strconv"

	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type LocalizadorService interface {
	GetAllLocalizadores() ([]*entity.Localizador, apierror.ErrorResponse)
	GetLocalizadorByID(id int) (*entity.Localizador, apierror.ErrorResponse)
	GetLocalizadoresByTipo(tipo string) ([]*entity.Localizador, apierror.ErrorResponse)
	GetLocalizadoresByCliente(clienteID int) ([]*entity.Localizador, apierror.ErrorResponse)
	CreateLocalizador(req *contract.CreateLocalizadorRequest) (*entity.Localizador, apierror.ErrorResponse)
	UpdateLocalizador(id int, req *contract.UpdateLocalizadorRequest) (*entity.Localizador, apierror.ErrorResponse)
	DeleteLocalizador(id int) apierror.ErrorResponse
	TestConnection() (*contract.ConexionLocalizadores, apierror.ErrorResponse)
}

type DefaultLocalizadorRoute struct {
	LocalizadorService LocalizadorService
}

func NewLocalizadorDefault(localizadorService LocalizadorService) *DefaultLocalizadorRoute {
	return &DefaultLocalizadorRoute{LocalizadorService: localizadorService}
}

func (r *DefaultLocalizadorRoute) GetLocalizadores(c echo.Context) error {
	localizadores, apierr := r.LocalizadorService.GetAllLocalizadores()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, localizadores)
}

func (r *DefaultLocalizadorRoute) GetLocalizador(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	localizador, apierr := r.LocalizadorService.GetLocalizadorByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, localizador)
}

func (r *DefaultLocalizadorRoute) GetLocalizadoresByTipo(c echo.Context) error {
	tipo := c.Param("tipo")
	if tipo == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("tipo"))
	}

	localizadores, apierr := r.LocalizadorService.GetLocalizadoresByTipo(tipo)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, localizadores)
}

func (r *DefaultLocalizadorRoute) GetLocalizadoresByCliente(c echo.Context) error {
	clienteID, err := strconv.Atoi(c.Param("clienteId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("clienteId", "int"))
	}

	localizadores, apierr := r.LocalizadorService.GetLocalizadoresByCliente(clienteID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, localizadores)
}

func (r *DefaultLocalizadorRoute) CreateLocalizador(c echo.Context) error {
	var req contract.CreateLocalizadorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	localizador, apierr := r.LocalizadorService.CreateLocalizador(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, localizador)
}

func (r *DefaultLocalizadorRoute) UpdateLocalizador(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateLocalizadorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	localizador, apierr := r.LocalizadorService.UpdateLocalizador(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, localizador)
}

func (r *DefaultLocalizadorRoute) DeleteLocalizador(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.LocalizadorService.DeleteLocalizador(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultLocalizadorRoute) TestConnection(c echo.Context) error {
	probe, apierr := r.LocalizadorService.TestConnection()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, probe)
}
