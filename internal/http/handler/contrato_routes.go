package handler

import (
	"net/http"
	"strconv"

	"ngpromant/internal/contract"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ContratoService interface {
	GetContratos(clienteID *int) ([]*contract.ContratoResponse, apierror.ErrorResponse)
	GetContratoByID(id int) (*contract.ContratoResponse, apierror.ErrorResponse)
	GetContratosPorVencer(dias int) ([]*contract.ContratoResponse, apierror.ErrorResponse)
	CreateContrato(req *contract.CreateContratoRequest) (*contract.ContratoResponse, apierror.ErrorResponse)
	UpdateContrato(id int, req *contract.UpdateContratoRequest) (*contract.ContratoResponse, apierror.ErrorResponse)
	DeleteContrato(id int) apierror.ErrorResponse
	CancelContrato(id int) (*contract.ContratoResponse, apierror.ErrorResponse)
	GetEstadisticas() (*contract.EstadisticasContratos, apierror.ErrorResponse)
	TestConnection() (*contract.ConexionContratos, apierror.ErrorResponse)
}

type DefaultContratoRoute struct {
	ContratoService ContratoService
}

func NewContratoDefault(contratoService ContratoService) *DefaultContratoRoute {
	return &DefaultContratoRoute{ContratoService: contratoService}
}

// GetContratos lists every contract, optionally restricted to one client
// via ?clienteId=.
func (r *DefaultContratoRoute) GetContratos(c echo.Context) error {
	var clienteID *int
	if raw := c.QueryParam("clienteId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("clienteId", "int"))
		}
		clienteID = &id
	}

	contratos, apierr := r.ContratoService.GetContratos(clienteID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contratos)
}

func (r *DefaultContratoRoute) GetContrato(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	contrato, apierr := r.ContratoService.GetContratoByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contrato)
}

// GetContratosPorVencer lists active contracts ending within ?dias= days
// (default 30).
func (r *DefaultContratoRoute) GetContratosPorVencer(c echo.Context) error {
	dias := 30
	if raw := c.QueryParam("dias"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("dias", "int"))
		}
		dias = parsed
	}

	contratos, apierr := r.ContratoService.GetContratosPorVencer(dias)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contratos)
}

func (r *DefaultContratoRoute) CreateContrato(c echo.Context) error {
	var req contract.CreateContratoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	contrato, apierr := r.ContratoService.CreateContrato(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, contrato)
}

func (r *DefaultContratoRoute) UpdateContrato(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateContratoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	contrato, apierr := r.ContratoService.UpdateContrato(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contrato)
}

// DeleteContrato removes the row permanently; CancelContrato is the soft
// counterpart.
func (r *DefaultContratoRoute) DeleteContrato(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.ContratoService.DeleteContrato(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultContratoRoute) CancelContrato(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	contrato, apierr := r.ContratoService.CancelContrato(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, contrato)
}

func (r *DefaultContratoRoute) GetEstadisticas(c echo.Context) error {
	stats, apierr := r.ContratoService.GetEstadisticas()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, stats)
}

func (r *DefaultContratoRoute) TestConnection(c echo.Context) error {
	probe, apierr := r.ContratoService.TestConnection()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, probe)
}
