package handler

import (
	"net/http"
	"strconv"

	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// ClienteSimpleService is the narrow pathway behind /api/ClientesSimple:
// unfiltered listings, patch updates, raw deletes.
type ClienteSimpleService interface {
	GetAllClientes() ([]*entity.Cliente, apierror.ErrorResponse)
	GetClienteByID(id int) (*entity.Cliente, apierror.ErrorResponse)
	CreateCliente(req *contract.ClienteCreateRequest) (*entity.Cliente, apierror.ErrorResponse)
	UpdateCliente(id int, req *contract.ClienteUpdateRequest) (*entity.Cliente, apierror.ErrorResponse)
	DeleteCliente(id int) apierror.ErrorResponse
	TestConnection() (*contract.ConexionClientes, apierror.ErrorResponse)
}

// ClienteService is the full pathway behind /api/Clientes: active-only
// listings, whole-row overwrites, soft deletes.
type ClienteService interface {
	GetClientesActivos() ([]*entity.Cliente, apierror.ErrorResponse)
	GetClienteByID(id int) (*entity.Cliente, apierror.ErrorResponse)
	CreateCliente(req *contract.ClienteCreateRequest) (*entity.Cliente, apierror.ErrorResponse)
	ReplaceCliente(id int, req *contract.ClienteReplaceRequest) (*entity.Cliente, apierror.ErrorResponse)
	DeleteCliente(id int) apierror.ErrorResponse
}

type DefaultClienteRoute struct {
	Simple ClienteSimpleService
	Full   ClienteService
}

func NewClienteDefault(simple ClienteSimpleService, full ClienteService) *DefaultClienteRoute {
	return &DefaultClienteRoute{
		Simple: simple,
		Full:   full,
	}
}

func (r *DefaultClienteRoute) GetClientesSimple(c echo.Context) error {
	clientes, apierr := r.Simple.GetAllClientes()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, clientes)
}

func (r *DefaultClienteRoute) GetClienteSimple(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	cliente, apierr := r.Simple.GetClienteByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cliente)
}

func (r *DefaultClienteRoute) CreateClienteSimple(c echo.Context) error {
	var req contract.ClienteCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	cliente, apierr := r.Simple.CreateCliente(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, cliente)
}

func (r *DefaultClienteRoute) UpdateClienteSimple(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.ClienteUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	cliente, apierr := r.Simple.UpdateCliente(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cliente)
}

func (r *DefaultClienteRoute) DeleteClienteSimple(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.Simple.DeleteCliente(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultClienteRoute) TestConnection(c echo.Context) error {
	probe, apierr := r.Simple.TestConnection()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, probe)
}

func (r *DefaultClienteRoute) GetClientes(c echo.Context) error {
	clientes, apierr := r.Full.GetClientesActivos()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, clientes)
}

func (r *DefaultClienteRoute) GetCliente(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	cliente, apierr := r.Full.GetClienteByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cliente)
}

func (r *DefaultClienteRoute) CreateCliente(c echo.Context) error {
	var req contract.ClienteCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	cliente, apierr := r.Full.CreateCliente(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, cliente)
}

// ReplaceCliente is a whole-row overwrite, unlike the patch semantics of
// UpdateClienteSimple.
func (r *DefaultClienteRoute) ReplaceCliente(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.ClienteReplaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	cliente, apierr := r.Full.ReplaceCliente(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cliente)
}

// DeleteCliente is the soft pathway: the row is flagged, not removed.
func (r *DefaultClienteRoute) DeleteCliente(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.Full.DeleteCliente(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
