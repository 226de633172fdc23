package handler

import (
	"net/http"
	"strconv"

	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type RenovacionService interface {
	GetByContrato(contratoID int) ([]*entity.Renovacion, apierror.ErrorResponse)
	GetByID(id int) (*entity.Renovacion, apierror.ErrorResponse)
	GetPendientes() ([]*entity.Renovacion, apierror.ErrorResponse)
	Create(renovacion *entity.Renovacion) (*entity.Renovacion, apierror.ErrorResponse)
	Update(id int, cambios *entity.Renovacion) (*entity.Renovacion, apierror.ErrorResponse)
	MarcarCobrada(id int, referencia *string) (*entity.Renovacion, apierror.ErrorResponse)
	Delete(id int) apierror.ErrorResponse
}

type DefaultRenovacionRoute struct {
	RenovacionService RenovacionService
}

func NewRenovacionDefault(renovacionService RenovacionService) *DefaultRenovacionRoute {
	return &DefaultRenovacionRoute{RenovacionService: renovacionService}
}

func (r *DefaultRenovacionRoute) GetByContrato(c echo.Context) error {
	contratoID, err := strconv.Atoi(c.Param("contratoId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("contratoId", "int"))
	}

	renovaciones, apierr := r.RenovacionService.GetByContrato(contratoID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, renovaciones)
}

func (r *DefaultRenovacionRoute) GetRenovacion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	renovacion, apierr := r.RenovacionService.GetByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, renovacion)
}

func (r *DefaultRenovacionRoute) GetPendientes(c echo.Context) error {
	renovaciones, apierr := r.RenovacionService.GetPendientes()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, renovaciones)
}

func (r *DefaultRenovacionRoute) CreateRenovacion(c echo.Context) error {
	var renovacion entity.Renovacion
	if err := c.Bind(&renovacion); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	created, apierr := r.RenovacionService.Create(&renovacion)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, created)
}

func (r *DefaultRenovacionRoute) UpdateRenovacion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var cambios entity.Renovacion
	if err := c.Bind(&cambios); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	renovacion, apierr := r.RenovacionService.Update(id, &cambios)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, renovacion)
}

// MarcarCobrada settles the renewal. The optional body carries only the
// transaction reference.
func (r *DefaultRenovacionRoute) MarcarCobrada(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var body struct {
		ReferenciaTransaccion *string `json:"ReferenciaTransaccion"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	renovacion, apierr := r.RenovacionService.MarcarCobrada(id, body.ReferenciaTransaccion)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, renovacion)
}

func (r *DefaultRenovacionRoute) DeleteRenovacion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.RenovacionService.Delete(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
