package handler

import (
	"net/http"
	"strconv"

	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type IncidenciaService interface {
	GetAll() ([]*entity.Incidencia, apierror.ErrorResponse)
	GetByID(id int) (*entity.Incidencia, apierror.ErrorResponse)
	GetByContrato(contratoID int) ([]*entity.Incidencia, apierror.ErrorResponse)
	Create(incidencia *entity.Incidencia) (*entity.Incidencia, apierror.ErrorResponse)
	Update(id int, cambios *entity.Incidencia) (*entity.Incidencia, apierror.ErrorResponse)
	Delete(id int) apierror.ErrorResponse
}

type DefaultIncidenciaRoute struct {
	IncidenciaService IncidenciaService
}

func NewIncidenciaDefault(incidenciaService IncidenciaService) *DefaultIncidenciaRoute {
	return &DefaultIncidenciaRoute{IncidenciaService: incidenciaService}
}

func (r *DefaultIncidenciaRoute) GetIncidencias(c echo.Context) error {
	incidencias, apierr := r.IncidenciaService.GetAll()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, incidencias)
}

func (r *DefaultIncidenciaRoute) GetIncidencia(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	incidencia, apierr := r.IncidenciaService.GetByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, incidencia)
}

func (r *DefaultIncidenciaRoute) GetByContrato(c echo.Context) error {
	contratoID, err := strconv.Atoi(c.Param("contratoId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("contratoId", "int"))
	}

	incidencias, apierr := r.IncidenciaService.GetByContrato(contratoID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, incidencias)
}

func (r *DefaultIncidenciaRoute) CreateIncidencia(c echo.Context) error {
	var incidencia entity.Incidencia
	if err := c.Bind(&incidencia); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	created, apierr := r.IncidenciaService.Create(&incidencia)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, created)
}

func (r *DefaultIncidenciaRoute) UpdateIncidencia(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var cambios entity.Incidencia
	if err := c.Bind(&cambios); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	incidencia, apierr := r.IncidenciaService.Update(id, &cambios)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, incidencia)
}

func (r *DefaultIncidenciaRoute) DeleteIncidencia(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.IncidenciaService.Delete(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
