package handler

import (
	"net/http"
	"strconv"

	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AcuerdoService interface {
	GetAcuerdosActivos() ([]*entity.Acuerdo, apierror.ErrorResponse)
	GetAcuerdosTotal() ([]*entity.Acuerdo, apierror.ErrorResponse)
	CreateAcuerdo(req *contract.AcuerdoRequest) (*entity.Acuerdo, apierror.ErrorResponse)
	UpdateAcuerdo(id int, req *contract.AcuerdoRequest) (*entity.Acuerdo, apierror.ErrorResponse)
	DeleteAcuerdo(id int) apierror.ErrorResponse
}

type DefaultAcuerdoRoute struct {
	AcuerdoService AcuerdoService
}

func NewAcuerdoDefault(acuerdoService AcuerdoService) *DefaultAcuerdoRoute {
	return &DefaultAcuerdoRoute{AcuerdoService: acuerdoService}
}

func (r *DefaultAcuerdoRoute) GetActivos(c echo.Context) error {
	acuerdos, apierr := r.AcuerdoService.GetAcuerdosActivos()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, acuerdos)
}

func (r *DefaultAcuerdoRoute) GetTotal(c echo.Context) error {
	acuerdos, apierr := r.AcuerdoService.GetAcuerdosTotal()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, acuerdos)
}

func (r *DefaultAcuerdoRoute) CreateAcuerdo(c echo.Context) error {
	var req contract.AcuerdoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	acuerdo, apierr := r.AcuerdoService.CreateAcuerdo(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, acuerdo)
}

func (r *DefaultAcuerdoRoute) UpdateAcuerdo(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.AcuerdoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	acuerdo, apierr := r.AcuerdoService.UpdateAcuerdo(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, acuerdo)
}

func (r *DefaultAcuerdoRoute) DeleteAcuerdo(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.AcuerdoService.DeleteAcuerdo(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
