package handler

import (
	"net/http"
	"strconv"

	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CampoService interface {
	GetCamposByAmbito(ambito entity.AmbitoCampo) ([]*entity.CampoPersonalizado, apierror.ErrorResponse)
	CreateCampo(req *contract.CampoRequest) (*entity.CampoPersonalizado, apierror.ErrorResponse)
	UpdateCampo(id int, req *contract.CampoRequest) (*entity.CampoPersonalizado, apierror.ErrorResponse)
	DeleteCampo(id int) apierror.ErrorResponse
	GetValoresByObjeto(ambito entity.AmbitoCampo, objetoID int) ([]*entity.ValorCampo, apierror.ErrorResponse)
	SetValor(req *contract.ValorRequest) (*entity.ValorCampo, apierror.ErrorResponse)
}

type DefaultCampoRoute struct {
	CampoService CampoService
}

func NewCampoDefault(campoService CampoService) *DefaultCampoRoute {
	return &DefaultCampoRoute{CampoService: campoService}
}

// GetCampos lists the active field definitions of the scope in ?ambito=.
func (r *DefaultCampoRoute) GetCampos(c echo.Context) error {
	raw := c.QueryParam("ambito")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("ambito"))
	}

	ambito, err := strconv.Atoi(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("ambito", "int"))
	}

	campos, apierr := r.CampoService.GetCamposByAmbito(entity.AmbitoCampo(ambito))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, campos)
}

func (r *DefaultCampoRoute) CreateCampo(c echo.Context) error {
	var req contract.CampoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	campo, apierr := r.CampoService.CreateCampo(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, campo)
}

func (r *DefaultCampoRoute) UpdateCampo(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.CampoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	campo, apierr := r.CampoService.UpdateCampo(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, campo)
}

func (r *DefaultCampoRoute) DeleteCampo(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.CampoService.DeleteCampo(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultCampoRoute) GetValores(c echo.Context) error {
	ambito, err := strconv.Atoi(c.Param("ambito"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("ambito", "int"))
	}

	objetoID, err := strconv.Atoi(c.Param("objetoId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("objetoId", "int"))
	}

	valores, apierr := r.CampoService.GetValoresByObjeto(entity.AmbitoCampo(ambito), objetoID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, valores)
}

func (r *DefaultCampoRoute) SetValor(c echo.Context) error {
	var req contract.ValorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	valor, apierr := r.CampoService.SetValor(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, valor)
}
