package service

import (
	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CampoRepository interface {
	FindByAmbito(ambito entity.AmbitoCampo) ([]*entity.CampoPersonalizado, error)
	FindByID(id int) (*entity.CampoPersonalizado, error)
	Save(campo *entity.CampoPersonalizado) error
	FindValor(campoID, objetoID int) (*entity.ValorCampo, error)
	FindValoresByObjeto(ambito entity.AmbitoCampo, objetoID int) ([]*entity.ValorCampo, error)
	SaveValor(valor *entity.ValorCampo) error
}

// DefaultCampoService manages the custom-field definitions and their
// per-object values.
type DefaultCampoService struct {
	Repo     CampoRepository
	Validate *validator.Validate
}

func NewCampoService(repo CampoRepository, validate *validator.Validate) *DefaultCampoService {
	return &DefaultCampoService{
		Repo:     repo,
		Validate: validate,
	}
}

// GetCamposByAmbito lists the active field definitions of one scope in
// display order.
func (s *DefaultCampoService) GetCamposByAmbito(ambito entity.AmbitoCampo) ([]*entity.CampoPersonalizado, apierror.ErrorResponse) {
	campos, err := s.Repo.FindByAmbito(ambito)
	if err != nil {
		log.Errorf("failed to fetch campos for ambito %d: %v", ambito, err)
		return nil, apierror.NewStoreError("Error al obtener los campos personalizados", err)
	}
	return campos, nil
}

func (s *DefaultCampoService) CreateCampo(req *contract.CampoRequest) (*entity.CampoPersonalizado, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	campo := &entity.CampoPersonalizado{
		Ambito:           req.Ambito,
		NombreCampo:      req.NombreCampo,
		EtiquetaCampo:    req.EtiquetaCampo,
		TipoDato:         req.TipoDato,
		OpcionesJSON:     req.OpcionesJSON,
		EsObligatorio:    req.EsObligatorio,
		Activo:           true,
		Orden:            req.Orden,
		Descripcion:      req.Descripcion,
		PlaceholderTexto: req.PlaceholderTexto,
		ValorPorDefecto:  req.ValorPorDefecto,
		FechaCreacion:    utils.NowUTC(),
	}

	if err := s.Repo.Save(campo); err != nil {
		log.Errorf("failed to save campo: %v", err)
		return nil, apierror.NewStoreError("Error al crear el campo personalizado", err)
	}
	return campo, nil
}

func (s *DefaultCampoService) UpdateCampo(id int, req *contract.CampoRequest) (*entity.CampoPersonalizado, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	campo, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch campo %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el campo personalizado", err)
	}

	if campo == nil {
		return nil, apierror.NewNotFound("Campo", id)
	}

	campo.Ambito = req.Ambito
	campo.NombreCampo = req.NombreCampo
	campo.EtiquetaCampo = req.EtiquetaCampo
	campo.TipoDato = req.TipoDato
	campo.OpcionesJSON = req.OpcionesJSON
	campo.EsObligatorio = req.EsObligatorio
	campo.Orden = req.Orden
	campo.Descripcion = req.Descripcion
	campo.PlaceholderTexto = req.PlaceholderTexto
	campo.ValorPorDefecto = req.ValorPorDefecto

	now := utils.NowUTC()
	campo.FechaModificacion = &now

	if err := s.Repo.Save(campo); err != nil {
		log.Errorf("failed to update campo %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el campo personalizado", err)
	}
	return campo, nil
}

// DeleteCampo deactivates the definition. Stored values stay in place so
// reactivating the field brings the data back.
func (s *DefaultCampoService) DeleteCampo(id int) apierror.ErrorResponse {
	campo, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch campo %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el campo personalizado", err)
	}

	if campo == nil {
		return apierror.NewNotFound("Campo", id)
	}

	campo.Activo = false
	now := utils.NowUTC()
	campo.FechaModificacion = &now

	if err := s.Repo.Save(campo); err != nil {
		log.Errorf("failed to deactivate campo %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el campo personalizado", err)
	}
	return nil
}

func (s *DefaultCampoService) GetValoresByObjeto(ambito entity.AmbitoCampo, objetoID int) ([]*entity.ValorCampo, apierror.ErrorResponse) {
	valores, err := s.Repo.FindValoresByObjeto(ambito, objetoID)
	if err != nil {
		log.Errorf("failed to fetch valores for objeto %d: %v", objetoID, err)
		return nil, apierror.NewStoreError("Error al obtener los valores", err)
	}
	return valores, nil
}

// SetValor writes the value of one field on one object, creating or
// overwriting in place. The (IdCampo, IdObjeto) pair is unique.
func (s *DefaultCampoService) SetValor(req *contract.ValorRequest) (*entity.ValorCampo, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	campo, err := s.Repo.FindByID(req.IdCampo)
	if err != nil {
		log.Errorf("failed to fetch campo %d: %v", req.IdCampo, err)
		return nil, apierror.NewStoreError("Error al guardar el valor", err)
	}
	if campo == nil {
		return nil, apierror.NewSimple(400, "El campo especificado no existe")
	}

	valor, err := s.Repo.FindValor(req.IdCampo, req.IdObjeto)
	if err != nil {
		log.Errorf("failed to fetch valor: %v", err)
		return nil, apierror.NewStoreError("Error al guardar el valor", err)
	}

	now := utils.NowUTC()
	if valor == nil {
		valor = &entity.ValorCampo{
			IdCampo:       req.IdCampo,
			IdObjeto:      req.IdObjeto,
			FechaCreacion: now,
		}
	} else {
		valor.FechaModificacion = &now
	}
	valor.Valor = req.Valor

	if err := s.Repo.SaveValor(valor); err != nil {
		log.Errorf("failed to save valor: %v", err)
		return nil, apierror.NewStoreError("Error al guardar el valor", err)
	}
	return valor, nil
}
