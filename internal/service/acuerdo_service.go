package service

import (
	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AcuerdoRepository interface {
	NextID() (int, error)
	FindActivos() ([]*entity.Acuerdo, error)
	FindAll() ([]*entity.Acuerdo, error)
	FindByID(id int) (*entity.Acuerdo, error)
	Save(acuerdo *entity.Acuerdo) error
	Delete(acuerdo *entity.Acuerdo) error
}

type DefaultAcuerdoService struct {
	Repo     AcuerdoRepository
	Validate *validator.Validate
}

func NewAcuerdoService(repo AcuerdoRepository, validate *validator.Validate) *DefaultAcuerdoService {
	return &DefaultAcuerdoService{
		Repo:     repo,
		Validate: validate,
	}
}

// GetAcuerdosActivos lists agreements matching the active rule: second
// justification submitted or segment "NO KIT", and not withdrawn.
func (s *DefaultAcuerdoService) GetAcuerdosActivos() ([]*entity.Acuerdo, apierror.ErrorResponse) {
	acuerdos, err := s.Repo.FindActivos()
	if err != nil {
		log.Errorf("failed to fetch active acuerdos: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los acuerdos", err)
	}
	return acuerdos, nil
}

func (s *DefaultAcuerdoService) GetAcuerdosTotal() ([]*entity.Acuerdo, apierror.ErrorResponse) {
	acuerdos, err := s.Repo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch acuerdos: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los acuerdos", err)
	}
	return acuerdos, nil
}

func (s *DefaultAcuerdoService) CreateAcuerdo(req *contract.AcuerdoRequest) (*entity.Acuerdo, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	nextID, err := s.Repo.NextID()
	if err != nil {
		log.Errorf("failed to allocate acuerdo id: %v", err)
		return nil, apierror.NewStoreError("Error al crear el acuerdo", err)
	}

	acuerdo := &entity.Acuerdo{ID: nextID}
	applyAcuerdo(acuerdo, req)

	if err := s.Repo.Save(acuerdo); err != nil {
		log.Errorf("failed to save acuerdo: %v", err)
		return nil, apierror.NewStoreError("Error al crear el acuerdo", err)
	}
	return acuerdo, nil
}

// UpdateAcuerdo overwrites the whole row from the payload, nils included.
func (s *DefaultAcuerdoService) UpdateAcuerdo(id int, req *contract.AcuerdoRequest) (*entity.Acuerdo, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	acuerdo, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch acuerdo %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el acuerdo", err)
	}

	if acuerdo == nil {
		return nil, apierror.NewNotFound("Acuerdo", id)
	}

	applyAcuerdo(acuerdo, req)
	if err := s.Repo.Save(acuerdo); err != nil {
		log.Errorf("failed to update acuerdo %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el acuerdo", err)
	}
	return acuerdo, nil
}

// DeleteAcuerdo uses the tracked removal; CRM_ACUERDOS carries no
// database-side triggers, unlike the locator and client tables.
func (s *DefaultAcuerdoService) DeleteAcuerdo(id int) apierror.ErrorResponse {
	acuerdo, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch acuerdo %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el acuerdo", err)
	}

	if acuerdo == nil {
		return apierror.NewNotFound("Acuerdo", id)
	}

	if err := s.Repo.Delete(acuerdo); err != nil {
		log.Errorf("failed to delete acuerdo %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el acuerdo", err)
	}
	return nil
}

func applyAcuerdo(acuerdo *entity.Acuerdo, req *contract.AcuerdoRequest) {
	acuerdo.Nombre = req.Nombre
	acuerdo.Segmento = req.Segmento
	acuerdo.Comercial = req.Comercial
	acuerdo.CifNif = req.CifNif
	acuerdo.Importe = req.Importe
	acuerdo.NBono = req.NBono
	acuerdo.Observaciones = req.Observaciones
	acuerdo.Cobrado = req.Cobrado
	acuerdo.FechaEnviado = req.FechaEnviado
	acuerdo.FechaCobrado = req.FechaCobrado
	acuerdo.Baja = req.Baja
	acuerdo.Validados = req.Validados
	acuerdo.Lanzados = req.Lanzados
	acuerdo.IvaPagado = req.IvaPagado
	acuerdo.PrimerJustPresentado = req.PrimerJustPresentado
	acuerdo.SegundJustPresentado = req.SegundJustPresentado
	acuerdo.FechaFactura = req.FechaFactura
	acuerdo.Presentados = req.Presentados
	acuerdo.Enviado = req.Enviado
}
