package service

import (
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type RenovacionRepository interface {
	FindByContrato(contratoID int) ([]*entity.Renovacion, error)
	FindByID(id int) (*entity.Renovacion, error)
	FindPendientes() ([]*entity.Renovacion, error)
	Save(renovacion *entity.Renovacion) error
	Delete(renovacion *entity.Renovacion) error
}

// DefaultRenovacionService manages the renewal rows behind each contract.
// It works on entities directly; renewals have no separate wire shape.
type DefaultRenovacionService struct {
	Repo      RenovacionRepository
	Contratos ContratoRepository
}

func NewRenovacionService(repo RenovacionRepository, contratos ContratoRepository) *DefaultRenovacionService {
	return &DefaultRenovacionService{
		Repo:      repo,
		Contratos: contratos,
	}
}

func (s *DefaultRenovacionService) GetByContrato(contratoID int) ([]*entity.Renovacion, apierror.ErrorResponse) {
	renovaciones, err := s.Repo.FindByContrato(contratoID)
	if err != nil {
		log.Errorf("failed to fetch renovaciones for contrato %d: %v", contratoID, err)
		return nil, apierror.NewStoreError("Error al obtener las renovaciones", err)
	}
	return renovaciones, nil
}

func (s *DefaultRenovacionService) GetByID(id int) (*entity.Renovacion, apierror.ErrorResponse) {
	renovacion, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch renovacion %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al obtener la renovación", err)
	}

	if renovacion == nil {
		return nil, apierror.NewNotFound("Renovación", id)
	}
	return renovacion, nil
}

func (s *DefaultRenovacionService) GetPendientes() ([]*entity.Renovacion, apierror.ErrorResponse) {
	renovaciones, err := s.Repo.FindPendientes()
	if err != nil {
		log.Errorf("failed to fetch pending renovaciones: %v", err)
		return nil, apierror.NewStoreError("Error al obtener las renovaciones", err)
	}
	return renovaciones, nil
}

func (s *DefaultRenovacionService) Create(renovacion *entity.Renovacion) (*entity.Renovacion, apierror.ErrorResponse) {
	contrato, err := s.Contratos.FindByID(renovacion.IdContrato)
	if err != nil {
		log.Errorf("failed to check contrato %d: %v", renovacion.IdContrato, err)
		return nil, apierror.NewStoreError("Error al crear la renovación", err)
	}
	if contrato == nil {
		return nil, apierror.NewSimple(400, "El contrato especificado no existe")
	}

	if renovacion.EstadoCobro == 0 {
		renovacion.EstadoCobro = entity.CobroPendiente
	}
	renovacion.FechaCreacion = utils.NowUTC()

	if err := s.Repo.Save(renovacion); err != nil {
		log.Errorf("failed to save renovacion: %v", err)
		return nil, apierror.NewStoreError("Error al crear la renovación", err)
	}
	return renovacion, nil
}

func (s *DefaultRenovacionService) Update(id int, cambios *entity.Renovacion) (*entity.Renovacion, apierror.ErrorResponse) {
	renovacion, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch renovacion %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar la renovación", err)
	}

	if renovacion == nil {
		return nil, apierror.NewNotFound("Renovación", id)
	}

	renovacion.FechaPrevista = cambios.FechaPrevista
	renovacion.FechaCobro = cambios.FechaCobro
	renovacion.Importe = cambios.Importe
	renovacion.EstadoCobro = cambios.EstadoCobro
	renovacion.Notas = cambios.Notas
	renovacion.MetodoPago = cambios.MetodoPago
	renovacion.ReferenciaTransaccion = cambios.ReferenciaTransaccion
	now := utils.NowUTC()
	renovacion.FechaModificacion = &now

	if err := s.Repo.Save(renovacion); err != nil {
		log.Errorf("failed to update renovacion %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar la renovación", err)
	}
	return renovacion, nil
}

// MarcarCobrada settles a pending renewal: state Cobrado, collection date
// stamped, optional transaction reference recorded.
func (s *DefaultRenovacionService) MarcarCobrada(id int, referencia *string) (*entity.Renovacion, apierror.ErrorResponse) {
	renovacion, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch renovacion %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar la renovación", err)
	}

	if renovacion == nil {
		return nil, apierror.NewNotFound("Renovación", id)
	}

	now := utils.NowUTC()
	renovacion.EstadoCobro = entity.CobroCobrado
	renovacion.FechaCobro = &now
	renovacion.FechaModificacion = &now
	if referencia != nil {
		renovacion.ReferenciaTransaccion = referencia
	} else if renovacion.ReferenciaTransaccion == nil {
		// Collections always end up with a reference; generate one when the
		// caller did not bring the bank's.
		ref := uuid.NewString()
		renovacion.ReferenciaTransaccion = &ref
	}

	if err := s.Repo.Save(renovacion); err != nil {
		log.Errorf("failed to settle renovacion %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar la renovación", err)
	}
	return renovacion, nil
}

func (s *DefaultRenovacionService) Delete(id int) apierror.ErrorResponse {
	renovacion, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch renovacion %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar la renovación", err)
	}

	if renovacion == nil {
		return apierror.NewNotFound("Renovación", id)
	}

	if err := s.Repo.Delete(renovacion); err != nil {
		log.Errorf("failed to delete renovacion %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar la renovación", err)
	}
	return nil
}
