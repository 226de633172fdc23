package service

import (
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type IncidenciaRepository interface {
	FindAll() ([]*entity.Incidencia, error)
	FindByID(id int) (*entity.Incidencia, error)
	FindByContrato(contratoID int) ([]*entity.Incidencia, error)
	Save(incidencia *entity.Incidencia) error
	Delete(incidencia *entity.Incidencia) error
}

type DefaultIncidenciaService struct {
	Repo      IncidenciaRepository
	Contratos ContratoRepository
}

func NewIncidenciaService(repo IncidenciaRepository, contratos ContratoRepository) *DefaultIncidenciaService {
	return &DefaultIncidenciaService{
		Repo:      repo,
		Contratos: contratos,
	}
}

func (s *DefaultIncidenciaService) GetAll() ([]*entity.Incidencia, apierror.ErrorResponse) {
	incidencias, err := s.Repo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch incidencias: %v", err)
		return nil, apierror.NewStoreError("Error al obtener las incidencias", err)
	}
	return incidencias, nil
}

func (s *DefaultIncidenciaService) GetByID(id int) (*entity.Incidencia, apierror.ErrorResponse) {
	incidencia, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch incidencia %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al obtener la incidencia", err)
	}

	if incidencia == nil {
		return nil, apierror.NewNotFound("Incidencia", id)
	}
	return incidencia, nil
}

func (s *DefaultIncidenciaService) GetByContrato(contratoID int) ([]*entity.Incidencia, apierror.ErrorResponse) {
	incidencias, err := s.Repo.FindByContrato(contratoID)
	if err != nil {
		log.Errorf("failed to fetch incidencias for contrato %d: %v", contratoID, err)
		return nil, apierror.NewStoreError("Error al obtener las incidencias", err)
	}
	return incidencias, nil
}

func (s *DefaultIncidenciaService) Create(incidencia *entity.Incidencia) (*entity.Incidencia, apierror.ErrorResponse) {
	contrato, err := s.Contratos.FindByID(incidencia.IdContrato)
	if err != nil {
		log.Errorf("failed to check contrato %d: %v", incidencia.IdContrato, err)
		return nil, apierror.NewStoreError("Error al crear la incidencia", err)
	}
	if contrato == nil {
		return nil, apierror.NewSimple(400, "El contrato especificado no existe")
	}

	if incidencia.Estado == 0 {
		incidencia.Estado = entity.IncidenciaAbierta
	}
	if incidencia.Fecha.IsZero() {
		incidencia.Fecha = utils.NowUTC()
	}
	incidencia.FechaCreacion = utils.NowUTC()

	if err := s.Repo.Save(incidencia); err != nil {
		log.Errorf("failed to save incidencia: %v", err)
		return nil, apierror.NewStoreError("Error al crear la incidencia", err)
	}
	return incidencia, nil
}

func (s *DefaultIncidenciaService) Update(id int, cambios *entity.Incidencia) (*entity.Incidencia, apierror.ErrorResponse) {
	incidencia, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch incidencia %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar la incidencia", err)
	}

	if incidencia == nil {
		return nil, apierror.NewNotFound("Incidencia", id)
	}

	incidencia.Titulo = cambios.Titulo
	incidencia.Fecha = cambios.Fecha
	incidencia.Tipo = cambios.Tipo
	incidencia.Prioridad = cambios.Prioridad
	incidencia.Descripcion = cambios.Descripcion
	incidencia.Estado = cambios.Estado
	incidencia.AsignadoA = cambios.AsignadoA
	incidencia.Solucion = cambios.Solucion
	incidencia.Notas = cambios.Notas

	now := utils.NowUTC()
	incidencia.FechaModificacion = &now

	// Resolution and closure stamps follow the state transition.
	switch cambios.Estado {
	case entity.IncidenciaResuelta:
		if incidencia.FechaResolucion == nil {
			incidencia.FechaResolucion = &now
		}
	case entity.IncidenciaCerrada:
		if incidencia.FechaCierre == nil {
			incidencia.FechaCierre = &now
		}
	}

	if err := s.Repo.Save(incidencia); err != nil {
		log.Errorf("failed to update incidencia %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar la incidencia", err)
	}
	return incidencia, nil
}

func (s *DefaultIncidenciaService) Delete(id int) apierror.ErrorResponse {
	incidencia, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch incidencia %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar la incidencia", err)
	}

	if incidencia == nil {
		return apierror.NewNotFound("Incidencia", id)
	}

	if err := s.Repo.Delete(incidencia); err != nil {
		log.Errorf("failed to delete incidencia %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar la incidencia", err)
	}
	return nil
}
