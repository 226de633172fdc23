package service

import (
	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/domain/sqlite/repository"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// actorAPI is the audit-stamp identity for writes coming through the API.
const actorAPI = "API User"

type ContratoRepository interface {
	FindAll(clienteID *int) ([]*entity.Contrato, error)
	FindByID(id int) (*entity.Contrato, error)
	FindPorVencer(dias int) ([]*entity.Contrato, error)
	Count() (int64, error)
	CountByEstado(estado entity.EstadoContrato) (int64, error)
	GroupByEstado() ([]*repository.EstadoAgregado, error)
	Save(contrato *entity.Contrato) error
	Delete(contrato *entity.Contrato) error
}

// ClienteChecker is the slice of the full-context client repository the
// contract service needs for referential checks.
type ClienteChecker interface {
	Exists(id int) (bool, error)
}

type DefaultContratoService struct {
	Repo     ContratoRepository
	Clientes ClienteChecker
	Validate *validator.Validate
}

func NewContratoService(repo ContratoRepository, clientes ClienteChecker, validate *validator.Validate) *DefaultContratoService {
	return &DefaultContratoService{
		Repo:     repo,
		Clientes: clientes,
		Validate: validate,
	}
}

func (s *DefaultContratoService) GetContratos(clienteID *int) ([]*contract.ContratoResponse, apierror.ErrorResponse) {
	contratos, err := s.Repo.FindAll(clienteID)
	if err != nil {
		log.Errorf("failed to fetch contratos: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los contratos", err)
	}

	resp := make([]*contract.ContratoResponse, len(contratos))
	for i, contrato := range contratos {
		resp[i] = toContratoResponse(contrato, false)
	}
	return resp, nil
}

func (s *DefaultContratoService) GetContratoByID(id int) (*contract.ContratoResponse, apierror.ErrorResponse) {
	contrato, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch contrato %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al obtener el contrato", err)
	}

	if contrato == nil {
		return nil, apierror.NewNotFound("Contrato", id)
	}
	return toContratoResponse(contrato, true), nil
}

func (s *DefaultContratoService) GetContratosPorVencer(dias int) ([]*contract.ContratoResponse, apierror.ErrorResponse) {
	contratos, err := s.Repo.FindPorVencer(dias)
	if err != nil {
		log.Errorf("failed to fetch expiring contratos: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los contratos", err)
	}

	resp := make([]*contract.ContratoResponse, len(contratos))
	for i, contrato := range contratos {
		resp[i] = toContratoResponse(contrato, false)
	}
	return resp, nil
}

// CreateContrato checks the owning client first: a dangling ClienteId is a
// caller mistake and gets a descriptive 400, never a bare constraint error.
func (s *DefaultContratoService) CreateContrato(req *contract.CreateContratoRequest) (*contract.ContratoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	exists, err := s.Clientes.Exists(req.ClienteId)
	if err != nil {
		log.Errorf("failed to check cliente %d: %v", req.ClienteId, err)
		return nil, apierror.NewStoreError("Error al crear el contrato", err)
	}
	if !exists {
		return nil, apierror.ClienteNoExisteError
	}

	estado := req.Estado
	if estado == 0 {
		estado = entity.EstadoActivo
	}

	creador := actorAPI
	contrato := &entity.Contrato{
		ClienteID:     req.ClienteId,
		Area:          req.Area,
		Descripcion:   req.Descripcion,
		FechaInicio:   req.FechaInicio,
		FechaFin:      req.FechaFin,
		Periodicidad:  req.Periodicidad,
		Importe:       req.Importe,
		Estado:        estado,
		FormaPago:     req.FormaPago,
		Notas:         req.Notas,
		FechaCreacion: utils.NowUTC(),
		CreadoPor:     &creador,
	}

	if err := s.Repo.Save(contrato); err != nil {
		log.Errorf("failed to save contrato: %v", err)
		return nil, apierror.NewStoreError("Error al crear el contrato", err)
	}

	// Reload so the response carries the client name.
	saved, err := s.Repo.FindByID(contrato.IdContrato)
	if err != nil || saved == nil {
		log.Errorf("failed to reload contrato %d: %v", contrato.IdContrato, err)
		return toContratoResponse(contrato, false), nil
	}
	return toContratoResponse(saved, false), nil
}

// UpdateContrato overwrites every mutable field and stamps the change.
func (s *DefaultContratoService) UpdateContrato(id int, req *contract.UpdateContratoRequest) (*contract.ContratoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	contrato, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch contrato %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el contrato", err)
	}

	if contrato == nil {
		return nil, apierror.NewNotFound("Contrato", id)
	}

	modificador := actorAPI
	now := utils.NowUTC()

	contrato.Area = req.Area
	contrato.Descripcion = req.Descripcion
	contrato.FechaInicio = req.FechaInicio
	contrato.FechaFin = req.FechaFin
	contrato.Periodicidad = req.Periodicidad
	contrato.Importe = req.Importe
	contrato.Estado = req.Estado
	contrato.FormaPago = req.FormaPago
	contrato.Notas = req.Notas
	contrato.FechaModificacion = &now
	contrato.ModificadoPor = &modificador

	if err := s.Repo.Save(contrato); err != nil {
		log.Errorf("failed to update contrato %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el contrato", err)
	}
	return toContratoResponse(contrato, false), nil
}

// DeleteContrato removes the row and its cascaded children for good.
func (s *DefaultContratoService) DeleteContrato(id int) apierror.ErrorResponse {
	contrato, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch contrato %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el contrato", err)
	}

	if contrato == nil {
		return apierror.NewNotFound("Contrato", id)
	}

	if err := s.Repo.Delete(contrato); err != nil {
		log.Errorf("failed to delete contrato %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el contrato", err)
	}
	return nil
}

// CancelContrato is the soft alternative to DeleteContrato: the row stays,
// only the state flips. Both pathways remain available to callers.
func (s *DefaultContratoService) CancelContrato(id int) (*contract.ContratoResponse, apierror.ErrorResponse) {
	contrato, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch contrato %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al cancelar el contrato", err)
	}

	if contrato == nil {
		return nil, apierror.NewNotFound("Contrato", id)
	}

	modificador := actorAPI
	now := utils.NowUTC()
	contrato.Estado = entity.EstadoCancelado
	contrato.FechaModificacion = &now
	contrato.ModificadoPor = &modificador

	if err := s.Repo.Save(contrato); err != nil {
		log.Errorf("failed to cancel contrato %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al cancelar el contrato", err)
	}
	return toContratoResponse(contrato, false), nil
}

func (s *DefaultContratoService) GetEstadisticas() (*contract.EstadisticasContratos, apierror.ErrorResponse) {
	grupos, err := s.Repo.GroupByEstado()
	if err != nil {
		log.Errorf("failed to compute contrato statistics: %v", err)
		return nil, apierror.NewStoreError("Error al obtener las estadísticas", err)
	}

	stats := &contract.EstadisticasContratos{
		EstadisticasPorEstado: make([]contract.EstadisticaEstado, len(grupos)),
	}
	for i, g := range grupos {
		stats.TotalContratos += g.Cantidad
		stats.ImporteTotal += g.ImporteTotal
		stats.EstadisticasPorEstado[i] = contract.EstadisticaEstado{
			Estado:       g.Estado.String(),
			Cantidad:     g.Cantidad,
			ImporteTotal: g.ImporteTotal,
		}
	}
	return stats, nil
}

func (s *DefaultContratoService) TestConnection() (*contract.ConexionContratos, apierror.ErrorResponse) {
	total, err := s.Repo.Count()
	if err != nil {
		log.Errorf("contratos connection probe failed: %v", err)
		return nil, apierror.NewStoreError("Error de conexión con la base de datos", err)
	}

	return &contract.ConexionContratos{
		Message:        "Conexión exitosa",
		TotalContratos: total,
		Timestamp:      utils.NowUTC(),
	}, nil
}

func toContratoResponse(contrato *entity.Contrato, withLineas bool) *contract.ContratoResponse {
	resp := &contract.ContratoResponse{
		IdContrato:        contrato.IdContrato,
		ClienteId:         contrato.ClienteID,
		Area:              contrato.Area,
		Descripcion:       contrato.Descripcion,
		FechaInicio:       contrato.FechaInicio,
		FechaFin:          contrato.FechaFin,
		Periodicidad:      contrato.Periodicidad,
		Importe:           contrato.Importe,
		Estado:            contrato.Estado,
		FormaPago:         contrato.FormaPago,
		Notas:             contrato.Notas,
		FechaCreacion:     contrato.FechaCreacion,
		FechaModificacion: contrato.FechaModificacion,
		CreadoPor:         contrato.CreadoPor,
	}

	if contrato.Cliente != nil {
		resp.ClienteNombre = contrato.Cliente.Nombre
	}
	if withLineas {
		total := len(contrato.LineasContrato)
		resp.TotalLineas = &total
		var importe float64
		for _, linea := range contrato.LineasContrato {
			importe += linea.Subtotal()
		}
		resp.ImporteLineas = &importe
	}
	return resp
}
