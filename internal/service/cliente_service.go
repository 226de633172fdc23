package service

import (
	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// ClienteRepository is the full-schema-session view of the Clientes table.
type ClienteRepository interface {
	NextID() (int, error)
	FindAllActive() ([]*entity.Cliente, error)
	FindByID(id int) (*entity.Cliente, error)
	Exists(id int) (bool, error)
	CountActive() (int64, error)
	Save(cliente *entity.Cliente) error
	SoftDelete(cliente *entity.Cliente) error
	HardDelete(id int) (int64, error)
}

// DefaultClienteService is the full-context client pathway: active-only
// listings, whole-row overwrites and soft deletes. The narrow pathway with
// the opposite conventions is DefaultClienteSimpleService.
type DefaultClienteService struct {
	Repo     ClienteRepository
	Validate *validator.Validate
}

func NewClienteService(repo ClienteRepository, validate *validator.Validate) *DefaultClienteService {
	return &DefaultClienteService{
		Repo:     repo,
		Validate: validate,
	}
}

func (s *DefaultClienteService) GetClientesActivos() ([]*entity.Cliente, apierror.ErrorResponse) {
	clientes, err := s.Repo.FindAllActive()
	if err != nil {
		log.Errorf("failed to fetch active clientes: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los clientes", err)
	}
	return clientes, nil
}

// GetClienteByID returns the client with its contracts loaded. Soft-deleted
// clients stay addressable here, only listings exclude them.
func (s *DefaultClienteService) GetClienteByID(id int) (*entity.Cliente, apierror.ErrorResponse) {
	cliente, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cliente %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al obtener el cliente", err)
	}

	if cliente == nil {
		return nil, apierror.NewNotFound("Cliente", id)
	}
	return cliente, nil
}

func (s *DefaultClienteService) CreateCliente(req *contract.ClienteCreateRequest) (*entity.Cliente, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	nextID, err := s.Repo.NextID()
	if err != nil {
		log.Errorf("failed to allocate cliente id: %v", err)
		return nil, apierror.NewStoreError("Error al crear el cliente", err)
	}

	cliente := &entity.Cliente{
		ID:              nextID,
		Nombre:          &req.Nombre,
		DniCif:          req.DniCif,
		Direccion:       req.Direccion,
		Poblacion:       req.Poblacion,
		Provincia:       req.Provincia,
		CodPostal:       req.CodPostal,
		Pais:            req.Pais,
		Telef1:          req.Telef1,
		Telef2:          req.Telef2,
		Email1:          req.Email1,
		Email2:          req.Email2,
		Observaciones:   req.Observaciones,
		NombreComercial: req.NombreComercial,
		Comercial:       req.Comercial,
		Descatalogado:   req.Descatalogado,
	}

	if err := s.Repo.Save(cliente); err != nil {
		log.Errorf("failed to save cliente: %v", err)
		return nil, apierror.NewStoreError("Error al crear el cliente", err)
	}
	return cliente, nil
}

// ReplaceCliente overwrites every mutable field from the payload, nils
// included. A field the caller omits is written as NULL; this is the
// whole-row convention, not a patch.
func (s *DefaultClienteService) ReplaceCliente(id int, req *contract.ClienteReplaceRequest) (*entity.Cliente, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	cliente, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cliente %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el cliente", err)
	}

	if cliente == nil {
		return nil, apierror.NewNotFound("Cliente", id)
	}

	cliente.Nombre = req.Nombre
	cliente.DniCif = req.DniCif
	cliente.Direccion = req.Direccion
	cliente.Poblacion = req.Poblacion
	cliente.Provincia = req.Provincia
	cliente.CodPostal = req.CodPostal
	cliente.Pais = req.Pais
	cliente.Telef1 = req.Telef1
	cliente.Telef2 = req.Telef2
	cliente.Email1 = req.Email1
	cliente.Email2 = req.Email2
	cliente.Observaciones = req.Observaciones
	cliente.NombreComercial = req.NombreComercial
	cliente.Comercial = req.Comercial
	cliente.Descatalogado = req.Descatalogado

	if err := s.Repo.Save(cliente); err != nil {
		log.Errorf("failed to replace cliente %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el cliente", err)
	}
	return cliente, nil
}

// DeleteCliente flags the row DESCATALOGADO instead of removing it, so
// contracts keep a resolvable owner.
func (s *DefaultClienteService) DeleteCliente(id int) apierror.ErrorResponse {
	cliente, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cliente %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el cliente", err)
	}

	if cliente == nil {
		return apierror.NewNotFound("Cliente", id)
	}

	// A row already flagged needs no second write.
	if !cliente.Activo() {
		return nil
	}

	if err := s.Repo.SoftDelete(cliente); err != nil {
		log.Errorf("failed to soft-delete cliente %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el cliente", err)
	}
	return nil
}
