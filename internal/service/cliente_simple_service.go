package service

import (
	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// ClienteSimpleRepository is the narrow-session view of the Clientes table.
// It must never be mixed with ClienteRepository: the two run over separate
// database handles and follow different update and delete conventions.
type ClienteSimpleRepository interface {
	NextID() (int, error)
	FindAll() ([]*entity.Cliente, error)
	FindByID(id int) (*entity.Cliente, error)
	Count() (int64, error)
	Save(cliente *entity.Cliente) error
	DeleteRaw(id int) (int64, error)
}

type DefaultClienteSimpleService struct {
	Repo     ClienteSimpleRepository
	Validate *validator.Validate
}

func NewClienteSimpleService(repo ClienteSimpleRepository, validate *validator.Validate) *DefaultClienteSimpleService {
	return &DefaultClienteSimpleService{
		Repo:     repo,
		Validate: validate,
	}
}

// GetAllClientes lists every client, decommissioned ones included. The
// narrow pathway never filters; filtering happens on the full pathway.
func (s *DefaultClienteSimpleService) GetAllClientes() ([]*entity.Cliente, apierror.ErrorResponse) {
	clientes, err := s.Repo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch clientes: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los clientes", err)
	}
	return clientes, nil
}

func (s *DefaultClienteSimpleService) GetClienteByID(id int) (*entity.Cliente, apierror.ErrorResponse) {
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

func (s *DefaultClienteSimpleService) CreateCliente(req *contract.ClienteCreateRequest) (*entity.Cliente, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	nextID, err := s.Repo.NextID()
	if err != nil {
		log.Errorf("failed to allocate cliente id: %v", err)
		return nil, apierror.NewStoreError("Error al crear el cliente", err)
	}

	pais := req.Pais
	if pais == nil {
		esp := "España"
		pais = &esp
	}
	descatalogado := req.Descatalogado
	if descatalogado == nil {
		no := false
		descatalogado = &no
	}

	cliente := &entity.Cliente{
		ID:              nextID,
		Nombre:          &req.Nombre,
		DniCif:          req.DniCif,
		Direccion:       req.Direccion,
		Poblacion:       req.Poblacion,
		Provincia:       req.Provincia,
		CodPostal:       req.CodPostal,
		Pais:            pais,
		Telef1:          req.Telef1,
		Telef2:          req.Telef2,
		Email1:          req.Email1,
		Email2:          req.Email2,
		Observaciones:   req.Observaciones,
		NombreComercial: req.NombreComercial,
		Comercial:       req.Comercial,
		Descatalogado:   descatalogado,
	}

	if err := s.Repo.Save(cliente); err != nil {
		log.Errorf("failed to save cliente: %v", err)
		return nil, apierror.NewStoreError("Error al crear el cliente", err)
	}
	return cliente, nil
}

// UpdateCliente patches only the fields present in the payload. Absent
// fields keep their stored value; this pathway cannot null a column out.
func (s *DefaultClienteSimpleService) UpdateCliente(id int, req *contract.ClienteUpdateRequest) (*entity.Cliente, apierror.ErrorResponse) {
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

	if req.Nombre != nil {
		cliente.Nombre = req.Nombre
	}
	if req.DniCif != nil {
		cliente.DniCif = req.DniCif
	}
	if req.Direccion != nil {
		cliente.Direccion = req.Direccion
	}
	if req.Poblacion != nil {
		cliente.Poblacion = req.Poblacion
	}
	if req.Provincia != nil {
		cliente.Provincia = req.Provincia
	}
	if req.CodPostal != nil {
		cliente.CodPostal = req.CodPostal
	}
	if req.Pais != nil {
		cliente.Pais = req.Pais
	}
	if req.Telef1 != nil {
		cliente.Telef1 = req.Telef1
	}
	if req.Telef2 != nil {
		cliente.Telef2 = req.Telef2
	}
	if req.Email1 != nil {
		cliente.Email1 = req.Email1
	}
	if req.Email2 != nil {
		cliente.Email2 = req.Email2
	}
	if req.Observaciones != nil {
		cliente.Observaciones = req.Observaciones
	}
	if req.NombreComercial != nil {
		cliente.NombreComercial = req.NombreComercial
	}
	if req.Comercial != nil {
		cliente.Comercial = req.Comercial
	}
	if req.Descatalogado != nil {
		cliente.Descatalogado = req.Descatalogado
	}

	if err := s.Repo.Save(cliente); err != nil {
		log.Errorf("failed to update cliente %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el cliente", err)
	}
	return cliente, nil
}

// DeleteCliente removes the row with a direct statement. This pathway
// bypasses relation tracking on purpose; the soft alternative lives on
// the full-context service.
func (s *DefaultClienteSimpleService) DeleteCliente(id int) apierror.ErrorResponse {
	affected, err := s.Repo.DeleteRaw(id)
	if err != nil {
		log.Errorf("failed to delete cliente %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el cliente", err)
	}

	if affected == 0 {
		return apierror.NewNotFound("Cliente", id)
	}
	return nil
}

func (s *DefaultClienteSimpleService) TestConnection() (*contract.ConexionClientes, apierror.ErrorResponse) {
	total, err := s.Repo.Count()
	if err != nil {
		log.Errorf("clientes connection probe failed: %v", err)
		return nil, apierror.NewStoreError("Error de conexión con la base de datos", err)
	}

	return &contract.ConexionClientes{
		Message:       "Conexión exitosa",
		TotalClientes: total,
		Timestamp:     utils.NowUTC(),
	}, nil
}
