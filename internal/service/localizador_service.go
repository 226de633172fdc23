package service

import (
	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type LocalizadorRepository interface {
	NextID() (int, error)
	FindAll() ([]*entity.Localizador, error)
	FindByID(id int) (*entity.Localizador, error)
	FindByTipo(tipo string) ([]*entity.Localizador, error)
	FindByCliente(clienteID int) ([]*entity.Localizador, error)
	Count() (int64, error)
	Save(localizador *entity.Localizador) error
	DeleteRaw(id int) (int64, error)
}

type DefaultLocalizadorService struct {
	Repo     LocalizadorRepository
	Validate *validator.Validate
}

func NewLocalizadorService(repo LocalizadorRepository, validate *validator.Validate) *DefaultLocalizadorService {
	return &DefaultLocalizadorService{
		Repo:     repo,
		Validate: validate,
	}
}

func (s *DefaultLocalizadorService) GetAllLocalizadores() ([]*entity.Localizador, apierror.ErrorResponse) {
	localizadores, err := s.Repo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch localizadores: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los localizadores", err)
	}
	return localizadores, nil
}

func (s *DefaultLocalizadorService) GetLocalizadorByID(id int) (*entity.Localizador, apierror.ErrorResponse) {
	localizador, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch localizador %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al obtener el localizador", err)
	}

	if localizador == nil {
		return nil, apierror.NewNotFound("Localizador", id)
	}
	return localizador, nil
}

// GetLocalizadoresByTipo filters on subtype. "GPS_TRACKER" is the catch-all
// and returns every locator.
func (s *DefaultLocalizadorService) GetLocalizadoresByTipo(tipo string) ([]*entity.Localizador, apierror.ErrorResponse) {
	localizadores, err := s.Repo.FindByTipo(tipo)
	if err != nil {
		log.Errorf("failed to fetch localizadores by tipo %q: %v", tipo, err)
		return nil, apierror.NewStoreError("Error al obtener los localizadores", err)
	}
	return localizadores, nil
}

func (s *DefaultLocalizadorService) GetLocalizadoresByCliente(clienteID int) ([]*entity.Localizador, apierror.ErrorResponse) {
	localizadores, err := s.Repo.FindByCliente(clienteID)
	if err != nil {
		log.Errorf("failed to fetch localizadores for cliente %d: %v", clienteID, err)
		return nil, apierror.NewStoreError("Error al obtener los localizadores", err)
	}
	return localizadores, nil
}

func (s *DefaultLocalizadorService) CreateLocalizador(req *contract.CreateLocalizadorRequest) (*entity.Localizador, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	nextID, err := s.Repo.NextID()
	if err != nil {
		log.Errorf("failed to allocate localizador id: %v", err)
		return nil, apierror.NewStoreError("Error al crear el localizador", err)
	}

	localizador := &entity.Localizador{ID: nextID}
	campos := contract.UpdateLocalizadorRequest(*req)
	applyLocalizador(localizador, &campos)

	if err := s.Repo.Save(localizador); err != nil {
		log.Errorf("failed to save localizador: %v", err)
		return nil, apierror.NewStoreError("Error al crear el localizador", err)
	}
	return s.reload(localizador.ID)
}

// UpdateLocalizador overwrites every column from the payload, nils included.
func (s *DefaultLocalizadorService) UpdateLocalizador(id int, req *contract.UpdateLocalizadorRequest) (*entity.Localizador, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	localizador, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch localizador %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el localizador", err)
	}

	if localizador == nil {
		return nil, apierror.NewNotFound("Localizador", id)
	}

	localizador.Cliente = nil
	applyLocalizador(localizador, req)

	if err := s.Repo.Save(localizador); err != nil {
		log.Errorf("failed to update localizador %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al actualizar el localizador", err)
	}
	return s.reload(id)
}

// DeleteLocalizador always goes through the direct statement so the
// table triggers fire on the database side, never tracked removal.
func (s *DefaultLocalizadorService) DeleteLocalizador(id int) apierror.ErrorResponse {
	affected, err := s.Repo.DeleteRaw(id)
	if err != nil {
		log.Errorf("failed to delete localizador %d: %v", id, err)
		return apierror.NewStoreError("Error al eliminar el localizador", err)
	}

	if affected == 0 {
		return apierror.NewNotFound("Localizador", id)
	}
	return nil
}

func (s *DefaultLocalizadorService) TestConnection() (*contract.ConexionLocalizadores, apierror.ErrorResponse) {
	total, err := s.Repo.Count()
	if err != nil {
		log.Errorf("localizadores connection probe failed: %v", err)
		return nil, apierror.NewStoreError("Error de conexión con la base de datos", err)
	}

	return &contract.ConexionLocalizadores{
		Message:            "Conexión exitosa",
		TotalLocalizadores: total,
		Timestamp:          utils.NowUTC(),
	}, nil
}

// reload re-reads the row after a write so the response carries the
// freshly resolved Cliente relation.
func (s *DefaultLocalizadorService) reload(id int) (*entity.Localizador, apierror.ErrorResponse) {
	localizador, err := s.Repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to reload localizador %d: %v", id, err)
		return nil, apierror.NewStoreError("Error al obtener el localizador", err)
	}

	if localizador == nil {
		return nil, apierror.NewNotFound("Localizador", id)
	}
	return localizador, nil
}

func applyLocalizador(l *entity.Localizador, req *contract.UpdateLocalizadorRequest) {
	l.ClienteID = req.ClienteId
	l.Comercial = req.Comercial
	l.Modelo = req.Modelo
	l.Gps = req.Gps
	l.IbButton = req.IbButton
	l.Bluetooth = req.Bluetooth
	l.DescuentosAplicados = req.DescuentosAplicados
	l.CuotaMensualTotal = req.CuotaMensualTotal
	l.CuotaAnualTotal = req.CuotaAnualTotal
	l.AnoVenta = req.AnoVenta
	l.Observaciones = req.Observaciones
	l.Tipo = req.Tipo
}
