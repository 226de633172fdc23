package repository

import (
	"errors"
	"time"

	"ngpromant/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultContratoRepository struct {
	db *gorm.DB
}

// EstadoAgregado is one group of the per-state statistics query.
type EstadoAgregado struct {
	Estado       entity.EstadoContrato
	Cantidad     int64
	ImporteTotal float64
}

// AreaAgregada is one group of the income-per-area query.
type AreaAgregada struct {
	Area  entity.AreaMantenimiento
	Total float64
}

// MesAgregado is one "YYYY-MM" bucket of the contracts-per-month query.
type MesAgregado struct {
	Mes      string
	Cantidad int64
}

func NewContratoRepository(db *gorm.DB) *DefaultContratoRepository {
	return &DefaultContratoRepository{db: db}
}

// FindAll returns contracts with their client loaded, newest first.
// A non-nil clienteID restricts the listing to that client.
func (r *DefaultContratoRepository) FindAll(clienteID *int) ([]*entity.Contrato, error) {
	query := r.db.Preload("Cliente")
	if clienteID != nil {
		query = query.Where("ID = ?", *clienteID)
	}

	var contratos []*entity.Contrato
	err := query.Order("FechaCreacion DESC").Find(&contratos).Error
	if err != nil {
		return nil, err
	}
	return contratos, nil
}

func (r *DefaultContratoRepository) FindByID(id int) (*entity.Contrato, error) {
	var contrato entity.Contrato
	err := r.db.
		Preload("Cliente").
		Preload("LineasContrato").
		Where("IdContrato = ?", id).
		First(&contrato).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &contrato, nil
}

// FindPorVencer lists active contracts whose end date falls within the
// given number of days, soonest first.
func (r *DefaultContratoRepository) FindPorVencer(dias int) ([]*entity.Contrato, error) {
	limite := time.Now().UTC().AddDate(0, 0, dias)

	var contratos []*entity.Contrato
	err := r.db.
		Preload("Cliente").
		Where("Estado = ? AND FechaFin <= ?", entity.EstadoActivo, limite).
		Order("FechaFin").
		Find(&contratos).Error
	if err != nil {
		return nil, err
	}
	return contratos, nil
}

func (r *DefaultContratoRepository) CountByEstado(estado entity.EstadoContrato) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Contrato{}).Where("Estado = ?", estado).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultContratoRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Contrato{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultContratoRepository) GroupByEstado() ([]*EstadoAgregado, error) {
	var grupos []*EstadoAgregado
	err := r.db.Model(&entity.Contrato{}).
		Select("Estado AS estado, COUNT(*) AS cantidad, SUM(Importe) AS importe_total").
		Group("Estado").
		Order("Estado").
		Scan(&grupos).Error
	if err != nil {
		return nil, err
	}
	return grupos, nil
}

// SumImporteByArea totals contract amounts per maintenance area,
// regardless of state.
func (r *DefaultContratoRepository) SumImporteByArea() ([]*AreaAgregada, error) {
	var grupos []*AreaAgregada
	err := r.db.Model(&entity.Contrato{}).
		Select("Area AS area, SUM(Importe) AS total").
		Group("Area").
		Order("Area").
		Scan(&grupos).Error
	if err != nil {
		return nil, err
	}
	return grupos, nil
}

// CountPorMesDesde buckets contracts created since the given instant by
// calendar month, ascending.
func (r *DefaultContratoRepository) CountPorMesDesde(desde time.Time) ([]*MesAgregado, error) {
	var grupos []*MesAgregado
	err := r.db.Model(&entity.Contrato{}).
		Select("strftime('%Y-%m', FechaCreacion) AS mes, COUNT(*) AS cantidad").
		Where("FechaCreacion >= ?", desde).
		Group("mes").
		Order("mes").
		Scan(&grupos).Error
	if err != nil {
		return nil, err
	}
	return grupos, nil
}

func (r *DefaultContratoRepository) Save(contrato *entity.Contrato) error {
	return r.db.Save(contrato).Error
}

// Delete is the hard-delete pathway; the soft pathway (Estado=Cancelado)
// lives in the service layer and both stay available to callers.
func (r *DefaultContratoRepository) Delete(contrato *entity.Contrato) error {
	return r.db.Delete(contrato).Error
}
