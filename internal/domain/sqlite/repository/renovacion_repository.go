package repository

import (
	"errors"
	"time"

	"ngpromant/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultRenovacionRepository struct {
	db *gorm.DB
}

func NewRenovacionRepository(db *gorm.DB) *DefaultRenovacionRepository {
	return &DefaultRenovacionRepository{db: db}
}

func (r *DefaultRenovacionRepository) FindByContrato(contratoID int) ([]*entity.Renovacion, error) {
	var renovaciones []*entity.Renovacion
	err := r.db.
		Where("IdContrato = ?", contratoID).
		Order("FechaPrevista DESC").
		Find(&renovaciones).Error
	if err != nil {
		return nil, err
	}
	return renovaciones, nil
}

func (r *DefaultRenovacionRepository) FindByID(id int) (*entity.Renovacion, error) {
	var renovacion entity.Renovacion
	err := r.db.
		Preload("Contrato.Cliente").
		Where("IdRenovacion = ?", id).
		First(&renovacion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &renovacion, nil
}

func (r *DefaultRenovacionRepository) FindPendientes() ([]*entity.Renovacion, error) {
	var renovaciones []*entity.Renovacion
	err := r.db.
		Preload("Contrato.Cliente").
		Where("EstadoCobro = ?", entity.CobroPendiente).
		Order("FechaPrevista").
		Find(&renovaciones).Error
	if err != nil {
		return nil, err
	}
	return renovaciones, nil
}

// FindPendientesHasta lists pending renewals due on or before the limit,
// with the client reachable through the contract (two-hop join).
func (r *DefaultRenovacionRepository) FindPendientesHasta(limite time.Time) ([]*entity.Renovacion, error) {
	var renovaciones []*entity.Renovacion
	err := r.db.
		Preload("Contrato.Cliente").
		Where("EstadoCobro = ? AND FechaPrevista <= ?", entity.CobroPendiente, limite).
		Find(&renovaciones).Error
	if err != nil {
		return nil, err
	}
	return renovaciones, nil
}

func (r *DefaultRenovacionRepository) CountPendientes() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Renovacion{}).
		Where("EstadoCobro = ?", entity.CobroPendiente).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SumCobradasEntre totals the amounts collected in the window, state Cobrado.
func (r *DefaultRenovacionRepository) SumCobradasEntre(desde, hasta time.Time) (float64, error) {
	var total *float64
	err := r.db.Model(&entity.Renovacion{}).
		Select("SUM(Importe)").
		Where("FechaCobro >= ? AND FechaCobro <= ? AND EstadoCobro = ?", desde, hasta, entity.CobroCobrado).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *DefaultRenovacionRepository) Save(renovacion *entity.Renovacion) error {
	return r.db.Save(renovacion).Error
}

func (r *DefaultRenovacionRepository) Delete(renovacion *entity.Renovacion) error {
	return r.db.Delete(renovacion).Error
}
