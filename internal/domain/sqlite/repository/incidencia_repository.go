package repository

import (
	"errors"

	"ngpromant/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultIncidenciaRepository struct {
	db *gorm.DB
}

func NewIncidenciaRepository(db *gorm.DB) *DefaultIncidenciaRepository {
	return &DefaultIncidenciaRepository{db: db}
}

func (r *DefaultIncidenciaRepository) FindAll() ([]*entity.Incidencia, error) {
	var incidencias []*entity.Incidencia
	err := r.db.
		Preload("Contrato.Cliente").
		Order("Fecha DESC").
		Find(&incidencias).Error
	if err != nil {
		return nil, err
	}
	return incidencias, nil
}

func (r *DefaultIncidenciaRepository) FindByID(id int) (*entity.Incidencia, error) {
	var incidencia entity.Incidencia
	err := r.db.
		Preload("Contrato.Cliente").
		Where("IdIncidencia = ?", id).
		First(&incidencia).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &incidencia, nil
}

func (r *DefaultIncidenciaRepository) FindByContrato(contratoID int) ([]*entity.Incidencia, error) {
	var incidencias []*entity.Incidencia
	err := r.db.
		Where("IdContrato = ?", contratoID).
		Order("Fecha DESC").
		Find(&incidencias).Error
	if err != nil {
		return nil, err
	}
	return incidencias, nil
}

func (r *DefaultIncidenciaRepository) CountAbiertas() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Incidencia{}).
		Where("Estado = ?", entity.IncidenciaAbierta).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultIncidenciaRepository) Save(incidencia *entity.Incidencia) error {
	return r.db.Save(incidencia).Error
}

func (r *DefaultIncidenciaRepository) Delete(incidencia *entity.Incidencia) error {
	return r.db.Delete(incidencia).Error
}
