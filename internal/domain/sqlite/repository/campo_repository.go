package repository

import (
	"errors"

	"ngpromant/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCampoRepository struct {
	db *gorm.DB
}

func NewCampoRepository(db *gorm.DB) *DefaultCampoRepository {
	return &DefaultCampoRepository{db: db}
}

// FindByAmbito lists active field definitions for one scope, by display order.
func (r *DefaultCampoRepository) FindByAmbito(ambito entity.AmbitoCampo) ([]*entity.CampoPersonalizado, error) {
	var campos []*entity.CampoPersonalizado
	err := r.db.
		Where("Ambito = ? AND Activo = ?", ambito, true).
		Order("Orden").
		Order("NombreCampo").
		Find(&campos).Error
	if err != nil {
		return nil, err
	}
	return campos, nil
}

func (r *DefaultCampoRepository) FindByID(id int) (*entity.CampoPersonalizado, error) {
	var campo entity.CampoPersonalizado
	err := r.db.Where("IdCampo = ?", id).First(&campo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &campo, nil
}

func (r *DefaultCampoRepository) Save(campo *entity.CampoPersonalizado) error {
	return r.db.Save(campo).Error
}

// FindValor returns the single value row for a (field, target object) pair,
// or nil when the pair has no value yet.
func (r *DefaultCampoRepository) FindValor(campoID, objetoID int) (*entity.ValorCampo, error) {
	var valor entity.ValorCampo
	err := r.db.
		Where("IdCampo = ? AND IdObjeto = ?", campoID, objetoID).
		First(&valor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &valor, nil
}

func (r *DefaultCampoRepository) FindValoresByObjeto(ambito entity.AmbitoCampo, objetoID int) ([]*entity.ValorCampo, error) {
	var valores []*entity.ValorCampo
	err := r.db.
		Preload("Campo").
		Joins("JOIN CamposPersonalizados ON CamposPersonalizados.IdCampo = ValoresCampos.IdCampo").
		Where("CamposPersonalizados.Ambito = ? AND ValoresCampos.IdObjeto = ?", ambito, objetoID).
		Find(&valores).Error
	if err != nil {
		return nil, err
	}
	return valores, nil
}

func (r *DefaultCampoRepository) SaveValor(valor *entity.ValorCampo) error {
	return r.db.Save(valor).Error
}
