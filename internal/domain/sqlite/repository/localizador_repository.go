package repository

import (
	"errors"

	"ngpromant/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultLocalizadorRepository struct {
	db *gorm.DB
}

func NewLocalizadorRepository(db *gorm.DB) *DefaultLocalizadorRepository {
	return &DefaultLocalizadorRepository{db: db}
}

func (r *DefaultLocalizadorRepository) NextID() (int, error) {
	var maxID *int
	err := r.db.Model(&entity.Localizador{}).Select("MAX(ID)").Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	if maxID == nil {
		return 1, nil
	}
	return *maxID + 1, nil
}

func (r *DefaultLocalizadorRepository) FindAll() ([]*entity.Localizador, error) {
	var localizadores []*entity.Localizador
	err := r.db.Preload("Cliente").Order("ID DESC").Find(&localizadores).Error
	if err != nil {
		return nil, err
	}
	return localizadores, nil
}

// FindByID loads the row with its client relation populated, so writers can
// hand back a read-your-write view.
func (r *DefaultLocalizadorRepository) FindByID(id int) (*entity.Localizador, error) {
	var localizador entity.Localizador
	err := r.db.Preload("Cliente").Where("ID = ?", id).First(&localizador).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &localizador, nil
}

// FindByTipo filters on the TIPO column. "GPS_TRACKER" means every row:
// all localizers are GPS trackers, the column only distinguishes subtypes.
func (r *DefaultLocalizadorRepository) FindByTipo(tipo string) ([]*entity.Localizador, error) {
	query := r.db.Preload("Cliente")
	if tipo != "GPS_TRACKER" {
		query = query.Where("TIPO = ?", tipo)
	}

	var localizadores []*entity.Localizador
	err := query.Order("ID DESC").Find(&localizadores).Error
	if err != nil {
		return nil, err
	}
	return localizadores, nil
}

func (r *DefaultLocalizadorRepository) FindByCliente(clienteID int) ([]*entity.Localizador, error) {
	var localizadores []*entity.Localizador
	err := r.db.
		Preload("Cliente").
		Where("CLIENTE = ?", clienteID).
		Order("ID DESC").
		Find(&localizadores).Error
	if err != nil {
		return nil, err
	}
	return localizadores, nil
}

func (r *DefaultLocalizadorRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Localizador{}).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *DefaultLocalizadorRepository) Save(localizador *entity.Localizador) error {
	return r.db.Save(localizador).Error
}

// DeleteRaw always removes via direct statement, never tracked removal:
// the LOCALIZADORES table has database-side triggers.
func (r *DefaultLocalizadorRepository) DeleteRaw(id int) (int64, error) {
	res := r.db.Exec("DELETE FROM LOCALIZADORES WHERE ID = ?", id)
	return res.RowsAffected, res.Error
}

// Ping issues a trivial statement to probe connectivity.
func (r *DefaultLocalizadorRepository) Ping() error {
	return r.db.Exec("SELECT 1").Error
}
