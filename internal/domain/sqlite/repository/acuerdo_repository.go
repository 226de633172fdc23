package repository

import (
	"errors"

	"ngpromant/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAcuerdoRepository struct {
	db *gorm.DB
}

func NewAcuerdoRepository(db *gorm.DB) *DefaultAcuerdoRepository {
	return &DefaultAcuerdoRepository{db: db}
}

func (r *DefaultAcuerdoRepository) NextID() (int, error) {
	var maxID *int
	err := r.db.Model(&entity.Acuerdo{}).Select("MAX(ID)").Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	if maxID == nil {
		return 1, nil
	}
	return *maxID + 1, nil
}

// FindActivos applies the agreement activity rule: second justification
// submitted or segment 'NO KIT', and not withdrawn. A NULL BAJA counts as
// not withdrawn.
func (r *DefaultAcuerdoRepository) FindActivos() ([]*entity.Acuerdo, error) {
	var acuerdos []*entity.Acuerdo
	err := r.db.
		Where("(SEGUND_JUST_PRESENTADO IS NOT NULL OR SEGMENTO = ?) AND (BAJA IS NULL OR BAJA = ?)", "NO KIT", false).
		Find(&acuerdos).Error
	if err != nil {
		return nil, err
	}
	return acuerdos, nil
}

func (r *DefaultAcuerdoRepository) FindAll() ([]*entity.Acuerdo, error) {
	var acuerdos []*entity.Acuerdo
	err := r.db.Find(&acuerdos).Error
	if err != nil {
		return nil, err
	}
	return acuerdos, nil
}

func (r *DefaultAcuerdoRepository) FindByID(id int) (*entity.Acuerdo, error) {
	var acuerdo entity.Acuerdo
	err := r.db.First(&acuerdo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &acuerdo, nil
}

func (r *DefaultAcuerdoRepository) Save(acuerdo *entity.Acuerdo) error {
	return r.db.Save(acuerdo).Error
}

// Delete uses the tracked removal path; the CRM_ACUERDOS triggers run
// server-side without conflicting with change tracking.
func (r *DefaultAcuerdoRepository) Delete(acuerdo *entity.Acuerdo) error {
	return r.db.Delete(acuerdo).Error
}
