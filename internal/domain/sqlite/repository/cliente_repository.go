package repository

import (
	"errors"

	"ngpromant/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultClienteRepository is the full-schema-context view of the Clientes
// table. The ClientesSimple controller family uses its own repository over
// an independent session; see DefaultClienteSimpleRepository.
type DefaultClienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) *DefaultClienteRepository {
	return &DefaultClienteRepository{db: db}
}

// NextID computes the next manual primary key (max+1, or 1 on an empty
// table). The read and the later insert are not guarded against concurrent
// allocators; the legacy schema disables generated keys for this table.
func (r *DefaultClienteRepository) NextID() (int, error) {
	var maxID *int
	err := r.db.Model(&entity.Cliente{}).Select("MAX(ID)").Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	if maxID == nil {
		return 1, nil
	}
	return *maxID + 1, nil
}

// FindAllActive lists clients that have not been soft-deleted, ordered by name.
func (r *DefaultClienteRepository) FindAllActive() ([]*entity.Cliente, error) {
	var clientes []*entity.Cliente
	err := r.db.
		Where("DESCATALOGADO IS NULL OR DESCATALOGADO = ?", false).
		Order("NOMBRE").
		Find(&clientes).Error
	if err != nil {
		return nil, err
	}
	return clientes, nil
}

// FindByID returns the client with its contracts loaded, soft-deleted or not.
func (r *DefaultClienteRepository) FindByID(id int) (*entity.Cliente, error) {
	var cliente entity.Cliente
	err := r.db.Preload("Contratos").First(&cliente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *DefaultClienteRepository) Exists(id int) (bool, error) {
	var exists int
	err := r.db.
		Raw("SELECT EXISTS(SELECT 1 FROM Clientes WHERE ID = ?)", id).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (r *DefaultClienteRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Cliente{}).
		Where("DESCATALOGADO IS NULL OR DESCATALOGADO = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultClienteRepository) Save(cliente *entity.Cliente) error {
	return r.db.Save(cliente).Error
}

// SoftDelete flags the row as withdrawn; the row stays addressable by ID
// for historical contract and localizador joins.
func (r *DefaultClienteRepository) SoftDelete(cliente *entity.Cliente) error {
	t := true
	cliente.Descatalogado = &t
	return r.db.Save(cliente).Error
}

// HardDelete removes the row with a direct statement, bypassing gorm's
// change tracking. The legacy table carries an audit trigger that conflicts
// with tracked deletes.
func (r *DefaultClienteRepository) HardDelete(id int) (int64, error) {
	res := r.db.Exec("DELETE FROM Clientes WHERE ID = ?", id)
	return res.RowsAffected, res.Error
}
