package repository

import (
	"errors"

	"ngpromant/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultClienteSimpleRepository backs the ClientesSimple controller family.
// It is built over the narrow, Clientes-only session and is deliberately NOT
// merged with DefaultClienteRepository: the two contexts are independent
// units of work with their own listing and default-value conventions, and
// callers of each rely on those differences.
type DefaultClienteSimpleRepository struct {
	db *gorm.DB
}

func NewClienteSimpleRepository(db *gorm.DB) *DefaultClienteSimpleRepository {
	return &DefaultClienteSimpleRepository{db: db}
}

func (r *DefaultClienteSimpleRepository) NextID() (int, error) {
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

// FindAll lists every client, soft-deleted included, ordered by name.
// Unlike the full context this path never filters on DESCATALOGADO.
func (r *DefaultClienteSimpleRepository) FindAll() ([]*entity.Cliente, error) {
	var clientes []*entity.Cliente
	err := r.db.Order("NOMBRE").Find(&clientes).Error
	if err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *DefaultClienteSimpleRepository) FindByID(id int) (*entity.Cliente, error) {
	var cliente entity.Cliente
	err := r.db.First(&cliente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *DefaultClienteSimpleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Cliente{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultClienteSimpleRepository) Save(cliente *entity.Cliente) error {
	return r.db.Save(cliente).Error
}

// DeleteRaw removes the row with a direct statement; this path never goes
// through tracked entity removal because of the table's audit trigger.
func (r *DefaultClienteSimpleRepository) DeleteRaw(id int) (int64, error) {
	res := r.db.Exec("DELETE FROM Clientes WHERE ID = ?", id)
	return res.RowsAffected, res.Error
}
