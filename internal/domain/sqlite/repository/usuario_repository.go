package repository

import (
	"errors"

	"ngpromant/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultUsuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *DefaultUsuarioRepository {
	return &DefaultUsuarioRepository{db: db}
}

func (r *DefaultUsuarioRepository) FindActiveByEmail(email string) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := r.db.Where("Email = ? AND Activo = ?", email, true).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *DefaultUsuarioRepository) FindByID(id int) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := r.db.First(&usuario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *DefaultUsuarioRepository) Save(usuario *entity.Usuario) error {
	return r.db.Save(usuario).Error
}
