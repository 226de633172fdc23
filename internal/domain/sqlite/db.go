package sqlite

import (
	"time"

	"ngpromant/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Init opens the full-schema context: every table the application knows
// about lives behind this handle.
func Init(dbPath string) (*gorm.DB, error) {
	db, err := open(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Cliente{},
		&entity.Contrato{},
		&entity.LineaContrato{},
		&entity.Renovacion{},
		&entity.Incidencia{},
		&entity.CampoPersonalizado{},
		&entity.ValorCampo{},
		&entity.Usuario{},
		&entity.Localizador{},
		&entity.Acuerdo{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// InitClientes opens the narrow context: an independent session over the
// same database that only knows the Clientes table. One controller family
// is written against this handle; it must stay a separate unit of work
// from the full context, a write through one is invisible to an in-flight
// read through the other until both re-query the store.
func InitClientes(dbPath string) (*gorm.DB, error) {
	db, err := open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&entity.Cliente{}); err != nil {
		return nil, err
	}
	return db, nil
}

func open(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
