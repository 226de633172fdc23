package entity

import "time"

// EstadoCobro is the collection state of a renewal.
type EstadoCobro int

const (
	CobroPendiente  EstadoCobro = 1
	CobroCobrado    EstadoCobro = 2
	CobroIncidencia EstadoCobro = 3
	CobroCancelado  EstadoCobro = 4
)

type Renovacion struct {
	IdRenovacion          int         `gorm:"column:IdRenovacion;primaryKey;autoIncrement" json:"IdRenovacion"`
	IdContrato            int         `gorm:"column:IdContrato;not null" json:"IdContrato"`
	FechaPrevista         time.Time   `gorm:"column:FechaPrevista;not null;index:IX_Renovacion_FechaPrevista" json:"FechaPrevista"`
	FechaCobro            *time.Time  `gorm:"column:FechaCobro" json:"FechaCobro"`
	Importe               float64     `gorm:"column:Importe;not null" json:"Importe"`
	EstadoCobro           EstadoCobro `gorm:"column:EstadoCobro;not null;index:IX_Renovacion_EstadoCobro" json:"EstadoCobro"`
	Notas                 *string     `gorm:"column:Notas;size:500" json:"Notas"`
	MetodoPago            *string     `gorm:"column:MetodoPago;size:100" json:"MetodoPago"`
	ReferenciaTransaccion *string     `gorm:"column:ReferenciaTransaccion;size:100" json:"ReferenciaTransaccion"`

	FechaCreacion     time.Time  `gorm:"column:FechaCreacion;not null" json:"FechaCreacion"`
	FechaModificacion *time.Time `gorm:"column:FechaModificacion" json:"FechaModificacion"`
	CreadoPor         *string    `gorm:"column:CreadoPor;size:100" json:"CreadoPor"`
	ModificadoPor     *string    `gorm:"column:ModificadoPor;size:100" json:"ModificadoPor"`

	Contrato *Contrato `gorm:"foreignKey:IdContrato;references:IdContrato" json:"Contrato,omitempty"`
}

func (Renovacion) TableName() string { return "Renovaciones" }
