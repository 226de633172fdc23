package entity

import "time"

type AreaMantenimiento int

const (
	AreaSoftware       AreaMantenimiento = 1
	AreaGPS            AreaMantenimiento = 2
	AreaCiberseguridad AreaMantenimiento = 3
)

func (a AreaMantenimiento) String() string {
	switch a {
	case AreaSoftware:
		return "Software"
	case AreaGPS:
		return "GPS"
	case AreaCiberseguridad:
		return "Ciberseguridad"
	default:
		return "Desconocida"
	}
}

// PeriodicidadContrato is the billing period in months.
type PeriodicidadContrato int

const (
	PeriodicidadMensual    PeriodicidadContrato = 1
	PeriodicidadTrimestral PeriodicidadContrato = 3
	PeriodicidadSemestral  PeriodicidadContrato = 6
	PeriodicidadAnual      PeriodicidadContrato = 12
)

type EstadoContrato int

const (
	EstadoActivo    EstadoContrato = 1
	EstadoPendiente EstadoContrato = 2
	EstadoCancelado EstadoContrato = 3
	EstadoVencido   EstadoContrato = 4
)

func (e EstadoContrato) String() string {
	switch e {
	case EstadoActivo:
		return "Activo"
	case EstadoPendiente:
		return "Pendiente"
	case EstadoCancelado:
		return "Cancelado"
	case EstadoVencido:
		return "Vencido"
	default:
		return "Desconocido"
	}
}

// Contrato has a real generated surrogate key (IdContrato). The owning
// client's FK column is literally named "ID" in the legacy schema, same as
// the Cliente primary key it points at.
type Contrato struct {
	IdContrato   int                  `gorm:"column:IdContrato;primaryKey;autoIncrement" json:"IdContrato"`
	ClienteID    int                  `gorm:"column:ID;not null;index:IX_Contrato_Cliente_Area" json:"ID"`
	Area         AreaMantenimiento    `gorm:"column:Area;not null;index:IX_Contrato_Cliente_Area" json:"Area"`
	Descripcion  string               `gorm:"column:Descripcion;size:200;not null" json:"Descripcion"`
	FechaInicio  time.Time            `gorm:"column:FechaInicio;not null" json:"FechaInicio"`
	FechaFin     time.Time            `gorm:"column:FechaFin;not null;index:IX_Contrato_FechaFin" json:"FechaFin"`
	Periodicidad PeriodicidadContrato `gorm:"column:Periodicidad;not null" json:"Periodicidad"`
	Importe      float64              `gorm:"column:Importe;not null" json:"Importe"`
	Estado       EstadoContrato       `gorm:"column:Estado;not null;index:IX_Contrato_Estado" json:"Estado"`
	FormaPago    *string              `gorm:"column:FormaPago;size:100" json:"FormaPago"`
	Notas        *string              `gorm:"column:Notas;size:1000" json:"Notas"`

	FechaCreacion     time.Time  `gorm:"column:FechaCreacion;not null" json:"FechaCreacion"`
	FechaModificacion *time.Time `gorm:"column:FechaModificacion" json:"FechaModificacion"`
	CreadoPor         *string    `gorm:"column:CreadoPor;size:100" json:"CreadoPor"`
	ModificadoPor     *string    `gorm:"column:ModificadoPor;size:100" json:"ModificadoPor"`

	// Relations
	Cliente        *Cliente        `gorm:"foreignKey:ClienteID;references:ID;constraint:OnDelete:RESTRICT" json:"Cliente,omitempty"`
	LineasContrato []LineaContrato `gorm:"foreignKey:IdContrato;references:IdContrato;constraint:OnDelete:CASCADE" json:"-"`
	Renovaciones   []Renovacion    `gorm:"foreignKey:IdContrato;references:IdContrato;constraint:OnDelete:CASCADE" json:"-"`
	Incidencias    []Incidencia    `gorm:"foreignKey:IdContrato;references:IdContrato;constraint:OnDelete:CASCADE" json:"-"`
}

func (Contrato) TableName() string { return "Contratos" }
