package entity

import "time"

type TipoIncidencia int

const (
	IncidenciaConsulta      TipoIncidencia = 1
	IncidenciaError         TipoIncidencia = 2
	IncidenciaSolicitud     TipoIncidencia = 3
	IncidenciaMantenimiento TipoIncidencia = 4
	IncidenciaIncidente     TipoIncidencia = 5
)

type PrioridadIncidencia int

const (
	PrioridadBaja    PrioridadIncidencia = 1
	PrioridadMedia   PrioridadIncidencia = 2
	PrioridadAlta    PrioridadIncidencia = 3
	PrioridadCritica PrioridadIncidencia = 4
)

type EstadoIncidencia int

const (
	IncidenciaAbierta          EstadoIncidencia = 1
	IncidenciaEnProceso        EstadoIncidencia = 2
	IncidenciaPendienteCliente EstadoIncidencia = 3
	IncidenciaResuelta         EstadoIncidencia = 4
	IncidenciaCerrada          EstadoIncidencia = 5
)

type Incidencia struct {
	IdIncidencia int                 `gorm:"column:IdIncidencia;primaryKey;autoIncrement" json:"IdIncidencia"`
	IdContrato   int                 `gorm:"column:IdContrato;not null" json:"IdContrato"`
	Titulo       string              `gorm:"column:Titulo;size:200;not null" json:"Titulo"`
	Fecha        time.Time           `gorm:"column:Fecha;not null;index:IX_Incidencia_Fecha" json:"Fecha"`
	Tipo         TipoIncidencia      `gorm:"column:Tipo;not null" json:"Tipo"`
	Prioridad    PrioridadIncidencia `gorm:"column:Prioridad;not null;index:IX_Incidencia_Prioridad" json:"Prioridad"`
	Descripcion  string              `gorm:"column:Descripcion;not null" json:"Descripcion"`
	Estado       EstadoIncidencia    `gorm:"column:Estado;not null;index:IX_Incidencia_Estado" json:"Estado"`

	FechaResolucion *time.Time `gorm:"column:FechaResolucion" json:"FechaResolucion"`
	FechaCierre     *time.Time `gorm:"column:FechaCierre" json:"FechaCierre"`
	AsignadoA       *string    `gorm:"column:AsignadoA;size:100" json:"AsignadoA"`
	Solucion        *string    `gorm:"column:Solucion" json:"Solucion"`
	Notas           *string    `gorm:"column:Notas;size:1000" json:"Notas"`

	FechaCreacion     time.Time  `gorm:"column:FechaCreacion;not null" json:"FechaCreacion"`
	FechaModificacion *time.Time `gorm:"column:FechaModificacion" json:"FechaModificacion"`
	CreadoPor         *string    `gorm:"column:CreadoPor;size:100" json:"CreadoPor"`
	ModificadoPor     *string    `gorm:"column:ModificadoPor;size:100" json:"ModificadoPor"`

	Contrato *Contrato `gorm:"foreignKey:IdContrato;references:IdContrato" json:"Contrato,omitempty"`
}

func (Incidencia) TableName() string { return "Incidencias" }
