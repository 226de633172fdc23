package contract

import (
	"time"

	"ngpromant/internal/domain/entity"
)

type CreateContratoRequest struct {
	ClienteId    int                         `json:"ClienteId" validate:"required"`
	Area         entity.AreaMantenimiento    `json:"Area" validate:"required,oneof=1 2 3"`
	Descripcion  string                      `json:"Descripcion" validate:"required,max=200"`
	FechaInicio  time.Time                   `json:"FechaInicio" validate:"required"`
	FechaFin     time.Time                   `json:"FechaFin" validate:"required"`
	Periodicidad entity.PeriodicidadContrato `json:"Periodicidad" validate:"required,oneof=1 3 6 12"`
	Importe      float64                     `json:"Importe" validate:"required,gt=0"`
	Estado       entity.EstadoContrato       `json:"Estado" validate:"omitempty,oneof=1 2 3 4"`
	FormaPago    *string                     `json:"FormaPago" validate:"omitempty,max=100"`
	Notas        *string                     `json:"Notas" validate:"omitempty,max=1000"`
}

// UpdateContratoRequest overwrites every mutable field unconditionally;
// there is no patch variant for contracts.
type UpdateContratoRequest struct {
	Area         entity.AreaMantenimiento    `json:"Area" validate:"required,oneof=1 2 3"`
	Descripcion  string                      `json:"Descripcion" validate:"required,max=200"`
	FechaInicio  time.Time                   `json:"FechaInicio" validate:"required"`
	FechaFin     time.Time                   `json:"FechaFin" validate:"required"`
	Periodicidad entity.PeriodicidadContrato `json:"Periodicidad" validate:"required,oneof=1 3 6 12"`
	Importe      float64                     `json:"Importe" validate:"required,gt=0"`
	Estado       entity.EstadoContrato       `json:"Estado" validate:"required,oneof=1 2 3 4"`
	FormaPago    *string                     `json:"FormaPago" validate:"omitempty,max=100"`
	Notas        *string                     `json:"Notas" validate:"omitempty,max=1000"`
}

type ContratoResponse struct {
	IdContrato        int                         `json:"IdContrato"`
	ClienteId         int                         `json:"ClienteId"`
	ClienteNombre     *string                     `json:"ClienteNombre"`
	Area              entity.AreaMantenimiento    `json:"Area"`
	Descripcion       string                      `json:"Descripcion"`
	FechaInicio       time.Time                   `json:"FechaInicio"`
	FechaFin          time.Time                   `json:"FechaFin"`
	Periodicidad      entity.PeriodicidadContrato `json:"Periodicidad"`
	Importe           float64                     `json:"Importe"`
	Estado            entity.EstadoContrato       `json:"Estado"`
	FormaPago         *string                     `json:"FormaPago"`
	Notas             *string                     `json:"Notas"`
	FechaCreacion     time.Time                   `json:"FechaCreacion"`
	FechaModificacion *time.Time                  `json:"FechaModificacion,omitempty"`
	CreadoPor         *string                     `json:"CreadoPor"`
	TotalLineas       *int                        `json:"TotalLineas,omitempty"`
	ImporteLineas     *float64                    `json:"ImporteLineas,omitempty"`
}

type ConexionContratos struct {
	Message        string    `json:"message"`
	TotalContratos int64     `json:"totalContratos"`
	Timestamp      time.Time `json:"timestamp"`
}

type EstadisticaEstado struct {
	Estado       string  `json:"Estado"`
	Cantidad     int64   `json:"Cantidad"`
	ImporteTotal float64 `json:"ImporteTotal"`
}

type EstadisticasContratos struct {
	TotalContratos        int64               `json:"TotalContratos"`
	ImporteTotal          float64             `json:"ImporteTotal"`
	EstadisticasPorEstado []EstadisticaEstado `json:"EstadisticasPorEstado"`
}
