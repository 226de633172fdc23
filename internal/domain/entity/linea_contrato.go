package entity

import "time"

type LineaContrato struct {
	IdLinea             int     `gorm:"column:IdLinea;primaryKey;autoIncrement" json:"IdLinea"`
	IdContrato          int     `gorm:"column:IdContrato;not null" json:"IdContrato"`
	Concepto            string  `gorm:"column:Concepto;size:500;not null" json:"Concepto"`
	Cantidad            int     `gorm:"column:Cantidad;not null;default:1" json:"Cantidad"`
	PrecioUnitario      float64 `gorm:"column:PrecioUnitario;not null" json:"PrecioUnitario"`
	PorcentajeImpuestos float64 `gorm:"column:PorcentajeImpuestos;default:21" json:"PorcentajeImpuestos"`
	ImporteImpuestos    float64 `gorm:"column:ImporteImpuestos" json:"ImporteImpuestos"`
	Total               float64 `gorm:"column:Total" json:"Total"`
	Descripcion         *string `gorm:"column:Descripcion;size:500" json:"Descripcion"`

	FechaCreacion time.Time `gorm:"column:FechaCreacion;not null" json:"FechaCreacion"`

	Contrato *Contrato `gorm:"foreignKey:IdContrato;references:IdContrato" json:"-"`
}

func (LineaContrato) TableName() string { return "LineasContrato" }

func (l *LineaContrato) Subtotal() float64 {
	return float64(l.Cantidad) * l.PrecioUnitario
}
