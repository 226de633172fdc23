package entity

// Localizador is a GPS tracking device record, optionally tied to a client.
// Deleting a Cliente orphans its Localizadores (SET NULL), it never cascades.
// The primary key is assigned manually (max+1).
type Localizador struct {
	ID                  int      `gorm:"column:ID;primaryKey;autoIncrement:false" json:"Id"`
	ClienteID           *int     `gorm:"column:CLIENTE" json:"ClienteId"`
	Comercial           *string  `gorm:"column:COMERCIAL;size:100" json:"Comercial"`
	Modelo              *string  `gorm:"column:MODELO;size:100" json:"Modelo"`
	Gps                 *int     `gorm:"column:GPS" json:"Gps"`
	IbButton            *string  `gorm:"column:IBBUTON" json:"IbButton"`
	Bluetooth           *int     `gorm:"column:BLUETOOTH" json:"Bluetooth"`
	DescuentosAplicados *float64 `gorm:"column:DESCUENTOS_APLICADOS" json:"DescuentosAplicados"`
	CuotaMensualTotal   *float64 `gorm:"column:CUOTA_MENSUAL_TOTAL" json:"CuotaMensualTotal"`
	CuotaAnualTotal     *float64 `gorm:"column:CUOTA_ANUAL_TOTAL" json:"CuotaAnualTotal"`
	AnoVenta            *int     `gorm:"column:ANO_VENTA" json:"AnoVenta"`
	Observaciones       *string  `gorm:"column:OBSERVACIONES" json:"Observaciones"`
	Tipo                *string  `gorm:"column:TIPO;size:100" json:"Tipo"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID;references:ID;constraint:OnDelete:SET NULL" json:"Cliente,omitempty"`
}

func (Localizador) TableName() string { return "LOCALIZADORES" }
