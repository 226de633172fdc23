package entity

import "time"

// Acuerdo maps the CRM_ACUERDOS table: grant/subsidy agreements tracked
// independently of the contract lifecycle. The primary key is assigned
// manually (max+1).
type Acuerdo struct {
	ID                   int        `gorm:"column:ID;primaryKey;autoIncrement:false" json:"ID"`
	Nombre               *string    `gorm:"column:NOMBRE;size:150" json:"NOMBRE"`
	Segmento             *string    `gorm:"column:SEGMENTO;size:150" json:"SEGMENTO"`
	Comercial            *string    `gorm:"column:COMERCIAL;size:150" json:"COMERCIAL"`
	CifNif               *string    `gorm:"column:CIF_NIF;size:150" json:"CIF_NIF"`
	Importe              *string    `gorm:"column:IMPORTE;size:150" json:"IMPORTE"`
	NBono                *string    `gorm:"column:NBONO;size:150" json:"NBONO"`
	Observaciones        *string    `gorm:"column:OBSERVACIONES;size:150" json:"OBSERVACIONES"`
	Cobrado              *bool      `gorm:"column:COBRADO" json:"COBRADO"`
	FechaEnviado         *time.Time `gorm:"column:FECHA_ENVIADO" json:"FECHA_ENVIADO"`
	FechaCobrado         *time.Time `gorm:"column:FECHA_COBRADO" json:"FECHA_COBRADO"`
	Baja                 *bool      `gorm:"column:BAJA" json:"BAJA"`
	Validados            *time.Time `gorm:"column:VALIDADOS" json:"VALIDADOS"`
	Lanzados             *time.Time `gorm:"column:LANZADOS" json:"LANZADOS"`
	IvaPagado            *time.Time `gorm:"column:IVAPAGADO" json:"IVAPAGADO"`
	PrimerJustPresentado *time.Time `gorm:"column:PRIMER_JUST_PRESENTADO" json:"PRIMER_JUST_PRESENTADO"`
	SegundJustPresentado *time.Time `gorm:"column:SEGUND_JUST_PRESENTADO" json:"SEGUND_JUST_PRESENTADO"`
	FechaFactura         *time.Time `gorm:"column:FECHAFACTURA" json:"FECHAFACTURA"`
	Presentados          *time.Time `gorm:"column:PRESENTADOS" json:"PRESENTADOS"`
	Enviado              *bool      `gorm:"column:ENVIADO" json:"ENVIADO"`

	// ClienteID *int `gorm:"column:ID_CLIENTE"` // futuro campo
}

func (Acuerdo) TableName() string { return "CRM_ACUERDOS" }

// EsActivo encodes the business rule for an active agreement: the second
// justification has been submitted, or the segment is "NO KIT", and the
// agreement has not been withdrawn.
func (a *Acuerdo) EsActivo() bool {
	noKit := a.Segmento != nil && *a.Segmento == "NO KIT"
	baja := a.Baja != nil && *a.Baja
	return (a.SegundJustPresentado != nil || noKit) && !baja
}
