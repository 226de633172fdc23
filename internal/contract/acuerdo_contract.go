package contract

import "time"

// AcuerdoRequest is both the creation and full-overwrite update payload for
// agreements. JSON names mirror the CRM_ACUERDOS columns verbatim.
type AcuerdoRequest struct {
	Nombre               *string    `json:"NOMBRE" validate:"omitempty,max=150"`
	Segmento             *string    `json:"SEGMENTO" validate:"omitempty,max=150"`
	Comercial            *string    `json:"COMERCIAL" validate:"omitempty,max=150"`
	CifNif               *string    `json:"CIF_NIF" validate:"omitempty,max=150"`
	Importe              *string    `json:"IMPORTE" validate:"omitempty,max=150"`
	NBono                *string    `json:"NBONO" validate:"omitempty,max=150"`
	Observaciones        *string    `json:"OBSERVACIONES" validate:"omitempty,max=150"`
	Cobrado              *bool      `json:"COBRADO"`
	FechaEnviado         *time.Time `json:"FECHA_ENVIADO"`
	FechaCobrado         *time.Time `json:"FECHA_COBRADO"`
	Baja                 *bool      `json:"BAJA"`
	Validados            *time.Time `json:"VALIDADOS"`
	Lanzados             *time.Time `json:"LANZADOS"`
	IvaPagado            *time.Time `json:"IVAPAGADO"`
	PrimerJustPresentado *time.Time `json:"PRIMER_JUST_PRESENTADO"`
	SegundJustPresentado *time.Time `json:"SEGUND_JUST_PRESENTADO"`
	FechaFactura         *time.Time `json:"FECHAFACTURA"`
	Presentados          *time.Time `json:"PRESENTADOS"`
	Enviado              *bool      `json:"ENVIADO"`
}
