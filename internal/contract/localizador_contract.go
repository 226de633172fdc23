package contract

import "time"

type ConexionLocalizadores struct {
	Message            string    `json:"message"`
	TotalLocalizadores int64     `json:"totalLocalizadores"`
	Timestamp          time.Time `json:"timestamp"`
}

// CreateLocalizadorRequest and UpdateLocalizadorRequest carry the same
// field set; updates overwrite every column from the payload, nils included.
type CreateLocalizadorRequest struct {
	ClienteId           *int     `json:"ClienteId"`
	Comercial           *string  `json:"Comercial" validate:"omitempty,max=100"`
	Modelo              *string  `json:"Modelo" validate:"omitempty,max=100"`
	Gps                 *int     `json:"Gps"`
	IbButton            *string  `json:"IbButton"`
	Bluetooth           *int     `json:"Bluetooth"`
	DescuentosAplicados *float64 `json:"DescuentosAplicados"`
	CuotaMensualTotal   *float64 `json:"CuotaMensualTotal"`
	CuotaAnualTotal     *float64 `json:"CuotaAnualTotal"`
	AnoVenta            *int     `json:"AnoVenta"`
	Observaciones       *string  `json:"Observaciones"`
	Tipo                *string  `json:"Tipo" validate:"omitempty,max=100"`
}

type UpdateLocalizadorRequest struct {
	ClienteId           *int     `json:"ClienteId"`
	Comercial           *string  `json:"Comercial" validate:"omitempty,max=100"`
	Modelo              *string  `json:"Modelo" validate:"omitempty,max=100"`
	Gps                 *int     `json:"Gps"`
	IbButton            *string  `json:"IbButton"`
	Bluetooth           *int     `json:"Bluetooth"`
	DescuentosAplicados *float64 `json:"DescuentosAplicados"`
	CuotaMensualTotal   *float64 `json:"CuotaMensualTotal"`
	CuotaAnualTotal     *float64 `json:"CuotaAnualTotal"`
	AnoVenta            *int     `json:"AnoVenta"`
	Observaciones       *string  `json:"Observaciones"`
	Tipo                *string  `json:"Tipo" validate:"omitempty,max=100"`
}
