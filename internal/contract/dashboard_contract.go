package contract

import "time"

// Kpis is recomputed from the live tables on every call; nothing is cached.
type Kpis struct {
	ContratosActivos     int64   `json:"ContratosActivos"`
	IngresosMensuales    float64 `json:"IngresosMensuales"`
	IncidenciasAbiertas  int64   `json:"IncidenciasAbiertas"`
	ContratosPorVencer30 int64   `json:"ContratosPorVencer30"`
	ClientesActivos      int64   `json:"ClientesActivos"`
	CobrosPendientes     int64   `json:"CobrosPendientes"`
}

type AreaTotal struct {
	Area  string  `json:"Area"`
	Total float64 `json:"Total"`
}

type MesCantidad struct {
	Mes      string `json:"Mes"` // "YYYY-MM"
	Cantidad int64  `json:"Cantidad"`
}

type ChartData struct {
	IngresosPorArea []AreaTotal   `json:"IngresosPorArea"`
	ContratosPorMes []MesCantidad `json:"ContratosPorMes"`
}

type ContratoAlerta struct {
	IdContrato int       `json:"IdContrato"`
	Nombre     *string   `json:"NOMBRE"`
	FechaFin   time.Time `json:"FechaFin"`
	Area       int       `json:"Area"`
}

type CobroAlerta struct {
	IdRenovacion  int       `json:"IdRenovacion"`
	Nombre        *string   `json:"NOMBRE"`
	FechaPrevista time.Time `json:"FechaPrevista"`
	Importe       float64   `json:"Importe"`
}

type Alerts struct {
	ContratosPorVencer []ContratoAlerta `json:"ContratosPorVencer"`
	CobrosPendientes   []CobroAlerta    `json:"CobrosPendientes"`
}

type DashboardSummary struct {
	Kpis      *Kpis      `json:"kpis"`
	Charts    *ChartData `json:"charts"`
	Alerts    *Alerts    `json:"alerts"`
	Timestamp time.Time  `json:"timestamp"`
}
