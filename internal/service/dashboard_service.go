package service

import (
	"time"

	"ngpromant/internal/contract"
	"ngpromant/internal/domain/entity"
	"ngpromant/internal/domain/sqlite/repository"
	"ngpromant/internal/utils"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// Alert windows in days.
const (
	ventanaVencimiento = 30
	ventanaCobros      = 15
)

// The dashboard reads across four tables; it only needs these slices of
// the respective repositories.
type ContratoStats interface {
	CountByEstado(estado entity.EstadoContrato) (int64, error)
	FindPorVencer(dias int) ([]*entity.Contrato, error)
	SumImporteByArea() ([]*repository.AreaAgregada, error)
	CountPorMesDesde(desde time.Time) ([]*repository.MesAgregado, error)
}

type RenovacionStats interface {
	CountPendientes() (int64, error)
	SumCobradasEntre(desde, hasta time.Time) (float64, error)
	FindPendientesHasta(limite time.Time) ([]*entity.Renovacion, error)
}

type IncidenciaStats interface {
	CountAbiertas() (int64, error)
}

type ClienteStats interface {
	CountActive() (int64, error)
}

// DefaultDashboardService computes every figure from the live tables on
// each call; nothing is cached or precomputed.
type DefaultDashboardService struct {
	Contratos    ContratoStats
	Renovaciones RenovacionStats
	Incidencias  IncidenciaStats
	Clientes     ClienteStats
}

func NewDashboardService(
	contratos ContratoStats,
	renovaciones RenovacionStats,
	incidencias IncidenciaStats,
	clientes ClienteStats,
) *DefaultDashboardService {
	return &DefaultDashboardService{
		Contratos:    contratos,
		Renovaciones: renovaciones,
		Incidencias:  incidencias,
		Clientes:     clientes,
	}
}

func (s *DefaultDashboardService) GetKpis() (*contract.Kpis, apierror.ErrorResponse) {
	activos, err := s.Contratos.CountByEstado(entity.EstadoActivo)
	if err != nil {
		log.Errorf("failed to count active contratos: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los KPIs", err)
	}

	// Income of the current calendar month: renewals collected between the
	// first of the month and now.
	now := utils.NowUTC()
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	ingresos, err := s.Renovaciones.SumCobradasEntre(inicioMes, now)
	if err != nil {
		log.Errorf("failed to sum monthly income: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los KPIs", err)
	}

	abiertas, err := s.Incidencias.CountAbiertas()
	if err != nil {
		log.Errorf("failed to count open incidencias: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los KPIs", err)
	}

	porVencer, err := s.Contratos.FindPorVencer(ventanaVencimiento)
	if err != nil {
		log.Errorf("failed to fetch expiring contratos: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los KPIs", err)
	}

	clientes, err := s.Clientes.CountActive()
	if err != nil {
		log.Errorf("failed to count active clientes: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los KPIs", err)
	}

	pendientes, err := s.Renovaciones.CountPendientes()
	if err != nil {
		log.Errorf("failed to count pending renovaciones: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los KPIs", err)
	}

	return &contract.Kpis{
		ContratosActivos:     activos,
		IngresosMensuales:    ingresos,
		IncidenciasAbiertas:  abiertas,
		ContratosPorVencer30: int64(len(porVencer)),
		ClientesActivos:      clientes,
		CobrosPendientes:     pendientes,
	}, nil
}

// GetChartData returns income grouped by maintenance area and contract
// counts for the last twelve calendar months, oldest first. Empty months
// are present with a zero count.
func (s *DefaultDashboardService) GetChartData() (*contract.ChartData, apierror.ErrorResponse) {
	porArea, err := s.Contratos.SumImporteByArea()
	if err != nil {
		log.Errorf("failed to sum income per area: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los gráficos", err)
	}

	areas := make([]contract.AreaTotal, len(porArea))
	for i, g := range porArea {
		areas[i] = contract.AreaTotal{
			Area:  g.Area.String(),
			Total: g.Total,
		}
	}

	now := utils.NowUTC()
	inicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)
	porMes, err := s.Contratos.CountPorMesDesde(inicio)
	if err != nil {
		log.Errorf("failed to count contratos per month: %v", err)
		return nil, apierror.NewStoreError("Error al obtener los gráficos", err)
	}

	cantidades := make(map[string]int64, len(porMes))
	for _, g := range porMes {
		cantidades[g.Mes] = g.Cantidad
	}

	meses := make([]contract.MesCantidad, 12)
	for i := range meses {
		mes := inicio.AddDate(0, i, 0).Format("2006-01")
		meses[i] = contract.MesCantidad{
			Mes:      mes,
			Cantidad: cantidades[mes],
		}
	}

	return &contract.ChartData{
		IngresosPorArea: areas,
		ContratosPorMes: meses,
	}, nil
}

func (s *DefaultDashboardService) GetAlerts() (*contract.Alerts, apierror.ErrorResponse) {
	porVencer, err := s.Contratos.FindPorVencer(ventanaVencimiento)
	if err != nil {
		log.Errorf("failed to fetch expiring contratos: %v", err)
		return nil, apierror.NewStoreError("Error al obtener las alertas", err)
	}

	contratoAlertas := make([]contract.ContratoAlerta, len(porVencer))
	for i, c := range porVencer {
		alerta := contract.ContratoAlerta{
			IdContrato: c.IdContrato,
			FechaFin:   c.FechaFin,
			Area:       int(c.Area),
		}
		if c.Cliente != nil {
			alerta.Nombre = c.Cliente.Nombre
		}
		contratoAlertas[i] = alerta
	}

	limite := utils.NowUTC().AddDate(0, 0, ventanaCobros)
	pendientes, err := s.Renovaciones.FindPendientesHasta(limite)
	if err != nil {
		log.Errorf("failed to fetch pending renovaciones: %v", err)
		return nil, apierror.NewStoreError("Error al obtener las alertas", err)
	}

	cobroAlertas := make([]contract.CobroAlerta, len(pendientes))
	for i, r := range pendientes {
		alerta := contract.CobroAlerta{
			IdRenovacion:  r.IdRenovacion,
			FechaPrevista: r.FechaPrevista,
			Importe:       r.Importe,
		}
		if r.Contrato != nil && r.Contrato.Cliente != nil {
			alerta.Nombre = r.Contrato.Cliente.Nombre
		}
		cobroAlertas[i] = alerta
	}

	return &contract.Alerts{
		ContratosPorVencer: contratoAlertas,
		CobrosPendientes:   cobroAlertas,
	}, nil
}

func (s *DefaultDashboardService) GetSummary() (*contract.DashboardSummary, apierror.ErrorResponse) {
	kpis, apierr := s.GetKpis()
	if apierr != nil {
		return nil, apierr
	}

	charts, apierr := s.GetChartData()
	if apierr != nil {
		return nil, apierr
	}

	alerts, apierr := s.GetAlerts()
	if apierr != nil {
		return nil, apierr
	}

	return &contract.DashboardSummary{
		Kpis:      kpis,
		Charts:    charts,
		Alerts:    alerts,
		Timestamp: utils.NowUTC(),
	}, nil
}
