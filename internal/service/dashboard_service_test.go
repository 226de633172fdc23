package service

import (
	"testing"
	"time"

	"ngpromant/internal/domain/entity"
	"ngpromant/internal/domain/sqlite/repository"
)

func newDashboardService(t *testing.T) (*DefaultDashboardService, *seededRepos) {
	t.Helper()
	db := setupDB(t)
	repos := &seededRepos{
		Clientes:     repository.NewClienteRepository(db),
		Contratos:    repository.NewContratoRepository(db),
		Renovaciones: repository.NewRenovacionRepository(db),
		Incidencias:  repository.NewIncidenciaRepository(db),
	}
	svc := NewDashboardService(repos.Contratos, repos.Renovaciones, repos.Incidencias, repos.Clientes)
	return svc, repos
}

type seededRepos struct {
	Clientes     *repository.DefaultClienteRepository
	Contratos    *repository.DefaultContratoRepository
	Renovaciones *repository.DefaultRenovacionRepository
	Incidencias  *repository.DefaultIncidenciaRepository
}

func (r *seededRepos) seedContrato(t *testing.T, estado entity.EstadoContrato, fin time.Time) *entity.Contrato {
	t.Helper()
	contrato := &entity.Contrato{
		ClienteID:     1,
		Area:          entity.AreaSoftware,
		Descripcion:   "Mantenimiento",
		FechaInicio:   fin.AddDate(-1, 0, 0),
		FechaFin:      fin,
		Periodicidad:  entity.PeriodicidadAnual,
		Importe:       100,
		Estado:        estado,
		FechaCreacion: time.Now().UTC(),
	}
	if err := r.Contratos.Save(contrato); err != nil {
		t.Fatalf("seed contrato: %v", err)
	}
	return contrato
}

func TestKpisCountActiveContratosOnly(t *testing.T) {
	svc, repos := newDashboardService(t)

	if err := repos.Clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("seed cliente: %v", err)
	}

	lejos := time.Now().UTC().AddDate(1, 0, 0)
	for i := 0; i < 3; i++ {
		repos.seedContrato(t, entity.EstadoActivo, lejos)
	}
	for i := 0; i < 2; i++ {
		repos.seedContrato(t, entity.EstadoCancelado, lejos)
	}

	kpis, apierr := svc.GetKpis()
	if apierr != nil {
		t.Fatalf("kpis: %v", apierr)
	}

	if kpis.ContratosActivos != 3 {
		t.Fatalf("expected 3 active contratos, got %d", kpis.ContratosActivos)
	}
	if kpis.ContratosPorVencer30 != 0 {
		t.Fatalf("expected nothing due within 30 days, got %d", kpis.ContratosPorVencer30)
	}
	if kpis.ClientesActivos != 1 {
		t.Fatalf("expected 1 active cliente, got %d", kpis.ClientesActivos)
	}
}

func TestKpisMonthlyIncomeWindow(t *testing.T) {
	svc, repos := newDashboardService(t)

	if err := repos.Clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("seed cliente: %v", err)
	}
	contrato := repos.seedContrato(t, entity.EstadoActivo, time.Now().UTC().AddDate(1, 0, 0))

	now := time.Now().UTC()
	dentro := now.Add(-time.Minute)
	fuera := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Add(-time.Hour)

	seed := func(cobro time.Time, estado entity.EstadoCobro, importe float64) {
		renovacion := &entity.Renovacion{
			IdContrato:    contrato.IdContrato,
			FechaPrevista: cobro,
			FechaCobro:    &cobro,
			Importe:       importe,
			EstadoCobro:   estado,
			FechaCreacion: now,
		}
		if err := repos.Renovaciones.Save(renovacion); err != nil {
			t.Fatalf("seed renovacion: %v", err)
		}
	}

	seed(dentro, entity.CobroCobrado, 150)  // counts
	seed(fuera, entity.CobroCobrado, 999)   // previous month
	seed(dentro, entity.CobroPendiente, 75) // not collected

	kpis, apierr := svc.GetKpis()
	if apierr != nil {
		t.Fatalf("kpis: %v", apierr)
	}

	if kpis.IngresosMensuales != 150 {
		t.Fatalf("expected 150 of monthly income, got %f", kpis.IngresosMensuales)
	}
	if kpis.CobrosPendientes != 1 {
		t.Fatalf("expected 1 pending cobro, got %d", kpis.CobrosPendientes)
	}
}

func TestChartDataFillsEmptyMonths(t *testing.T) {
	svc, repos := newDashboardService(t)

	if err := repos.Clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("seed cliente: %v", err)
	}
	repos.seedContrato(t, entity.EstadoActivo, time.Now().UTC().AddDate(1, 0, 0))
	repos.seedContrato(t, entity.EstadoActivo, time.Now().UTC().AddDate(1, 0, 0))

	charts, apierr := svc.GetChartData()
	if apierr != nil {
		t.Fatalf("charts: %v", apierr)
	}

	if len(charts.ContratosPorMes) != 12 {
		t.Fatalf("expected 12 months, got %d", len(charts.ContratosPorMes))
	}
	for i := 1; i < 12; i++ {
		if charts.ContratosPorMes[i-1].Mes >= charts.ContratosPorMes[i].Mes {
			t.Fatalf("months out of order: %s before %s", charts.ContratosPorMes[i-1].Mes, charts.ContratosPorMes[i].Mes)
		}
	}

	var total int64
	for _, m := range charts.ContratosPorMes {
		total += m.Cantidad
	}
	if total != 2 {
		t.Fatalf("expected 2 contratos across the window, got %d", total)
	}

	ultimo := charts.ContratosPorMes[11]
	if ultimo.Mes != time.Now().UTC().Format("2006-01") {
		t.Fatalf("expected current month last, got %s", ultimo.Mes)
	}
	if ultimo.Cantidad != 2 {
		t.Fatalf("expected both contratos in the current month, got %d", ultimo.Cantidad)
	}

	if len(charts.IngresosPorArea) != 1 {
		t.Fatalf("expected one area group, got %d", len(charts.IngresosPorArea))
	}
	if charts.IngresosPorArea[0].Area != "Software" || charts.IngresosPorArea[0].Total != 200 {
		t.Fatalf("unexpected area group: %+v", charts.IngresosPorArea[0])
	}
}

func TestChartDataAreaTotalsSpanAllEstados(t *testing.T) {
	svc, repos := newDashboardService(t)

	if err := repos.Clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Acme")}); err != nil {
		t.Fatalf("seed cliente: %v", err)
	}

	lejos := time.Now().UTC().AddDate(1, 0, 0)
	repos.seedContrato(t, entity.EstadoActivo, lejos)
	cancelado := &entity.Contrato{
		ClienteID:     1,
		Area:          entity.AreaSoftware,
		Descripcion:   "Mantenimiento cancelado",
		FechaInicio:   lejos.AddDate(-1, 0, 0),
		FechaFin:      lejos,
		Periodicidad:  entity.PeriodicidadAnual,
		Importe:       50,
		Estado:        entity.EstadoCancelado,
		FechaCreacion: time.Now().UTC(),
	}
	if err := repos.Contratos.Save(cancelado); err != nil {
		t.Fatalf("seed contrato: %v", err)
	}

	charts, apierr := svc.GetChartData()
	if apierr != nil {
		t.Fatalf("charts: %v", apierr)
	}

	// Cancelled contracts still add up; the grouping ignores Estado.
	if len(charts.IngresosPorArea) != 1 {
		t.Fatalf("expected one area group, got %d", len(charts.IngresosPorArea))
	}
	if charts.IngresosPorArea[0].Total != 150 {
		t.Fatalf("expected 150 across states, got %f", charts.IngresosPorArea[0].Total)
	}
}

func TestAlertsResolveClienteNombre(t *testing.T) {
	svc, repos := newDashboardService(t)

	if err := repos.Clientes.Save(&entity.Cliente{ID: 1, Nombre: strPtr("Flota SA")}); err != nil {
		t.Fatalf("seed cliente: %v", err)
	}

	// Expires in a week, so it has to show up in the 30-day window.
	contrato := repos.seedContrato(t, entity.EstadoActivo, time.Now().UTC().AddDate(0, 0, 7))

	prevista := time.Now().UTC().AddDate(0, 0, 3)
	renovacion := &entity.Renovacion{
		IdContrato:    contrato.IdContrato,
		FechaPrevista: prevista,
		Importe:       300,
		EstadoCobro:   entity.CobroPendiente,
		FechaCreacion: time.Now().UTC(),
	}
	if err := repos.Renovaciones.Save(renovacion); err != nil {
		t.Fatalf("seed renovacion: %v", err)
	}

	alerts, apierr := svc.GetAlerts()
	if apierr != nil {
		t.Fatalf("alerts: %v", apierr)
	}

	if len(alerts.ContratosPorVencer) != 1 {
		t.Fatalf("expected 1 expiring contrato, got %d", len(alerts.ContratosPorVencer))
	}
	if alerts.ContratosPorVencer[0].Nombre == nil || *alerts.ContratosPorVencer[0].Nombre != "Flota SA" {
		t.Fatal("expected client name on the contrato alert")
	}

	if len(alerts.CobrosPendientes) != 1 {
		t.Fatalf("expected 1 pending cobro, got %d", len(alerts.CobrosPendientes))
	}
	if alerts.CobrosPendientes[0].Nombre == nil || *alerts.CobrosPendientes[0].Nombre != "Flota SA" {
		t.Fatal("expected client name on the cobro alert")
	}
}
