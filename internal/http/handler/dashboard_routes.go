package handler

import (
	"net/http"

	"ngpromant/internal/contract"
	"ngpromant/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type DashboardService interface {
	GetKpis() (*contract.Kpis, apierror.ErrorResponse)
	GetChartData() (*contract.ChartData, apierror.ErrorResponse)
	GetAlerts() (*contract.Alerts, apierror.ErrorResponse)
	GetSummary() (*contract.DashboardSummary, apierror.ErrorResponse)
}

type DefaultDashboardRoute struct {
	DashboardService DashboardService
}

func NewDashboardDefault(dashboardService DashboardService) *DefaultDashboardRoute {
	return &DefaultDashboardRoute{DashboardService: dashboardService}
}

func (r *DefaultDashboardRoute) GetKpis(c echo.Context) error {
	kpis, apierr := r.DashboardService.GetKpis()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, kpis)
}

func (r *DefaultDashboardRoute) GetCharts(c echo.Context) error {
	charts, apierr := r.DashboardService.GetChartData()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, charts)
}

func (r *DefaultDashboardRoute) GetAlerts(c echo.Context) error {
	alerts, apierr := r.DashboardService.GetAlerts()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, alerts)
}

func (r *DefaultDashboardRoute) GetSummary(c echo.Context) error {
	summary, apierr := r.DashboardService.GetSummary()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, summary)
}
