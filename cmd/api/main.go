package main

import (
	"context"
	"os"
	"strconv"

	"ngpromant/internal/domain/sqlite"
	"ngpromant/internal/domain/sqlite/repository"
	"ngpromant/internal/http/handler"
	"ngpromant/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/ngpromant/prod/"

func main() {
	validate := validator.New()

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "ngpromant.db"
	}

	// Full-schema context
	db, err := sqlite.Init(dbPath)
	if err != nil {
		panic(err)
	}

	// Narrow context over the same file; the ClientesSimple family runs on
	// this handle exclusively.
	clientesDB, err := sqlite.InitClientes(dbPath)
	if err != nil {
		panic(err)
	}

	// Repos
	clienteRepo := repository.NewClienteRepository(db)
	clienteSimpleRepo := repository.NewClienteSimpleRepository(clientesDB)
	contratoRepo := repository.NewContratoRepository(db)
	renovacionRepo := repository.NewRenovacionRepository(db)
	incidenciaRepo := repository.NewIncidenciaRepository(db)
	acuerdoRepo := repository.NewAcuerdoRepository(db)
	localizadorRepo := repository.NewLocalizadorRepository(db)
	campoRepo := repository.NewCampoRepository(db)

	// Services
	clienteService := service.NewClienteService(clienteRepo, validate)
	clienteSimpleService := service.NewClienteSimpleService(clienteSimpleRepo, validate)
	contratoService := service.NewContratoService(contratoRepo, clienteRepo, validate)
	renovacionService := service.NewRenovacionService(renovacionRepo, contratoRepo)
	incidenciaService := service.NewIncidenciaService(incidenciaRepo, contratoRepo)
	acuerdoService := service.NewAcuerdoService(acuerdoRepo, validate)
	localizadorService := service.NewLocalizadorService(localizadorRepo, validate)
	campoService := service.NewCampoService(campoRepo, validate)
	dashboardService := service.NewDashboardService(contratoRepo, renovacionRepo, incidenciaRepo, clienteRepo)
	authService := service.NewAuthService(validate)

	// Handlers
	clienteRoutes := handler.NewClienteDefault(clienteSimpleService, clienteService)
	contratoRoutes := handler.NewContratoDefault(contratoService)
	renovacionRoutes := handler.NewRenovacionDefault(renovacionService)
	incidenciaRoutes := handler.NewIncidenciaDefault(incidenciaService)
	acuerdoRoutes := handler.NewAcuerdoDefault(acuerdoService)
	localizadorRoutes := handler.NewLocalizadorDefault(localizadorService)
	campoRoutes := handler.NewCampoDefault(campoService)
	dashboardRoutes := handler.NewDashboardDefault(dashboardService)
	authRoutes := handler.NewAuthDefault(authService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("10M"))

	// Acuerdos
	e.GET("/api/Acuerdos/activos", acuerdoRoutes.GetActivos)
	e.GET("/api/Acuerdos/total", acuerdoRoutes.GetTotal)
	e.POST("/api/Acuerdos", acuerdoRoutes.CreateAcuerdo)
	e.PUT("/api/Acuerdos/:id", acuerdoRoutes.UpdateAcuerdo)
	e.DELETE("/api/Acuerdos/:id", acuerdoRoutes.DeleteAcuerdo)

	// ClientesSimple (narrow context)
	e.GET("/api/ClientesSimple", clienteRoutes.GetClientesSimple)
	e.GET("/api/ClientesSimple/test-connection", clienteRoutes.TestConnection)
	e.GET("/api/ClientesSimple/:id", clienteRoutes.GetClienteSimple)
	e.POST("/api/ClientesSimple", clienteRoutes.CreateClienteSimple)
	e.PUT("/api/ClientesSimple/:id", clienteRoutes.UpdateClienteSimple)
	e.DELETE("/api/ClientesSimple/:id", clienteRoutes.DeleteClienteSimple)

	// Clientes (full context)
	e.GET("/api/Clientes", clienteRoutes.GetClientes)
	e.GET("/api/Clientes/:id", clienteRoutes.GetCliente)
	e.POST("/api/Clientes", clienteRoutes.CreateCliente)
	e.PUT("/api/Clientes/:id", clienteRoutes.ReplaceCliente)
	e.DELETE("/api/Clientes/:id", clienteRoutes.DeleteCliente)

	// ContratosReales
	e.GET("/api/ContratosReales", contratoRoutes.GetContratos)
	e.GET("/api/ContratosReales/estadisticas", contratoRoutes.GetEstadisticas)
	e.GET("/api/ContratosReales/por-vencer", contratoRoutes.GetContratosPorVencer)
	e.GET("/api/ContratosReales/test-connection", contratoRoutes.TestConnection)
	e.GET("/api/ContratosReales/:id", contratoRoutes.GetContrato)
	e.POST("/api/ContratosReales", contratoRoutes.CreateContrato)
	e.PUT("/api/ContratosReales/:id", contratoRoutes.UpdateContrato)
	e.PUT("/api/ContratosReales/:id/cancelar", contratoRoutes.CancelContrato)
	e.DELETE("/api/ContratosReales/:id", contratoRoutes.DeleteContrato)

	// Renovaciones
	e.GET("/api/Renovaciones/pendientes", renovacionRoutes.GetPendientes)
	e.GET("/api/Renovaciones/ByContrato/:contratoId", renovacionRoutes.GetByContrato)
	e.GET("/api/Renovaciones/:id", renovacionRoutes.GetRenovacion)
	e.POST("/api/Renovaciones", renovacionRoutes.CreateRenovacion)
	e.PUT("/api/Renovaciones/:id", renovacionRoutes.UpdateRenovacion)
	e.PUT("/api/Renovaciones/:id/cobrar", renovacionRoutes.MarcarCobrada)
	e.DELETE("/api/Renovaciones/:id", renovacionRoutes.DeleteRenovacion)

	// Incidencias
	e.GET("/api/Incidencias", incidenciaRoutes.GetIncidencias)
	e.GET("/api/Incidencias/ByContrato/:contratoId", incidenciaRoutes.GetByContrato)
	e.GET("/api/Incidencias/:id", incidenciaRoutes.GetIncidencia)
	e.POST("/api/Incidencias", incidenciaRoutes.CreateIncidencia)
	e.PUT("/api/Incidencias/:id", incidenciaRoutes.UpdateIncidencia)
	e.DELETE("/api/Incidencias/:id", incidenciaRoutes.DeleteIncidencia)

	// Localizadores
	e.GET("/api/Localizadores", localizadorRoutes.GetLocalizadores)
	e.GET("/api/Localizadores/test-connection", localizadorRoutes.TestConnection)
	e.GET("/api/Localizadores/ByTipo/:tipo", localizadorRoutes.GetLocalizadoresByTipo)
	e.GET("/api/Localizadores/ByCliente/:clienteId", localizadorRoutes.GetLocalizadoresByCliente)
	e.GET("/api/Localizadores/:id", localizadorRoutes.GetLocalizador)
	e.POST("/api/Localizadores", localizadorRoutes.CreateLocalizador)
	e.PUT("/api/Localizadores/:id", localizadorRoutes.UpdateLocalizador)
	e.DELETE("/api/Localizadores/:id", localizadorRoutes.DeleteLocalizador)

	// CamposPersonalizados
	e.GET("/api/CamposPersonalizados", campoRoutes.GetCampos)
	e.POST("/api/CamposPersonalizados", campoRoutes.CreateCampo)
	e.PUT("/api/CamposPersonalizados/:id", campoRoutes.UpdateCampo)
	e.DELETE("/api/CamposPersonalizados/:id", campoRoutes.DeleteCampo)
	e.GET("/api/CamposPersonalizados/valores/:ambito/:objetoId", campoRoutes.GetValores)
	e.POST("/api/CamposPersonalizados/valores", campoRoutes.SetValor)

	// Dashboard
	e.GET("/api/Dashboard/kpis", dashboardRoutes.GetKpis)
	e.GET("/api/Dashboard/charts", dashboardRoutes.GetCharts)
	e.GET("/api/Dashboard/alerts", dashboardRoutes.GetAlerts)
	e.GET("/api/Dashboard/summary", dashboardRoutes.GetSummary)

	// Auth
	e.POST("/api/Auth/login", authRoutes.Login)
	e.POST("/api/Auth/register", authRoutes.Register)
	e.GET("/api/Auth/profile", authRoutes.Profile)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	port := os.Getenv("PORT")
	if _, err := strconv.Atoi(port); err != nil {
		port = "5070"
	}

	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("eu-west-1"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
