package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"escrowship/cmd"
	_ "escrowship/docs"
	httpin "escrowship/internal/adapters/in/http"
	"escrowship/internal/adapters/out/postgres"
	"escrowship/internal/adapters/out/postgres/shipmentrepo"
	"escrowship/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	err := postgres.EnsureDatabase(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	if err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	dsn := postgres.DSN(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	spec, err := httpin.LoadOpenAPISpec(context.Background())
	if err != nil {
		log.Fatalf("Invalid OpenAPI contract: %v", err)
	}
	httpin.RegisterOpenAPIRoute(e, spec)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateAddShippingInfoCommandHandler(),
		app.CreateUpdateTrackingStatusCommandHandler(),
		app.CreateConfirmReceiptCommandHandler(),
		app.CreateReportIssueCommandHandler(),
		app.CreateCancelShipmentCommandHandler(),
		app.CreateAddProofDocumentCommandHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetShipmentByEscrowQueryHandler(),
		app.CreateGetTimelineQueryHandler(),
		app.CreateGetEscrowReleaseQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
