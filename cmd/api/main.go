package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telecom-metrics-service/internal/config"
	"telecom-metrics-service/internal/logging"
	telecomHttp "telecom-metrics-service/internal/telecom/adapters/http/fiber"
	"telecom-metrics-service/internal/telecom/adapters/sqldb"
	"telecom-metrics-service/internal/telecom/adapters/xlsx"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
	"telecom-metrics-service/internal/telecom/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "telecom-metrics-service/docs"
)

// @title Telecom Metrics API
// @version 1.0
// @description Quarterly Argentine fixed internet indicators per province: national series, rankings, percent change, digital gap, technology mix, correlation and KPIs.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	// Dataset snapshot
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	ds, closeSource, err := loadDataset(loadCtx, cfg, log)
	cancelLoad()
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.DatasetSource).Msg("failed to load dataset")
	}
	closeSource()

	log.Info().
		Str("source", cfg.DatasetSource).
		Str("snapshot_id", ds.SnapshotID().String()).
		Int("tables", len(ds.Families())).
		Msg("dataset loaded")

	// Usecases
	targets := usecase.KPITargets{
		Growth:        cfg.KPI.Growth,
		FiberAdoption: cfg.KPI.FiberAdoption,
		GapReduction:  cfg.KPI.GapReduction,
		DecayRate:     cfg.KPI.DecayRate,
		DecayPeriods:  cfg.KPI.DecayPeriods,
	}

	tableUCs := telecomHttp.TableUseCases{
		List:          usecase.NewListTablesUseCase(ds),
		National:      usecase.NewNationalSeriesUseCase(ds),
		Compare:       usecase.NewCompareProvincesUseCase(ds),
		Top:           usecase.NewTopProvincesUseCase(ds),
		PercentChange: usecase.NewPercentChangeUseCase(ds),
		Gap:           usecase.NewDigitalGapUseCase(ds),
	}
	technologyUC := usecase.NewTechnologyUseCase(ds)
	correlationUC := usecase.NewCorrelationUseCase(ds)
	kpiUC := usecase.NewKPIUseCase(ds, targets)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(telecomHttp.RequestLogger(log))

	telecomHttp.RegisterRoutes(
		app,
		telecomHttp.NewTableHandler(tableUCs),
		telecomHttp.NewTechnologyHandler(technologyUC),
		telecomHttp.NewAnalyticsHandler(correlationUC, kpiUC),
		telecomHttp.NewHealthHandler(ds),
	)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Msgf("server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}

// loadDataset builds the snapshot from the configured source. The returned
// func releases the source; the dataset does not depend on it.
func loadDataset(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*domain.Dataset, func(), error) {
	var source ports.DatasetSource
	closeSource := func() {}

	switch cfg.DatasetSource {
	case config.SourceXLSX:
		source = xlsx.NewLoader(cfg.DatasetPath, log)
	case config.SourcePostgres, config.SourceSQLite:
		driver, dsn := sqldb.DriverPostgres, cfg.PostgresDSN
		if cfg.DatasetSource == config.SourceSQLite {
			driver, dsn = sqldb.DriverSQLite, cfg.SQLitePath
		}
		db, err := sqldb.Open(ctx, driver, dsn)
		if err != nil {
			return nil, closeSource, err
		}
		closeSource = func() { db.Close() }
		source = sqldb.NewDatasetRepository(sqldb.NewSQLDB(db), log)
	default:
		return nil, closeSource, fmt.Errorf("unknown dataset source %q", cfg.DatasetSource)
	}

	ds, err := source.LoadDataset(ctx)
	if err != nil {
		closeSource()
		return nil, func() {}, err
	}
	return ds, closeSource, nil
}
