package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/bokpharm/bokpharm-backend/api/routes"
	"github.com/bokpharm/bokpharm-backend/internal/catalog"
	"github.com/bokpharm/bokpharm-backend/internal/inventory"
	"github.com/bokpharm/bokpharm-backend/internal/onboarding"
	"github.com/bokpharm/bokpharm-backend/internal/pharmacies"
	"github.com/bokpharm/bokpharm-backend/internal/seed"
	"github.com/bokpharm/bokpharm-backend/internal/users"
	"github.com/bokpharm/bokpharm-backend/pkg/config"
	"github.com/bokpharm/bokpharm-backend/pkg/db"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
	"github.com/bokpharm/bokpharm-backend/pkg/metrics"
	"github.com/bokpharm/bokpharm-backend/pkg/migrate"
	"github.com/bokpharm/bokpharm-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	if cfg.FeatureFlags.SeedOnBoot {
		if err := seed.Run(context.Background(), dbClient.DB(), logg); err != nil {
			logg.Error(context.Background(), "failed to seed demo data", err)
			os.Exit(1)
		}
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	usersRepo := users.NewRepository(dbClient.DB())
	pharmaciesRepo := pharmacies.NewRepository(dbClient.DB())
	catalogRepo := catalog.NewRepository(dbClient.DB())
	inventoryRepo := inventory.NewRepository(dbClient.DB())

	usersService, err := users.NewService(usersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}
	pharmaciesService, err := pharmacies.NewService(pharmaciesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create pharmacies service", err)
		os.Exit(1)
	}
	catalogService, err := catalog.NewService(catalogRepo, redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	inventoryService, err := inventory.NewService(inventoryRepo, catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}
	onboardingService, err := onboarding.NewService(usersRepo, pharmaciesService)
	if err != nil {
		logg.Error(context.Background(), "failed to create onboarding service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			Redis:       redisClient,
			Registry:    registry,
			HTTPMetrics: metrics.NewHTTPMetrics(registry),
			Users:       usersService,
			Onboarding:  onboardingService,
			Pharmacies:  pharmaciesService,
			Catalog:     catalogService,
			Inventory:   inventoryService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
