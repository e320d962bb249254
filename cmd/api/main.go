package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/salescampus/salescampus-backend/api/controllers"
	"github.com/salescampus/salescampus-backend/api/routes"
	"github.com/salescampus/salescampus-backend/internal/auth"
	"github.com/salescampus/salescampus-backend/internal/chat"
	"github.com/salescampus/salescampus-backend/internal/records"
	"github.com/salescampus/salescampus-backend/pkg/auth/session"
	"github.com/salescampus/salescampus-backend/pkg/config"
	"github.com/salescampus/salescampus-backend/pkg/db"
	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/metrics"
	"github.com/salescampus/salescampus-backend/pkg/migrate"
	"github.com/salescampus/salescampus-backend/pkg/redis"
	"github.com/salescampus/salescampus-backend/pkg/storage"
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

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	readiness := []controllers.Pinger{redisClient}

	var device storage.Device
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		device = storage.NewMemory()
	case config.StorageDriverRedis:
		device = storage.NewRedis(redisClient)
	default:
		dbClient, err := db.New(context.Background(), cfg.Storage, logg)
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

		device = storage.NewGorm(dbClient.DB())
		readiness = append(readiness, dbClient)
	}

	deviceMetrics := metrics.NewDeviceMetrics(prometheus.DefaultRegisterer)
	device = storage.NewInstrumented(device, deviceMetrics)

	store, err := records.NewStore(records.StoreParams{
		Device: device,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create record store", err)
		os.Exit(1)
	}
	if cfg.FeatureFlags.SeedOnBoot {
		store.Initialize(context.Background())
	}

	chatLog, err := chat.NewLog(chat.LogParams{
		Device: device,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create chat log", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Store:          store,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":            cfg.App.Env,
		"addr":           addr,
		"storage_driver": cfg.Storage.Driver,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, store, chatLog, authService, sessionManager, redisClient, readiness...),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
