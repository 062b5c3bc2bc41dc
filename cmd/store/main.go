package main

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"CornerStore/internal/api"
	"CornerStore/internal/config"
	"CornerStore/internal/seed"
	"CornerStore/internal/store"
	"CornerStore/pkg/kit"
)

const seedTimeout = 30 * time.Second

func main() {
	service := "store"

	envErr := godotenv.Load()
	cfg := config.Load()

	log := kit.NewLogger(service, cfg.Logger.Level, cfg.Logger.Encoding)
	defer func() { _ = log.Sync() }()

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn("read .env failed", zap.Error(envErr))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	st := store.New(store.Options{
		Log:     log,
		Metrics: store.NewMetrics(reg),
	})

	s := &api.Server{Store: st, Log: log}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	src, closeSrc, err := openSeed(ctx, cfg.Seed, log)
	if err != nil {
		cancel()
		log.Fatal("open seed source failed", zap.Error(err))
	}
	defer closeSrc()

	if _, err := seed.Apply(ctx, src, st, log); err != nil {
		cancel()
		log.Fatal("seed failed", zap.Error(err))
	}
	cancel()

	if pg, ok := src.(*seed.PostgresSource); ok {
		s.Ready = pg.Ping
	}

	h := api.NewHandler(s, api.HTTPDeps{
		Log:              log,
		Service:          service,
		Registry:         reg,
		MetricsEnabled:   cfg.MetricsEnabled,
		MetricsToken:     cfg.MetricsToken,
		WriteLimitPerMin: cfg.WriteLimitPerMin,
	})

	if err := kit.RunHTTPServer(":"+cfg.Server.Port, h, log, cfg.Server.ShutdownTimeout); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func openSeed(ctx context.Context, cfg config.SeedConfig, log *zap.Logger) (seed.Source, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Info("seeding from files",
			zap.String("products", cfg.ProductsFile),
			zap.String("customers", cfg.CustomersFile),
		)
		return seed.FileSource{ProductsPath: cfg.ProductsFile, CustomersPath: cfg.CustomersFile}, func() {}, nil
	}

	pg, err := seed.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("seeding from postgres")
	return pg, func() { _ = pg.Close() }, nil
}
