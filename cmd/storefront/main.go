package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Soloken19/shapewear-dev/api/routes"
	"github.com/Soloken19/shapewear-dev/internal/catalog"
	"github.com/Soloken19/shapewear-dev/internal/checkout"
	"github.com/Soloken19/shapewear-dev/internal/session"
	"github.com/Soloken19/shapewear-dev/pkg/config"
	"github.com/Soloken19/shapewear-dev/pkg/db"
	"github.com/Soloken19/shapewear-dev/pkg/kv"
	"github.com/Soloken19/shapewear-dev/pkg/logger"
	"github.com/Soloken19/shapewear-dev/pkg/metrics"
	"github.com/Soloken19/shapewear-dev/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, cleanup, err := newCartStore(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap cart store", err)
		os.Exit(1)
	}
	defer cleanup()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	stats := metrics.NewStorefrontMetrics(registry)

	catalogClient, err := catalog.NewClient(cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog client", err)
		os.Exit(1)
	}
	listings := catalog.NewCache(catalogClient, cfg.Catalog.CacheTTL, logg)

	orderClient, err := checkout.NewClient(cfg.OrderService)
	if err != nil {
		logg.Error(context.Background(), "failed to build order service client", err)
		os.Exit(1)
	}

	sessions := session.NewManager(store, orderClient, cfg.Store.KeyPrefix, logg, stats)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":   cfg.App.Env,
		"addr":  addr,
		"store": cfg.Store.NormalizedDriver(),
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, store, listings, catalogClient, sessions, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// newCartStore selects the persistence driver for cart state. The
// cleanup func closes whatever the driver opened.
func newCartStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (kv.Store, func(), error) {
	switch cfg.Store.NormalizedDriver() {
	case config.StoreDriverRedis:
		store, err := kv.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return store, closeQuietly(ctx, logg, "redis", store), nil

	case config.StoreDriverSQL:
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate.MaybeRunDev(ctx, cfg, logg, client); err != nil {
			client.Close()
			return nil, nil, err
		}
		store, err := kv.NewSQL(client)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		return store, closeQuietly(ctx, logg, "database", store), nil

	default:
		return kv.NewMemory(), func() {}, nil
	}
}

func closeQuietly(ctx context.Context, logg *logger.Logger, name string, store kv.Store) func() {
	return func() {
		if err := store.Close(); err != nil {
			logg.Error(ctx, "error closing "+name, err)
		}
	}
}
