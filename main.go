package main

import (
	"context"
	"log"
	"os"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
	"golang.org/x/sync/errgroup"

	"staysearch/fixtures"
	"staysearch/metrics"
	"staysearch/models"
	"staysearch/sessions"
	"staysearch/web"
)

func main() {
	cfg, err := models.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	if err = cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	logger.SetLogLevel(cfg.LogLevel)

	ctx := context.Background()

	provider, closeProvider, err := openListings(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open listing source: ", err)
	}
	defer closeProvider()

	store, closeStore, err := openSessions(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open session store: ", err)
	}
	defer closeStore()

	reg := metrics.InitRegistry()
	app := web.NewApp(*cfg, provider, store)
	srv := web.NewServer(rweb.ServerOptions{Address: cfg.Address, Verbose: cfg.LogLevel == "debug"}, app)

	// A failing web server also stops the metrics listener
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return web.Run(srv, cfg.Address)
	})
	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return metrics.Serve(gctx, cfg.MetricsAddr, reg)
		})
	}

	if err = g.Wait(); err != nil {
		logger.LogErr(err, "server stopped")
		os.Exit(1)
	}
}

// openListings builds the configured listing source, seeded with the sample listings
func openListings(ctx context.Context, cfg *models.Config) (models.ListingProvider, func(), error) {
	if cfg.ListingSource != models.ListingSourceDuckDB {
		logger.Info("Serving static listings")
		return models.NewStaticProvider(fixtures.ExtendedListings()), func() {}, nil
	}

	duck, err := models.OpenDuckStore()
	if err != nil {
		return nil, nil, err
	}
	if err = duck.Seed(ctx, fixtures.ExtendedListings()); err != nil {
		_ = duck.Close()
		return nil, nil, serr.Wrap(err, "failed to seed listings")
	}
	logger.Info("Serving listings from DuckDB")
	return duck, func() {
		if err := duck.Close(); err != nil {
			logger.LogErr(err, "failed to close listing database")
		}
	}, nil
}

// openSessions returns the Redis store when an address is configured, else the in-memory one
func openSessions(ctx context.Context, cfg *models.Config) (sessions.Store, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("Keeping sessions in memory")
		return sessions.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}

	rs := sessions.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
	if err := rs.Ping(ctx); err != nil {
		_ = rs.Close()
		return nil, nil, err
	}
	logger.Info("Keeping sessions in Redis", "addr", cfg.RedisAddr)
	return rs, func() {
		if err := rs.Close(); err != nil {
			logger.LogErr(err, "failed to close redis client")
		}
	}, nil
}
