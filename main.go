package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/datacube/topic-search/internal/api"
	"github.com/datacube/topic-search/internal/config"
	"github.com/datacube/topic-search/internal/httpserver"
	"github.com/datacube/topic-search/internal/hub"
	"github.com/datacube/topic-search/internal/logger"
	"github.com/datacube/topic-search/internal/metrics"
	"github.com/datacube/topic-search/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	log.Info("starting topic search service",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
	)

	m := metrics.New(prometheus.DefaultRegisterer)

	clientOpts := []hub.Option{hub.WithErrorRecorder(m)}

	var cache *hub.RedisCache
	if cfg.Cache.Enabled && cfg.Cache.Address != "" {
		cache, err = hub.NewRedisCache(cfg.Cache.Address, cfg.Cache.Password, cfg.Cache.DB, log)
		if err != nil {
			log.Warn("redis unavailable, running without cache", logger.Error(err))
		} else {
			defer cache.Close()
			clientOpts = append(clientOpts, hub.WithCache(cache, cfg.Cache.TTL))
			log.Info("upstream response cache enabled", logger.String("address", cfg.Cache.Address))
		}
	}

	client := hub.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log, clientOpts...)
	catalog := hub.NewCatalog(client, cfg.Upstream.SnapshotPath, log)

	svc := service.NewTopicService(client, catalog, service.Config{
		PageSize:       cfg.Topic.PageSize,
		MaxPeriods:     cfg.Topic.MaxPeriods,
		MaxPeriodChips: cfg.Topic.MaxPeriodChips,
		SiteBaseURL:    cfg.Topic.SiteBaseURL,
	}, log)

	handler := api.NewHandler(svc, cfg.Topic.DefaultLanguage)

	checks := []httpserver.HealthChecker{
		service.NewUpstreamCheck(client, cfg.Upstream.Timeout),
	}
	if cache != nil {
		checks = append(checks, httpserver.HealthCheckFunc{
			CheckName: "redis",
			Fn: func() error {
				return cache.Ping(context.Background())
			},
		})
	}

	serverCfg := &httpserver.Config{
		Port:           cfg.Service.Port,
		Debug:          cfg.Service.Debug,
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		CORS: httpserver.CORSConfig{
			Enabled:          cfg.CORS.Enabled,
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
		},
	}

	server := httpserver.New(serverCfg, log, checks, api.Routes(handler, m))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		log.Error("server error", logger.Error(err))
		return 1
	}
	return 0
}
