package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mobilitystack/mobility-engine/internal/api"
	"github.com/mobilitystack/mobility-engine/internal/cache"
	"github.com/mobilitystack/mobility-engine/internal/compose"
	"github.com/mobilitystack/mobility-engine/internal/config"
	"github.com/mobilitystack/mobility-engine/internal/dataset"
	"github.com/mobilitystack/mobility-engine/internal/engine"
	"github.com/mobilitystack/mobility-engine/internal/metrics"
	"github.com/mobilitystack/mobility-engine/internal/resolver"
	"github.com/mobilitystack/mobility-engine/internal/scope"
	"github.com/mobilitystack/mobility-engine/internal/services"
	"github.com/mobilitystack/mobility-engine/internal/summarize"
	"github.com/mobilitystack/mobility-engine/internal/utils"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", configPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	logger.Info("starting mobility-engine", slog.String("address", cfg.Server.Address))

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Error("failed to register metrics", slog.Any("error", err))
		os.Exit(1)
	}

	snapshot, err := dataset.Load(cfg.Data.Dir, logger)
	if err != nil {
		logger.Error("failed to load dataset snapshot", slog.String("dir", cfg.Data.Dir), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("dataset snapshot loaded",
		slog.Int("collisions", len(snapshot.Collisions)),
		slog.Int("service_requests", len(snapshot.Requests)),
		slog.Int("transit_stops", len(snapshot.Stops)),
		slog.Int("weather_days", len(snapshot.Weather)))

	corpus, err := resolver.LoadCorpus(cfg.Vocabulary.Path)
	if err != nil {
		logger.Error("failed to load vocabulary pack", slog.String("path", cfg.Vocabulary.Path), slog.Any("error", err))
		os.Exit(1)
	}

	var answerCache cache.Provider = cache.NoopProvider{}
	if cfg.Cache.Address != "" {
		provider, err := cache.NewValkeyProvider(cache.ValkeyConfig{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
			TLS:      cfg.Cache.TLS,
		})
		if err != nil {
			logger.Warn("answer cache unavailable", slog.Any("error", err))
		} else {
			answerCache = provider
			defer provider.Close()
		}
	}

	summarizer := summarize.New(cfg.Summarizer, logger)
	if summarizer != nil {
		logger.Info("reformulation layer enabled", slog.String("backend", summarizer.Name()))
	}

	executor := engine.NewExecutor(snapshot, cfg.Analysis, logger)
	cascade := engine.NewCascade(executor, cfg.Analysis, logger)
	composer := compose.NewComposer(summarizer, cfg.Summarizer.Timeout, logger)
	pipeline := engine.NewPipeline(
		scope.NewClassifier(),
		resolver.NewResolver(corpus, logger),
		executor,
		cascade,
		composer,
		logger,
	)

	engineService := services.NewEngineService(logger, pipeline, snapshot, answerCache, cfg.Cache.TTL)

	server, err := api.NewServer(cfg.Server, engineService)
	if err != nil {
		logger.Error("failed to create gRPC server", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.Server.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:         cfg.Server.MetricsAddress,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		go func() {
			logger.Info("metrics server listening", slog.String("address", cfg.Server.MetricsAddress))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server exited", slog.Any("error", err))
				stop()
			}
		}()
	}

	go func() {
		if serveErr := server.Start(); serveErr != nil {
			logger.Error("gRPC server exited", slog.Any("error", serveErr))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()
	server.Shutdown(shutdownCtx)

	if metricsServer != nil {
		metricsCtx, cancelMetrics := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(metricsCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server shutdown", slog.Any("error", err))
		}
		cancelMetrics()
	}

	// Give remaining goroutines time to finish logging
	time.Sleep(100 * time.Millisecond)
	logger.Info("mobility-engine stopped")
}
