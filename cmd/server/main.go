package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/adapters/llm"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/adapters/parser"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/adapters/rest"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/adapters/serpapi"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/adapters/stooq"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/config"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/pkg/grpcserver"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/pkg/logging"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/usecase"
)

const serviceName = "market-proxy"

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New(os.Stderr, "info", "json")
		bootLogger.Fatal().Err(err).Msg("config")
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	// Adapters (infrastructure)
	priceFeed := stooq.NewFeed(cfg.StooqBaseURL, cfg.UpstreamTimeout)
	csvParser := parser.NewCSVParser()
	newsClient := serpapi.NewClient(cfg.SerpAPIKey, cfg.SerpAPIBaseURL, cfg.UpstreamTimeout)
	summarizer, err := llm.New(cfg.SummarizerProvider, llm.Options{
		APIKey:  cfg.SummarizerAPIKey,
		BaseURL: cfg.SummarizerBaseURL,
		Model:   cfg.SummaryModel,
		Timeout: cfg.UpstreamTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("summarizer")
	}

	// Application service (use cases)
	dashboardSvc := usecase.NewDashboardService(priceFeed, csvParser, newsClient, summarizer)

	// HTTP server (interface adapter)
	router := rest.NewRouter(rest.NewHandler(dashboardSvc), logger, cfg.StaticDir)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var health *grpcserver.Server
	if cfg.GRPCHealthAddr != "" {
		health = grpcserver.New(cfg.GRPCHealthAddr)
		health.SetServing(serviceName, true)
		go func() {
			logger.Info().Str("addr", cfg.GRPCHealthAddr).Msg("gRPC health listening")
			if err := health.Start(); err != nil {
				logger.Fatal().Err(err).Msg("gRPC serve error")
			}
		}()
	}

	// Start
	go func() {
		logger.Info().
			Str("summarizer", summarizer.Name()).
			Str("static_dir", cfg.StaticDir).
			Msgf("Server running on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP serve error")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	logger.Info().Msg("Shutting down...")

	if health != nil {
		health.SetServing(serviceName, false)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP shutdown")
	}
	if health != nil {
		health.Stop()
	}
}
