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

	"github.com/specwise/spec-analyzer/api/handlers"
	"github.com/specwise/spec-analyzer/api/routes"
	"github.com/specwise/spec-analyzer/config"
	"github.com/specwise/spec-analyzer/internal/service/analyzer"
	"github.com/specwise/spec-analyzer/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("SPECWISE_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/server.yaml"
	}

	cfg, err := config.LoadServerConfig(cfgPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(
		logger.WithLevel(cfg.LogLevel),
		logger.WithEncoding("json"),
		logger.WithOutputPaths(cfg.LogOutputs),
	)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	svc, err := analyzer.GetService(log, cfg)
	if err != nil {
		log.Fatal("Failed to build analyzer service", logger.Error(err))
	}

	for name, available := range svc.Capabilities() {
		log.Info("extraction capability",
			logger.String("capability", string(name)),
			logger.Bool("available", available),
		)
	}

	h := handlers.NewHandlers(svc, log)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, h)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		log.Info("Server starting", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error", logger.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", logger.Error(err))
	}
}
