package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sothon-blip/lark-line-ticket/config"
	"github.com/sothon-blip/lark-line-ticket/internal/adapter/line"
	"github.com/sothon-blip/lark-line-ticket/internal/adapter/rest"
	"github.com/sothon-blip/lark-line-ticket/internal/core"
	"github.com/sothon-blip/lark-line-ticket/internal/metrics"
)

func main() {
	// 1. Init Config
	cfg := config.Load()

	// 2. Init Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// 3. Init Metrics
	metrics.Register()

	// 4. Init LINE Client (push, reply, profile lookup)
	lineClient := line.NewClient(cfg.Line)

	// 5. Init Relay Pipeline
	dispatcher := core.NewDispatcher(lineClient, logger)
	relay := core.NewRelay(dispatcher, lineClient, cfg.Relay, logger)

	// 6. Init Webhook Adapter
	restAdapter := rest.NewAdapter(cfg.Server.Port, relay, logger)
	go func() {
		if err := restAdapter.Start(context.Background()); err != nil {
			log.Fatalf("Webhook server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down relay...")
}
