package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/genbaworks/genba/adapter/cli"
	"github.com/genbaworks/genba/internal/app"
	"github.com/genbaworks/genba/pkg/config"
	"github.com/genbaworks/genba/pkg/observability"
)

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development", DataDir: "data"}
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:          observability.LogLevel(cfg.LogLevel),
		Format:         observability.LogFormat(cfg.LogFormat),
		ServiceName:    "genba",
		ServiceVersion: cli.Version,
	})
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to prepare data directory", "error", err)
		os.Exit(1)
	}
	cli.SetApp(container)

	cli.Execute()
}
