package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aashari/go-openai-text-api/internal/app"
	"github.com/aashari/go-openai-text-api/internal/config"
	"github.com/aashari/go-openai-text-api/internal/logger"
)

// @title           OpenAI Text API
// @version         1.0
// @description     HTTP service for text generation and chat completion backed by OpenAI.

// @contact.name   API Support
// @contact.url    https://github.com/aashari/go-openai-text-api

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /

const shutdownTimeout = 30 * time.Second

func main() {
	// Bootstrap logger until the configuration is loaded
	if err := logger.InitFromEnv(); err != nil {
		_, _ = os.Stderr.WriteString("FATAL: Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := logger.WithComponent(context.Background(), logger.ComponentNames.App)

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err)
		os.Exit(1)
	}

	if err := app.InitLogging(cfg); err != nil {
		logger.Error(ctx, "Failed to initialize logger", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Swagger documentation available", "url", "http://"+cfg.Address()+"/docs/index.html")

	if err := application.Run(ctx, shutdownTimeout); err != nil {
		logger.Error(ctx, "Server failed", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped")
}
