package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/hello-devops/internal/platform/config"
	applog "github.com/janisto/hello-devops/internal/platform/logging"
	"github.com/janisto/hello-devops/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	defer func() {
		// Sync on stdout fails with EINVAL on some platforms; nothing to do about it.
		_ = applog.Sync()
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(ctx, "config load failed", err)
		return 1
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogError(ctx, "invalid log level", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	applog.LogInfo(ctx, "starting", zap.String("version", Version), zap.String("addr", cfg.Addr()))
	if err := server.Run(ctx, cfg, Version); err != nil {
		applog.LogError(ctx, "server failed", err)
		return 1
	}
	applog.LogInfo(ctx, "server exited")
	return 0
}
