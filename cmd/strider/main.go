package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rvyne/strider/internal/config"
	"github.com/rvyne/strider/internal/logger"
	"github.com/rvyne/strider/internal/sandbox"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the tuning file")
	noWatch := flag.Bool("no-watch", false, "disable live reload of the tuning file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("Failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	// The terminal belongs to the sandbox UI; logs go to a file.
	logOut := os.Stderr
	if cfg.Logging.File != "" {
		if f, ferr := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); ferr == nil {
			logOut = f
			defer f.Close()
		}
	}
	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: logOut,
	})
	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reloads <-chan *config.Config
	if !*noWatch {
		watcher, werr := config.WatchFile(*configPath)
		if werr != nil {
			slog.Warn("Live reload disabled", "error", werr)
		} else {
			defer watcher.Close()
			reloads = watcher.Configs
			go func() {
				for err := range watcher.Errors {
					slog.Warn("Config reload failed", "error", err)
				}
			}()
		}
	}

	box, err := sandbox.New(cfg)
	if err != nil {
		slog.Error("Failed to start sandbox", "error", err)
		os.Exit(1)
	}
	if err := box.Run(ctx, reloads); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Sandbox stopped", "error", err)
		os.Exit(1)
	}
}
