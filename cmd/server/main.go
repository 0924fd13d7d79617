package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vianieuws/perstool/internal/api"
	"github.com/vianieuws/perstool/internal/config"
	"github.com/vianieuws/perstool/internal/engine"
	"github.com/vianieuws/perstool/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional; PERS_* env vars otherwise)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

func buildLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if err := os.MkdirAll(cfg.Jobs.SpoolDir, 0o700); err != nil {
		return fmt.Errorf("create spool dir: %w", err)
	}

	db, err := store.OpenSQLite(cfg.Jobs.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	s, err := store.New(db, cfg.Jobs.TTL, logger)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := store.NewSweeper(s, cfg.Jobs.SweepInterval, logger)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	var modelClient engine.ModelClient
	if cfg.OpenAI.APIKey != "" {
		logger.Info("using OpenAI model client", zap.String("model", cfg.OpenAI.Model))
		modelClient = engine.NewOpenAIClient(cfg.OpenAI.APIKey,
			engine.WithModel(cfg.OpenAI.Model),
			engine.WithBaseURL(cfg.OpenAI.BaseURL),
		)
	} else {
		logger.Info("no API key configured, using stub model client")
		modelClient = &engine.StubModelClient{}
	}

	budget := engine.Budget{
		Total:        cfg.Process.Budget,
		SafetyMargin: cfg.Process.SafetyMargin,
		MinRemaining: cfg.Process.MinRemaining,
		CallCap:      cfg.Process.CallCap,
	}
	orch := engine.NewOrchestrator(modelClient, budget, logger)

	srv := api.New(s, orch, cfg.Jobs.SpoolDir, cfg.Server.MaxUploadBytes, logger)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Handler(),
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("perstool server listening", zap.Int("port", cfg.Server.Port))
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
