package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wandertools/wandertools/internal/collector"
	"github.com/wandertools/wandertools/internal/config"
	"github.com/wandertools/wandertools/internal/database"
	"github.com/wandertools/wandertools/internal/database/repository"
	"github.com/wandertools/wandertools/internal/logging"
	"github.com/wandertools/wandertools/internal/metrics"
	"github.com/wandertools/wandertools/internal/opener"
	"github.com/wandertools/wandertools/internal/service"
	"github.com/wandertools/wandertools/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logFile, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logFile.Close()

	metrics.MustRegister(prometheus.DefaultRegisterer)
	if cfg.Metrics.Addr != "" {
		metrics.StartServer(ctx, logger, cfg.Metrics.Addr)
	}

	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.SeedCatalog(ctx, db); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	launcher := &service.Launcher{
		Apps:         repository.NewAppRepo(db),
		Settings:     repository.NewSettingRepo(db),
		DefaultTheme: service.ResolveTheme(cfg.UI.Theme, lipgloss.HasDarkBackground()),
		Cache:        cache.New(5*time.Minute, 10*time.Minute),
	}

	sender, err := collector.New(cfg.Feedback.Endpoint,
		collector.WithTimeout(cfg.Feedback.Timeout),
		collector.WithLogger(logger.With().Str("component", "collector").Logger()),
	)
	if err != nil {
		log.Fatalf("collector: %v", err)
	}

	logger.Info().Str("app", cfg.Feedback.AppName).Str("db", cfg.Database.Path).Msg("wandertools starting")

	// first frame before the stored theme loads
	cfg.UI.Theme = launcher.DefaultTheme
	p := tea.NewProgram(tui.New(ctx, cfg,
		tui.Services{Catalog: launcher, Sender: sender, Observer: metrics.Submissions{}, Opener: opener.New()},
		logger,
	), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited with error")
		fmt.Printf("error: %v\n", err)
	}
}
