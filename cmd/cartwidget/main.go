package main

import (
	"context"
	"log/slog"
	"os"

	billingapp "github.com/adimulya/cartwidget/internal/billing/app"
	billingadapter "github.com/adimulya/cartwidget/internal/billing/infra/adapter"
	cartapp "github.com/adimulya/cartwidget/internal/cart/app"
	cartmem "github.com/adimulya/cartwidget/internal/cart/infra/memory"
	catalogapp "github.com/adimulya/cartwidget/internal/catalog/app"
	catalogmem "github.com/adimulya/cartwidget/internal/catalog/infra/memory"
	"github.com/adimulya/cartwidget/internal/session"
	"github.com/adimulya/cartwidget/internal/tui"
	"github.com/adimulya/cartwidget/internal/widget"

	"github.com/adimulya/cartwidget/pkg/config"
	"github.com/adimulya/cartwidget/pkg/logger"
	"github.com/adimulya/cartwidget/pkg/shutdown"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Error("open log file failed", slog.Any("err", err), slog.String("path", cfg.LogFile))
		os.Exit(1)
	}
	defer logFile.Close()

	log := logger.New(logger.Options{
		Service:   "cartwidget",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
		Output:    logFile,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog (static, read-only)
	productRepo, err := loadCatalog(cfg)
	if err != nil {
		log.Error("catalog load failed", slog.Any("err", err))
		os.Exit(1)
	}
	catalogSvc := catalogapp.NewService(productRepo)

	// Cart (one per running session, never persisted)
	cartRepo := cartmem.NewCartRepo()
	cartSvc := cartapp.NewService(cartRepo)

	// Billing (adapter over the cart service)
	cartReader := billingadapter.NewCartServiceReader(cartSvc)
	billingSvc := billingapp.NewService(cartReader)

	// Session gate
	gate := session.NewGate()

	ctrl, err := widget.NewController(log, cartSvc, catalogSvc, billingSvc, gate, productRepo.Currency())
	if err != nil {
		log.Error("controller init failed", slog.Any("err", err))
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.New(ctrl),
		tea.WithAltScreen(),
	)

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	log.Info("widget starting", slog.String("catalog", catalogSource(cfg)))
	if _, err := p.Run(); err != nil {
		log.Error("tui error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func loadCatalog(cfg config.Config) (*catalogmem.ProductRepo, error) {
	if cfg.CatalogPath != "" {
		return catalogmem.NewProductRepoFromFile(cfg.CatalogPath, cfg.Currency)
	}
	return catalogmem.NewProductRepo(cfg.Currency)
}

func catalogSource(cfg config.Config) string {
	if cfg.CatalogPath != "" {
		return cfg.CatalogPath
	}
	return "embedded"
}
