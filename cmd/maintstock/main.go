package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/maintstock/internal/catalog"
	"github.com/jask/maintstock/internal/clock"
	"github.com/jask/maintstock/internal/config"
	"github.com/jask/maintstock/internal/inventory"
	"github.com/jask/maintstock/internal/ledger"
	"github.com/jask/maintstock/internal/logging"
	"github.com/jask/maintstock/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	items, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	store, err := inventory.NewCatalog(items)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	logger.Info("catalog loaded", zap.Int("items", store.Len()), zap.String("source", sourceLabel(cfg.Catalog.Path)))

	loc, err := clock.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		logger.Warn("falling back to local timezone", zap.String("timezone", cfg.UI.Timezone), zap.Error(err))
		loc = nil
	}

	engine := ledger.New(store, ledger.WithLogger(logger))

	app, err := tui.New(cfg.UI, tui.Deps{
		Engine:  engine,
		Suggest: store,
		Clock:   clock.System{Location: loc},
	})
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
	logger.Info("session closed", zap.Int("transactions", len(engine.History())))
}

func sourceLabel(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
