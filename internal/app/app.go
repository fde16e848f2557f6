package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/grammar"
	"github.com/vk/unitgrid/internal/ledger"
	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/registry"
	"github.com/vk/unitgrid/internal/urn"
)

// receiptStore is the ledger surface the app needs.
type receiptStore interface {
	model.Ledger
	List(ctx context.Context) ([]model.Receipt, error)
	Balance(ctx context.Context, id urn.URN) (model.Dollars, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	config   *Config
	logger   *slog.Logger
	catalog  *catalog.Catalog
	grammar  *grammar.Grammar
	registry *registry.Registry
	ledger   receiptStore
	run      *runLedger
	close    func() error
}

// NewApp is the constructor for the main application. Results go to outW and
// logs to logW. With no modules given, the core modules are registered.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, modules ...catalog.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	cat := catalog.New(modules...)
	logger.Debug("All constructor modules registered.", "count", len(modules), "names", cat.Names())

	var store receiptStore
	closeFn := func() error { return nil }
	if cfg.LedgerPath != "" {
		db, err := ledger.Open(ctx, cfg.LedgerPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open ledger: %w", err)
		}
		store, closeFn = db, db.Close
	} else {
		store = ledger.NewMemory()
	}

	run := &runLedger{next: store}
	reg := registry.New(run)
	if err := reg.LoadFiles(ctx, cfg.RegistryPaths...); err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	gram := grammar.New(cat)
	if err := reg.Validate(ctx, gram); err != nil {
		_ = closeFn()
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		config:   cfg,
		logger:   logger,
		catalog:  cat,
		grammar:  gram,
		registry: reg,
		ledger:   store,
		run:      run,
		close:    closeFn,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Close releases the ledger.
func (a *App) Close() error {
	return a.close()
}

// runLedger forwards receipts and remembers the ones written by this process.
type runLedger struct {
	mu       sync.Mutex
	next     model.Ledger
	receipts []model.Receipt
}

func (l *runLedger) Append(ctx context.Context, receipt model.Receipt) error {
	if err := l.next.Append(ctx, receipt); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.receipts = append(l.receipts, receipt)
	return nil
}

func (l *runLedger) written() []model.Receipt {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.Receipt(nil), l.receipts...)
}
