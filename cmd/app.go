package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/guilhermegouw/leaguebook/internal/config"
	"github.com/guilhermegouw/leaguebook/internal/debug"
	"github.com/guilhermegouw/leaguebook/internal/logic"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
	"github.com/guilhermegouw/leaguebook/internal/storage"
)

// app is one wired league session: configuration, event hub, store and
// controller.
type app struct { //nolint:govet // fieldalignment: preserving logical field order
	cfg    *config.Config
	hub    *pubsub.Hub
	store  storage.Storage
	ctrl   *logic.Controller
	cancel context.CancelFunc
}

// openApp loads the configuration, applies the command line overrides and
// loads the league.
func openApp(ctx context.Context, flags *rootFlags) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := applyFlags(cfg, flags); err != nil {
		return nil, err
	}

	if cfg.Debug() {
		if debugErr := debug.Enable(cfg.DebugLogPath()); debugErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to enable debug logging: %v\n", debugErr)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	hub := pubsub.NewHub()
	if debug.IsEnabled() {
		debug.Trace(ctx, hub)
	}

	a := &app{cfg: cfg, hub: hub, cancel: cancel}

	store, err := storage.Open(ctx, cfg.Backend(), cfg.StoragePath(), storage.WithEvents(hub.Store))
	if err != nil {
		_ = a.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Backend(), err)
	}
	a.store = store

	league, err := storage.LoadOrSample(ctx, store, cfg.SampleData())
	if err != nil {
		_ = a.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("loading league from %s: %w", store.Path(), err)
	}
	debug.Event("app", "loaded", fmt.Sprintf("%s backend at %s", cfg.Backend(), store.Path()))

	a.ctrl = logic.New(logic.Config{League: league, Storage: store, Hub: hub})
	return a, nil
}

func applyFlags(cfg *config.Config, flags *rootFlags) error {
	if flags.backend != "" {
		if _, err := config.ParseField("storage.backend", flags.backend); err != nil {
			return fmt.Errorf("--backend: %w", err)
		}
		cfg.Storage.Backend = flags.backend
	}
	if flags.data != "" {
		cfg.Storage.Path = flags.data
	}
	if flags.debug {
		cfg.Options.Debug = true
	}
	return nil
}

// Close stops event delivery and releases the store.
func (a *app) Close() error {
	a.cancel()
	a.hub.Shutdown()

	defer debug.Disable()

	if a.store == nil {
		return nil
	}
	if err := storage.Close(a.store); err != nil {
		return fmt.Errorf("closing storage: %w", err)
	}
	return nil
}
