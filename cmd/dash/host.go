package main

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/renato0307/dash/internal/commands"
	"github.com/renato0307/dash/internal/config"
	"github.com/renato0307/dash/internal/dash"
	"github.com/renato0307/dash/internal/history"
	"github.com/renato0307/dash/internal/logging"
	"github.com/renato0307/dash/internal/menu"
)

//go:embed menu.yaml
var demoMenu []byte

// host wires the menu file, action bindings and history backend together
// for every command.
type host struct {
	cfg          config.Config
	backend      history.Backend
	closeBackend func() error
	registry     *commands.Registry
	binder       *commands.Binder
}

func newHost(ctx context.Context, cfg config.Config) (*host, error) {
	backend, closeBackend, err := openBackend(cfg.History)
	if err != nil {
		return nil, err
	}

	h := &host{
		cfg:          cfg,
		backend:      backend,
		closeBackend: closeBackend,
		registry:     commands.NewRegistry(),
	}
	h.registry.Register(commands.Command{
		Name:        "clear-history",
		Description: "Forget every recently run action",
		Execute: func() error {
			history.New(cfg.HistoryStore(), nil, backend).Clear(ctx)
			return nil
		},
	})
	h.registry.Register(commands.Command{
		Name:        "about",
		Description: "Copy the dash description to the clipboard",
		Execute: func() error {
			return commands.CopyToClipboard("dash: search a nested menu by breadcrumb and run the chosen action")
		},
	})
	h.binder = commands.NewBinder(h.registry, commands.NewProcessExecutor())

	return h, nil
}

// openBackend builds the configured history backend and its closer.
func openBackend(cfg config.HistoryConfig) (history.Backend, func() error, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		backend := history.NewRedisBackend(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			history.WithKey(cfg.Redis.Key))
		logging.Debug("using redis history", "addr", cfg.Redis.Addr, "key", backend.Key())
		return backend, backend.Close, nil
	case config.BackendFile:
		backend := history.NewFileBackend(cfg.Path)
		logging.Debug("using file history", "path", backend.Path)
		return backend, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
}

// Close releases the history backend.
func (h *host) Close() {
	if err := h.closeBackend(); err != nil {
		logging.Warn("failed to close history backend", "error", err)
	}
}

// menuSource names the menu for display.
func (h *host) menuSource() string {
	if h.cfg.Menu == "" {
		return "demo menu"
	}
	return h.cfg.Menu
}

// loadMenu reads the menu and binds its actions. It is called on every
// dialog open so edits to the menu file show up without a restart.
func (h *host) loadMenu() ([]*menu.Item, error) {
	var (
		items []*menu.Item
		err   error
	)
	if h.cfg.Menu == "" {
		items, err = menu.Parse(demoMenu)
	} else {
		items, err = menu.LoadFile(h.cfg.Menu)
	}
	if err != nil {
		return nil, err
	}

	bound := menu.Bind(items, h.binder.Bind)
	logging.Debug("menu loaded", "source", h.menuSource(), "bound", bound)
	return items, nil
}

// open crawls the menu and loads the history for one non-interactive
// command.
func (h *host) open(ctx context.Context) (*dash.Session, error) {
	items, err := h.loadMenu()
	if err != nil {
		return nil, err
	}
	return dash.Open(ctx, menu.Nodes(items), h.cfg.HistoryStore(), h.backend), nil
}
