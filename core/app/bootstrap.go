package app

import (
	"data-studio/core/router"
	"data-studio/core/store"
	"data-studio/core/ui"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Options configures Bootstrap.
type Options struct {
	Logger *zap.Logger
	// UI selects the locale of the UI library.
	UI ui.Config
	// Store declares the application store.
	Store store.Options
	// Router declares the route table.
	Router router.Options
	// Target is the fiber router the application is mounted onto.
	Target fiber.Router
	// Anchor is the host element id, e.g. "#app".
	Anchor string
}

// Bootstrap builds and mounts the application in a fixed order: UI library
// with locale, state container, router, then mount.
func Bootstrap(opts Options) (*App, error) {
	a := New(opts.Logger)

	lib, err := ui.New(opts.UI)
	if err != nil {
		return nil, err
	}
	if err := a.UseUI(lib); err != nil {
		return nil, err
	}

	if err := a.UseStore(store.New(opts.Store)); err != nil {
		return nil, err
	}

	if opts.Router.Logger == nil {
		opts.Router.Logger = opts.Logger
	}
	r, err := router.New(opts.Router)
	if err != nil {
		return nil, err
	}
	if err := a.UseRouter(r); err != nil {
		return nil, err
	}

	if err := a.Mount(opts.Target, opts.Anchor); err != nil {
		return nil, err
	}
	return a, nil
}
