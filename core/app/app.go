package app

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"data-studio/core/logger"
	"data-studio/core/router"
	"data-studio/core/store"
	"data-studio/core/ui"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

//go:embed templates/layout.html
var layoutFS embed.FS

var layout = template.Must(template.ParseFS(layoutFS, "templates/layout.html"))

var (
	// ErrMounted is returned for registrations after Mount, or a second Mount.
	ErrMounted = errors.New("application already mounted")
	// ErrNoRouter is returned by Mount when no router was registered.
	ErrNoRouter = errors.New("no router registered")
	// ErrRegistered is returned when a slot is registered twice.
	ErrRegistered = errors.New("already registered")
)

// Registration slot names, in the order Bootstrap fills them.
const (
	SlotUI     = "ui"
	SlotStore  = "store"
	SlotRouter = "router"
)

// App is the application instance the UI library, store and router are
// registered onto before it is mounted.
type App struct {
	logger *zap.Logger

	ui     *ui.Library
	store  *store.Store
	router *router.Router

	registered []string
	anchor     string
	mounted    bool
}

// New returns an empty application instance.
func New(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{logger: logger}
}

// UseUI registers the UI library.
func (a *App) UseUI(lib *ui.Library) error {
	if err := a.claim(SlotUI, a.ui != nil); err != nil {
		return err
	}
	a.ui = lib
	a.logger.Info("UI library registered", zap.String("locale", lib.Lang()))
	return nil
}

// UseStore registers the state container.
func (a *App) UseStore(s *store.Store) error {
	if err := a.claim(SlotStore, a.store != nil); err != nil {
		return err
	}
	a.store = s
	a.logger.Info("Store registered", zap.Int("modules", len(s.Modules())))
	return nil
}

// UseRouter registers the router.
func (a *App) UseRouter(r *router.Router) error {
	if err := a.claim(SlotRouter, a.router != nil); err != nil {
		return err
	}
	a.router = r
	a.logger.Info("Router registered", zap.Int("routes", len(r.Routes())), zap.String("base", r.Base()))
	return nil
}

func (a *App) claim(slot string, taken bool) error {
	if a.mounted {
		return fmt.Errorf("register %s: %w", slot, ErrMounted)
	}
	if taken {
		return fmt.Errorf("%s: %w", slot, ErrRegistered)
	}
	a.registered = append(a.registered, slot)
	return nil
}

// Mount attaches every route onto r under the router's base and renders views
// inside the element whose id is anchor ("#app" and "app" are equivalent).
func (a *App) Mount(r fiber.Router, anchor string) error {
	if a.mounted {
		return ErrMounted
	}
	if a.router == nil {
		return ErrNoRouter
	}
	anchor = strings.TrimPrefix(strings.TrimSpace(anchor), "#")
	if anchor == "" {
		return fmt.Errorf("mount anchor is required")
	}

	group := r
	if base := a.router.Base(); base != "/" {
		group = r.Group(base)
	}
	for _, route := range a.router.Routes() {
		group.Get(route.Path, a.handler(route))
	}

	a.anchor = anchor
	a.mounted = true
	a.logger.Info("Application mounted", zap.String("anchor", "#"+anchor))
	return nil
}

// Registered returns the registration order.
func (a *App) Registered() []string {
	return append([]string(nil), a.registered...)
}

// Mounted reports whether Mount succeeded.
func (a *App) Mounted() bool { return a.mounted }

// Anchor returns the mount anchor id.
func (a *App) Anchor() string { return a.anchor }

// UI returns the registered UI library.
func (a *App) UI() *ui.Library { return a.ui }

// Store returns the registered store.
func (a *App) Store() *store.Store { return a.store }

// Router returns the registered router.
func (a *App) Router() *router.Router { return a.router }

type page struct {
	Lang   string
	Title  string
	Home   string
	Anchor string
	Route  string
	Body   template.HTML
}

func (a *App) handler(route router.Route) fiber.Handler {
	names := route.Params()
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(a.logger, c)

		params := make(map[string]string, len(names))
		for _, name := range names {
			v := c.Params(name)
			if u, err := url.PathUnescape(v); err == nil {
				v = u
			}
			params[name] = v
		}

		view, err := a.router.Load(c.UserContext(), route)
		if err != nil {
			l.Error("View unavailable", zap.String("route", route.Name), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "view unavailable")
		}

		data := router.ViewData{
			Route:  route.Name,
			Params: params,
			Query:  c.Queries(),
			Lang:   a.lang(),
			T:      a.translate,
		}
		if a.store != nil {
			data.State = a.store.State()
		}

		var body bytes.Buffer
		if err := view.Render(&body, data); err != nil {
			l.Error("View render failed", zap.String("route", route.Name), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "render failed")
		}

		var out bytes.Buffer
		err = layout.Execute(&out, page{
			Lang:   a.lang(),
			Title:  a.translate("app.title"),
			Home:   a.router.Base(),
			Anchor: a.anchor,
			Route:  route.Name,
			Body:   template.HTML(body.String()),
		})
		if err != nil {
			l.Error("Layout render failed", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "render failed")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(out.Bytes())
	}
}

func (a *App) lang() string {
	if a.ui == nil {
		return ""
	}
	return a.ui.Lang()
}

func (a *App) translate(key string) string {
	if a.ui == nil {
		return key
	}
	return a.ui.T(key)
}
