package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNoMatch is returned when no route matches a path.
	ErrNoMatch = errors.New("no route matches path")
	// ErrUnknownRoute is returned for a route name not in the table.
	ErrUnknownRoute = errors.New("unknown route")
)

// Options configures a Router.
type Options struct {
	// Base is the path prefix all routes live under ("/" when empty).
	Base string
	// Routes is the ordered route table.
	Routes []Route
	// Logger receives load events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Match is the result of resolving a path.
type Match struct {
	Route  Route
	Params map[string]string
}

// Navigation is a resolved match together with its ready view.
type Navigation struct {
	Match
	View View
}

// Router owns the route table and the lazily loaded views.
type Router struct {
	base   string
	routes []Route
	byName map[string]int
	logger *zap.Logger

	mu    sync.RWMutex
	views map[string]View
	group singleflight.Group
}

// New validates the table and returns a Router. Duplicate names and paths that
// would match the same requests are rejected.
func New(opts Options) (*Router, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Router{
		base:   normalizeBase(opts.Base),
		routes: make([]Route, 0, len(opts.Routes)),
		byName: make(map[string]int, len(opts.Routes)),
		logger: logger,
		views:  make(map[string]View),
	}

	shapes := make(map[string]string, len(opts.Routes))
	for _, route := range opts.Routes {
		if err := route.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[route.Name]; dup {
			return nil, fmt.Errorf("route name %q declared twice", route.Name)
		}
		shape := route.shape()
		if other, dup := shapes[shape]; dup {
			return nil, fmt.Errorf("route %q conflicts with route %q on path %q", route.Name, other, route.Path)
		}
		shapes[shape] = route.Name
		r.byName[route.Name] = len(r.routes)
		r.routes = append(r.routes, route)
	}

	return r, nil
}

// Base returns the normalized base path.
func (r *Router) Base() string {
	return r.base
}

// Routes returns a copy of the route table in declaration order.
func (r *Router) Routes() []Route {
	return append([]Route(nil), r.routes...)
}

// Route looks up a route by name.
func (r *Router) Route(name string) (Route, error) {
	idx, ok := r.byName[name]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return r.routes[idx], nil
}

// Resolve maps a request path to a route. Matching is case-sensitive, a trailing
// slash is ignored and the first route in table order wins.
func (r *Router) Resolve(path string) (*Match, error) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	rel, ok := r.stripBase(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, path)
	}

	segs := splitPath(rel)
	for _, route := range r.routes {
		if params, ok := matchSegments(splitPath(route.Path), segs); ok {
			return &Match{Route: route, Params: params}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoMatch, path)
}

// Load returns the view of a route, running a lazy loader at most once.
// Concurrent first navigations share a single load; failures are not cached.
func (r *Router) Load(ctx context.Context, route Route) (View, error) {
	if route.Strategy == Eager {
		return route.View, nil
	}

	if v, ok := r.cached(route.Name); ok {
		return v, nil
	}

	ch := r.group.DoChan(route.Name, func() (any, error) {
		if v, ok := r.cached(route.Name); ok {
			return v, nil
		}
		start := time.Now()
		// The load is shared, so it must outlive the caller that started it.
		v, err := route.Load(context.WithoutCancel(ctx))
		if err != nil {
			r.logger.Error("View load failed", zap.String("route", route.Name), zap.Error(err))
			return nil, fmt.Errorf("load view for route %q: %w", route.Name, err)
		}
		if v == nil {
			return nil, fmt.Errorf("load view for route %q: loader returned no view", route.Name)
		}
		r.mu.Lock()
		r.views[route.Name] = v
		r.mu.Unlock()
		r.logger.Debug("View loaded", zap.String("route", route.Name), zap.Duration("elapsed", time.Since(start)))
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(View), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Navigate resolves a path and loads its view, so the view is ready before it is shown.
func (r *Router) Navigate(ctx context.Context, path string) (*Navigation, error) {
	m, err := r.Resolve(path)
	if err != nil {
		return nil, err
	}
	v, err := r.Load(ctx, m.Route)
	if err != nil {
		return nil, err
	}
	return &Navigation{Match: *m, View: v}, nil
}

// Loaded reports whether a route's view is available without a load step.
func (r *Router) Loaded(name string) bool {
	idx, ok := r.byName[name]
	if !ok {
		return false
	}
	if r.routes[idx].Strategy == Eager {
		return true
	}
	_, cached := r.cached(name)
	return cached
}

func (r *Router) cached(name string) (View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.views[name]
	return v, ok
}

func (r *Router) stripBase(path string) (string, bool) {
	if r.base == "/" {
		return path, true
	}
	if path == r.base {
		return "/", true
	}
	if strings.HasPrefix(path, r.base+"/") {
		return path[len(r.base):], true
	}
	return "", false
}

func matchSegments(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	params := make(map[string]string)
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			val, err := url.PathUnescape(segs[i])
			if err != nil {
				val = segs[i]
			}
			params[p[1:]] = val
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

func normalizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return strings.TrimRight(base, "/")
}
