package router

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Strategy tells when a route's view is obtained.
type Strategy int

const (
	// Eager views are constructed with the table and render without a load step.
	Eager Strategy = iota
	// Lazy views are loaded on the first navigation to their route.
	Lazy
)

func (s Strategy) String() string {
	if s == Lazy {
		return "lazy"
	}
	return "eager"
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ViewData is what a view receives when it renders.
type ViewData struct {
	// Route is the name of the matched route.
	Route string
	// Params holds the named path segments, already unescaped.
	Params map[string]string
	// Query holds the request query values.
	Query map[string]string
	// Lang is the BCP 47 tag of the active locale.
	Lang string
	// T translates a message key in the active locale.
	T func(key string) string
	// State is a snapshot of the application store.
	State map[string]any
}

// Param returns a named path parameter.
func (d ViewData) Param(name string) string {
	return d.Params[name]
}

// View renders a page body.
type View interface {
	Name() string
	Render(w io.Writer, data ViewData) error
}

// Loader produces a view on demand.
type Loader func(ctx context.Context) (View, error)

// Route binds a path pattern to a named view.
type Route struct {
	// Path is the pattern, with :name marking a parameter segment.
	Path string
	// Name must be unique within a table.
	Name string
	// Strategy selects between View and Load.
	Strategy Strategy
	// View is set for eager routes.
	View View
	// Load is set for lazy routes.
	Load Loader
}

// EagerRoute returns a route whose view is ready at construction.
func EagerRoute(path, name string, view View) Route {
	return Route{Path: path, Name: name, Strategy: Eager, View: view}
}

// LazyRoute returns a route whose view is loaded on first navigation.
func LazyRoute(path, name string, load Loader) Route {
	return Route{Path: path, Name: name, Strategy: Lazy, Load: load}
}

// Params returns the parameter names of the route path, in order.
func (r Route) Params() []string {
	var names []string
	for _, seg := range splitPath(r.Path) {
		if strings.HasPrefix(seg, ":") {
			names = append(names, seg[1:])
		}
	}
	return names
}

func (r Route) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("route %q: name is required", r.Path)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("route %q: path %q must start with /", r.Name, r.Path)
	}
	switch r.Strategy {
	case Eager:
		if r.View == nil {
			return fmt.Errorf("route %q: eager route without view", r.Name)
		}
	case Lazy:
		if r.Load == nil {
			return fmt.Errorf("route %q: lazy route without loader", r.Name)
		}
	default:
		return fmt.Errorf("route %q: unknown strategy %d", r.Name, r.Strategy)
	}
	seen := make(map[string]struct{})
	for _, seg := range splitPath(r.Path) {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		if name == "" {
			return fmt.Errorf("route %q: empty parameter name in %q", r.Name, r.Path)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("route %q: parameter %q repeated in %q", r.Name, name, r.Path)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// shape identifies paths that would match the same requests.
func (r Route) shape() string {
	segs := splitPath(r.Path)
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") {
			segs[i] = ":"
		}
	}
	return "/" + strings.Join(segs, "/")
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
