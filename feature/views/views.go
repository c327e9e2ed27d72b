package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"data-studio/core/router"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Route names of the canonical table.
const (
	Home      = "Home"
	Preview   = "Preview"
	Analyze   = "Analyze"
	Visualize = "Visualize"
)

// Options configures the links the views render.
type Options struct {
	// Base is the path the pages are mounted under.
	Base string
	// API is the path prefix of the backend endpoints, e.g. "/api".
	API string
}

func (o Options) base() string {
	return strings.TrimSuffix(o.Base, "/") + "/"
}

func (o Options) api() string {
	if o.API == "" {
		return "/api"
	}
	return strings.TrimSuffix(o.API, "/")
}

// Routes returns the route table: Home renders eagerly, the dataset pages
// parse their templates on first navigation.
func Routes(opts Options) ([]router.Route, error) {
	home, err := parse(Home, "home.html", opts, nil)
	if err != nil {
		return nil, err
	}
	return []router.Route{
		router.EagerRoute("/", Home, home),
		router.LazyRoute("/preview/:filename", Preview, lazy(Preview, "preview.html", opts, previewEndpoints)),
		router.LazyRoute("/analyze/:filename", Analyze, lazy(Analyze, "analyze.html", opts, analyzeEndpoints)),
		router.LazyRoute("/visualize/:filename", Visualize, lazy(Visualize, "visualize.html", opts, visualizeEndpoints)),
	}, nil
}

// Endpoint is one backend call a page makes.
type Endpoint struct {
	Label  string
	Method string
	Path   string
}

type endpointsFunc func(api, file string, data router.ViewData) []Endpoint

func previewEndpoints(api, file string, data router.ViewData) []Endpoint {
	rows := data.Query["rows"]
	if rows == "" {
		rows = "10"
	}
	return []Endpoint{
		{"preview.title", "GET", api + "/datasets/" + file + "/preview?rows=" + url.QueryEscape(rows)},
	}
}

func analyzeEndpoints(api, file string, _ router.ViewData) []Endpoint {
	base := api + "/analysis/" + file
	return []Endpoint{
		{"analyze.title", "GET", base + "/summary"},
		{"analyze.missing", "POST", base + "/missing"},
		{"analyze.outliers", "POST", base + "/outliers"},
		{"analyze.outliers", "POST", base + "/outliers/remove"},
		{"analyze.normalize", "POST", base + "/normalize"},
		{"analyze.regression", "POST", base + "/regression"},
	}
}

func visualizeEndpoints(api, file string, _ router.ViewData) []Endpoint {
	base := api + "/visualize/" + file
	return []Endpoint{
		{"visualize.line", "POST", base + "/line"},
		{"visualize.bar", "POST", base + "/bar"},
		{"visualize.scatter", "POST", base + "/scatter"},
	}
}

func lazy(name, file string, opts Options, endpoints endpointsFunc) router.Loader {
	return func(ctx context.Context) (router.View, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return parse(name, file, opts, endpoints)
	}
}

func parse(name, file string, opts Options, endpoints endpointsFunc) (*view, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/"+file, "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse %s view: %w", name, err)
	}
	return &view{name: name, tmpl: tmpl.Lookup(file), opts: opts, endpoints: endpoints}, nil
}

// view renders one page template.
type view struct {
	name      string
	tmpl      *template.Template
	opts      Options
	endpoints endpointsFunc
}

// page is the template model.
type page struct {
	router.ViewData
	Base      string
	Datasets  string
	Filename  string
	Escaped   string
	Rows      string
	Endpoints []Endpoint
}

func (v *view) Name() string { return v.name }

func (v *view) Render(w io.Writer, data router.ViewData) error {
	filename := data.Param("filename")
	p := page{
		ViewData: data,
		Base:     v.opts.base(),
		Datasets: v.opts.api() + "/datasets",
		Filename: filename,
		Escaped:  url.PathEscape(filename),
		Rows:     data.Query["rows"],
	}
	if p.Rows == "" {
		p.Rows = "10"
	}
	if v.endpoints != nil {
		p.Endpoints = v.endpoints(v.opts.api(), p.Escaped, data)
	}
	return v.tmpl.Execute(w, p)
}
