package views_test

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"data-studio/core/app"
	"data-studio/core/router"
	"data-studio/core/ui"
	"data-studio/feature/views"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesTable(t *testing.T) {
	routes, err := views.Routes(views.Options{})
	require.NoError(t, err)
	require.Len(t, routes, 4)

	want := []struct {
		path, name string
		strategy   router.Strategy
	}{
		{"/", views.Home, router.Eager},
		{"/preview/:filename", views.Preview, router.Lazy},
		{"/analyze/:filename", views.Analyze, router.Lazy},
		{"/visualize/:filename", views.Visualize, router.Lazy},
	}
	for i, w := range want {
		assert.Equal(t, w.path, routes[i].Path)
		assert.Equal(t, w.name, routes[i].Name)
		assert.Equal(t, w.strategy, routes[i].Strategy)
	}
	assert.NotNil(t, routes[0].View)
	assert.Nil(t, routes[0].Load)
}

func TestNavigateRendersFilename(t *testing.T) {
	routes, err := views.Routes(views.Options{API: "/api"})
	require.NoError(t, err)
	r, err := router.New(router.Options{Routes: routes})
	require.NoError(t, err)

	nav, err := r.Navigate(context.Background(), "/preview/report.csv")
	require.NoError(t, err)
	assert.Equal(t, views.Preview, nav.Route.Name)
	assert.Equal(t, "report.csv", nav.Params["filename"])

	var buf bytes.Buffer
	err = nav.View.Render(&buf, router.ViewData{
		Route:  nav.Route.Name,
		Params: nav.Params,
		Query:  map[string]string{"rows": "25"},
		T:      func(key string) string { return key },
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `data-filename="report.csv"`)
	assert.Contains(t, buf.String(), "GET /api/datasets/report.csv/preview?rows=25")
}

func TestLazyLoaderHonoursContext(t *testing.T) {
	routes, err := views.Routes(views.Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = routes[1].Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func serve(t *testing.T, base string) (*fiber.App, *app.App) {
	t.Helper()
	routes, err := views.Routes(views.Options{Base: base, API: "/api"})
	require.NoError(t, err)

	f := fiber.New(fiber.Config{CaseSensitive: true})
	a, err := app.Bootstrap(app.Options{
		UI:     ui.Config{Locale: "en"},
		Router: router.Options{Base: base, Routes: routes},
		Target: f,
		Anchor: "#app",
	})
	require.NoError(t, err)
	return f, a
}

func get(t *testing.T, f *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := f.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestPagesThroughBootstrap(t *testing.T) {
	f, a := serve(t, "/")
	r := a.Router()

	status, body := get(t, f, "/")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `<div id="app" data-route="Home">`)
	assert.Contains(t, body, `action="/api/datasets"`)
	assert.Contains(t, body, "Upload dataset")
	assert.False(t, r.Loaded(views.Preview))
	assert.False(t, r.Loaded(views.Analyze))
	assert.False(t, r.Loaded(views.Visualize))

	status, body = get(t, f, "/analyze/sales.csv")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Data analysis")
	assert.Contains(t, body, "POST /api/analysis/sales.csv/regression")
	assert.Contains(t, body, `href="/visualize/sales.csv"`)
	assert.True(t, r.Loaded(views.Analyze))
	assert.False(t, r.Loaded(views.Visualize))

	status, body = get(t, f, "/visualize/sales.csv")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "POST /api/visualize/sales.csv/scatter")

	status, _ = get(t, f, "/nowhere")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestPagesUnderBase(t *testing.T) {
	f, _ := serve(t, "/studio")

	status, body := get(t, f, "/studio/preview/my%20data.csv")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "<strong>my data.csv</strong>")
	assert.Contains(t, body, `href="/studio/analyze/my%20data.csv"`)
	assert.Contains(t, body, "GET /api/datasets/my%20data.csv/preview?rows=10")
}
