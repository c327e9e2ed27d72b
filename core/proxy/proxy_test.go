package proxy_test

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"data-studio/core/proxy"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp/fasthttputil"
)

type seen struct {
	Method        string
	Host          string
	URI           string
	Forwarded     string
	Body          string
}

func backend(t *testing.T) (*httptest.Server, func() seen) {
	t.Helper()
	var mu sync.Mutex
	var last seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		last = seen{
			Method:        r.Method,
			Host:          r.Host,
			URI:           r.URL.RequestURI(),
			Forwarded:     r.Header.Get("X-Forwarded-Host") + r.Header.Get("Forwarded"),
			Body:          string(body),
		}
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"from": "backend"})
	}))
	t.Cleanup(srv.Close)
	return srv, func() seen {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}

func TestRegister_ForwardsUnchangedExceptHost(t *testing.T) {
	srv, last := backend(t)

	app := fiber.New()
	require.NoError(t, proxy.Register(app, proxy.Config{Prefix: "/api", Target: srv.URL, TimeoutSeconds: 5}, nil))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("page") })

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{"GET", "/api", ""},
		{"GET", "/api/datasets?rows=5&x=a%20b", ""},
		{"POST", "/api/analysis/report.csv/missing", `{"strategy":"mean"}`},
		{"DELETE", "/api/datasets/report.csv", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://studio.local:8080"+tt.path, strings.NewReader(tt.body))
			resp, err := app.Test(req, 5000)
			require.NoError(t, err)
			assert.Equal(t, http.StatusCreated, resp.StatusCode)

			got := last()
			assert.Equal(t, tt.method, got.Method)
			assert.Equal(t, tt.path, got.URI)
			assert.Equal(t, strings.TrimPrefix(srv.URL, "http://"), got.Host)
			assert.Empty(t, got.Forwarded)
			assert.Equal(t, tt.body, got.Body)
		})
	}
}

func TestRegister_AbsoluteFormTarget(t *testing.T) {
	srv, last := backend(t)

	app := fiber.New()
	require.NoError(t, proxy.Register(app, proxy.Config{Prefix: "/api", Target: srv.URL, TimeoutSeconds: 5}, nil))

	ln := fasthttputil.NewInmemoryListener()
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	conn, err := ln.Dial()
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("GET http://studio.local:8080/api/datasets?rows=2 HTTP/1.1\r\nHost: studio.local:8080\r\nConnection: close\r\n\r\n"))
	require.NoError(t, err)

	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/datasets?rows=2", last().URI)
	assert.Equal(t, strings.TrimPrefix(srv.URL, "http://"), last().Host)
}

func TestRegister_LeavesOtherPaths(t *testing.T) {
	srv, last := backend(t)

	app := fiber.New()
	require.NoError(t, proxy.Register(app, proxy.Config{Prefix: "/api/", Target: srv.URL}, nil))
	app.Get("/apix", func(c *fiber.Ctx) error { return c.SendString("local") })

	resp, err := app.Test(httptest.NewRequest("GET", "/apix", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "local", string(body))
	assert.Empty(t, last().URI)
}

func TestRegister_BackendDown(t *testing.T) {
	srv, _ := backend(t)
	target := srv.URL
	srv.Close()

	app := fiber.New()
	require.NoError(t, proxy.Register(app, proxy.Config{Prefix: "/api", Target: target, TimeoutSeconds: 2}, nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/datasets", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestParseTarget(t *testing.T) {
	target, err := proxy.ParseTarget("http://localhost:5000")
	require.NoError(t, err)
	assert.Equal(t, "localhost:5000", target.Host)
	assert.Equal(t, "http://localhost:5000/api/x?y=1", target.URL("/api/x?y=1"))

	for _, bad := range []string{"localhost:5000", "ftp://host", "http://", "http://host/base"} {
		_, err := proxy.ParseTarget(bad)
		assert.Error(t, err, bad)
	}
}

func TestRegister_Errors(t *testing.T) {
	assert.Error(t, proxy.Register(fiber.New(), proxy.Config{Prefix: "/api", Target: "nope"}, nil))
	assert.Error(t, proxy.Register(fiber.New(), proxy.Config{Prefix: "/", Target: "http://localhost:5000"}, nil))
}
