package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobservice/api/config"
	"jobservice/api/metrics"
	"jobservice/api/middleware"
	"jobservice/api/store"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestApp(t *testing.T, cfg *config.Config) (*fiber.App, *store.MemoryStore) {
	t.Helper()
	jobStore := store.NewMemoryStore(nil)
	require.NoError(t, store.Seed(jobStore, store.SampleJobs()...))

	app := New(Dependencies{
		Config:  cfg,
		Logger:  testLogger(),
		Store:   jobStore,
		Metrics: metrics.NewCollector(),
	})
	return app, jobStore
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t, config.Default())

	resp, body := get(t, app, "/health")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","message":"Job API is healthy"}`, body)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestJobRoutesMounted(t *testing.T) {
	app, _ := newTestApp(t, config.Default())

	resp, body := get(t, app, "/jobs")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.Index(body, "8cbdd2b0-7055-40d3-8f2d-ba9b38fb3d1e") < strings.Index(body, "8cbdd2b0-7055-40d3-8f2d-ba9b38fb3e1e"),
		"newest job should be listed first")
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t, config.Default())

	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"type":"SHIFT","priceInPence":5,"status":"AVAILABLE"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := get(t, app, "/metrics")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "jobapi_jobs_created_total 1")
	assert.Contains(t, body, "jobapi_jobs_stored 3")
	assert.Contains(t, body, "jobapi_http_request_duration_seconds_count")
	assert.Contains(t, body, `method="POST"`)
	assert.Contains(t, body, `status="201"`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = false
	app, _ := newTestApp(t, cfg)

	resp, _ := get(t, app, "/metrics")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSwaggerDoc(t *testing.T) {
	app, _ := newTestApp(t, config.Default())

	resp, body := get(t, app, "/swagger/doc.json")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "/jobs/{id}")
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApp(t, config.Default())

	resp, body := get(t, app, "/nope")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Cannot GET /nope")
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(testLogger())})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("secret detail") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, body := get(t, app, "/boom")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", body)

	resp, body = get(t, app, "/teapot")
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "short and stout", body)
}

func TestPanicIsRecovered(t *testing.T) {
	app, jobStore := newTestApp(t, config.Default())
	app.Get("/panic", func(c *fiber.Ctx) error { panic("handler exploded") })

	resp, _ := get(t, app, "/panic")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// The app keeps serving and the store is intact.
	resp, _ = get(t, app, "/jobs")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, jobStore.Len())
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	app, _ := newTestApp(t, config.Default())
	addr := freeAddr(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, app, addr, 2*time.Second, testLogger()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", addr))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
