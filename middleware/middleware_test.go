package middleware

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(logs *bytes.Buffer) *fiber.App {
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	app := fiber.New()
	app.Use(StructuredLogger(logger), Security())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	return app
}

func TestStructuredLogger_GeneratesRequestID(t *testing.T) {
	logs := &bytes.Buffer{}
	app := newTestApp(logs)

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)

	id := resp.Header.Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Contains(t, logs.String(), "request completed")
	assert.Contains(t, logs.String(), id)
}

func TestStructuredLogger_KeepsValidIncomingID(t *testing.T) {
	logs := &bytes.Buffer{}
	app := newTestApp(logs)

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(RequestIDHeader, "6f1c1a52-3c0e-4d59-9a36-0b7d0e0a9f11")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "6f1c1a52-3c0e-4d59-9a36-0b7d0e0a9f11", resp.Header.Get(RequestIDHeader))

	req = httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(RequestIDHeader))
}

func TestStructuredLogger_ClientErrorLevel(t *testing.T) {
	logs := &bytes.Buffer{}
	app := newTestApp(logs)

	_, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "client error")
}

func TestSecurityHeaders(t *testing.T) {
	app := newTestApp(&bytes.Buffer{})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}
