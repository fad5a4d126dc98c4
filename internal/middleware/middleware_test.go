package middleware

import (
	"BlogGolang/pkg/log"
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	mw := New(log.NewDiscardLogger())
	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	generated := resp.Header.Get(RequestIDKey)
	_, err = ulid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, string(body))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "caller-id")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)

	assert.Equal(t, "caller-id", resp.Header.Get(RequestIDKey))
	assert.Equal(t, "caller-id", string(body))
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	mw := New(log.NewDiscardLogger())
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "unknown", string(body))
}

func TestRateLimiter(t *testing.T) {
	mw := New(log.NewDiscardLogger(), WithRateLimit(0, 2))
	app := fiber.New()
	app.Use(mw.NewRateLimiter)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	var codes []int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterEvictsIdleBuckets(t *testing.T) {
	clock := time.Now()
	rl := newRateLimiter(1, 1)
	rl.now = func() time.Time { return clock }

	first := rl.GetLimiterFrom("10.0.0.1")
	assert.Same(t, first, rl.GetLimiterFrom("10.0.0.1"))

	clock = clock.Add(limiterIdleTTL + limiterSweepInterval)
	rl.GetLimiterFrom("10.0.0.2")

	assert.Len(t, rl.bucket, 1)
	assert.NotContains(t, rl.bucket, "10.0.0.1")
	assert.NotSame(t, first, rl.GetLimiterFrom("10.0.0.1"))
}

func TestLoggingMiddlewareMasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	mw := New(logger)
	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	app.Use(mw.NewLoggingMiddleware())
	app.Post("/user", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/user",
		strings.NewReader(`{"name":"Ada","password":"hunter2"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	_, err := app.Test(req, -1)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, "[SECRET]")
	assert.NotContains(t, out, "hunter2")
}

func TestLoggingMiddlewareUsesErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	mw := New(logger)
	app := fiber.New()
	app.Use(mw.NewLoggingMiddleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), "Client error")

	buf.Reset()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), "Server error")
}

func TestSanitizeRequestBody(t *testing.T) {
	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody([]byte("plain")))
	assert.JSONEq(t,
		`{"title":"t","Password":"[SECRET]","api_key":"[SECRET]"}`,
		sanitizeRequestBody([]byte(`{"title":"t","Password":"p","api_key":"k"}`)))
}
