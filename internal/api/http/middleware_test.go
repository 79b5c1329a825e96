package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/agrilink/internal/observability"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

func newTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()
	app := fiber.New()
	metrics := observability.NewMetrics()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 5*time.Second)
	return app, metrics
}

func errorBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestErrorMiddlewareShapesDomainErrors(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewForbidden("insufficient role")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := errorBody(t, resp)
	assert.Equal(t, "insufficient role", body["error"])
	assert.Len(t, body, 1)
}

func TestErrorMiddlewareHidesInternalDetails(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := errorBody(t, resp)
	assert.Equal(t, "internal server error", body["error"])
}

func TestErrorMiddlewareRecoversPanics(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("handler exploded")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := errorBody(t, resp)
	assert.Equal(t, "internal server error", body["error"])
}

func TestSuccessResponsesPassThrough(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
