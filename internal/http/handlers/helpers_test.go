package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lukk-cs/attribo-backend/internal/auth"
	"github.com/lukk-cs/attribo-backend/internal/middleware"
)

const testCreator = "c0ffee00c0ffee00"

// newTestApp mounts handlers behind a stub that signs the request in as
// testCreator.
func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.CtxRequestID, "req-1")
		c.Locals(middleware.CtxUserID, testCreator)
		c.Locals(middleware.CtxClaims, &auth.Claims{UserID: testCreator})
		return c.Next()
	})
	register(app)
	return app
}

type envelope struct {
	OK        bool            `json:"ok"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Fields    []string        `json:"fields"`
	RequestID string          `json:"request_id"`
}

func jsonRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	resp, err := app.Test(jsonRequest(method, path, body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}
