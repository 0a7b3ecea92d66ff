// Package testutils provides helpers for exercising the fiber app in tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/atm/infra/repository/memory"
	"github.com/amirasaad/atm/pkg/config"
	"github.com/amirasaad/atm/pkg/repository"
	accountsvc "github.com/amirasaad/atm/pkg/service/account"
	"github.com/amirasaad/atm/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestConfig returns a config with a high rate limit and cheap PIN hashing.
func TestConfig(denomination int64) *config.App {
	return &config.App{
		Env:       "test",
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Ledger:    &config.Ledger{Denomination: denomination, PINCost: bcrypt.MinCost},
	}
}

// SetupTestApp creates an app over dir, or over an empty memory directory when
// dir is nil.
func SetupTestApp(t *testing.T, dir repository.Directory, cfg *config.App) *fiber.App {
	t.Helper()
	if dir == nil {
		dir = memory.New()
	}
	if cfg == nil {
		cfg = TestConfig(0)
	}
	svc, err := accountsvc.NewService(config.Deps{
		Directory: dir,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:    cfg,
	})
	require.NoError(t, err)
	return webapi.NewApp(svc, cfg)
}

// MakeRequest sends a request with an optional JSON body through app.
func MakeRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// DecodeJSON decodes the response body into a map.
func DecodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
