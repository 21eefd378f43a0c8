package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/valmiki/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	pass := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("redis down") }

	tests := []struct {
		name   string
		checks []func(context.Context) error
		status int
		body   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []func(context.Context) error{pass, pass}, http.StatusOK, "READY"},
		{"not ready", []func(context.Context) error{pass, fail}, http.StatusServiceUnavailable, "NOT_READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestHealthCheckHandler_UsesRequestContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	check := func(ctx context.Context) error { return ctx.Err() }
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(ctx)
	httpserver.HealthCheckHandler(nil, check).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
