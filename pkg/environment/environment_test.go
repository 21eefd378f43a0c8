package environment_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/valmiki/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{" PROD ", environment.Production},
		{"staging", environment.Staging},
		{"stage", environment.Staging},
		{"development", environment.Development},
		{"dev", environment.Development},
		{"", environment.Development},
		{"custom", environment.Environment("custom")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.in))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := environment.WithContext(context.Background(), environment.Production)
	assert.Equal(t, environment.Production, environment.FromContext(ctx))
	assert.True(t, environment.IsProduction(ctx))
	assert.False(t, environment.IsDevelopment(ctx))

	assert.Empty(t, environment.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()
	extractor := environment.LoggerExtractor()

	attr, ok := extractor(environment.WithContext(context.Background(), environment.Staging))
	assert.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "staging", attr.Value.String())

	attr, ok = extractor(context.Background())
	assert.False(t, ok)
	assert.Equal(t, slog.Attr{}, attr)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	handler := environment.Middleware(environment.Staging)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, environment.Staging, got)
}
