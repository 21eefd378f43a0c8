package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valmiki/pkg/cookie"
	"github.com/dmitrymomot/valmiki/pkg/environment"
	"github.com/dmitrymomot/valmiki/pkg/requestid"
	"github.com/dmitrymomot/valmiki/pkg/secrets"
	"github.com/dmitrymomot/valmiki/pkg/visitor"
)

type memCounter struct {
	mu   sync.Mutex
	hits map[string]int64
	err  error
}

func (c *memCounter) Hit(_ context.Context, id string) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits[id]++
	return c.hits[id], nil
}

func newTestRouter(t *testing.T, counter visitCounter, readiness ...func(context.Context) error) http.Handler {
	t.Helper()
	seed, err := secrets.GenerateSeed()
	require.NoError(t, err)
	codec, err := cookie.NewFromConfig(cookie.Config{SecretKey: seed})
	require.NoError(t, err)

	h, err := newRouter(routerDeps{
		log:        slog.New(slog.DiscardHandler),
		env:        environment.Development,
		codec:      codec,
		visitorCfg: visitor.Config{CookieName: visitor.DefaultCookieName},
		counter:    counter,
		readiness:  readiness,
	})
	require.NoError(t, err)
	return h
}

func do(h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func visitorCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == visitor.DefaultCookieName {
			return c
		}
	}
	return nil
}

func TestRouter_Index(t *testing.T) {
	t.Parallel()
	counter := &memCounter{hits: map[string]int64{}}
	h := newTestRouter(t, counter)

	first := do(h, "/")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "Hello, world!", first.Body.String())
	assert.Equal(t, "1", first.Header().Get("X-Visit-Count"))
	assert.NotEmpty(t, first.Header().Get(requestid.Header))

	c := visitorCookie(t, first)
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	second := do(h, "/", c)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "2", second.Header().Get("X-Visit-Count"))
	assert.Nil(t, visitorCookie(t, second), "returning visitor gets no new cookie")
}

func TestRouter_IndexWithoutRedis(t *testing.T) {
	t.Parallel()
	rec := do(newTestRouter(t, nil), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Visit-Count"))
	assert.NotNil(t, visitorCookie(t, rec))
}

func TestRouter_CounterFailure(t *testing.T) {
	t.Parallel()
	rec := do(newTestRouter(t, &memCounter{err: errors.New("redis down")}), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, world!", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Visit-Count"))
}

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()
	rec := do(newTestRouter(t, nil), "/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Hello, World!", rec.Body.String())
	assert.NotNil(t, visitorCookie(t, rec), "default route is behind the visitor middleware")
}

func TestRouter_HealthProbes(t *testing.T) {
	t.Parallel()

	live := do(newTestRouter(t, nil), "/health/live")
	assert.Equal(t, http.StatusOK, live.Code)
	assert.Equal(t, "ALIVE", live.Body.String())
	assert.Nil(t, visitorCookie(t, live), "probes do not mint identities")

	ready := do(newTestRouter(t, nil), "/health/ready")
	assert.Equal(t, "READY", ready.Body.String())

	down := func(context.Context) error { return errors.New("down") }
	notReady := do(newTestRouter(t, nil, down), "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, notReady.Code)
}

func TestRouter_Compression(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, visitorCookie(t, rec))
	// Bodies under the adapter's minimum size are sent uncompressed.
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", string(body))
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}
