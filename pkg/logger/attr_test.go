package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valmiki/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"error", logger.Error(boom), "error", boom},
		{"request id", logger.RequestID("abc"), "request_id", "abc"},
		{"visitor id", logger.VisitorID("Xy12"), "visitor_id", "Xy12"},
		{"component", logger.Component("visitor"), "component", "visitor"},
		{"method", logger.Method("GET"), "method", "GET"},
		{"path", logger.Path("/a"), "path", "/a"},
		{"status", logger.Status(404), "status", int64(404)},
		{"bytes", logger.Bytes(12), "bytes", int64(12)},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
		{"addr", logger.Addr(":8080"), "addr", ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestAttrs_EmptyValuesAreDropped(t *testing.T) {
	t.Parallel()
	for name, attr := range map[string]slog.Attr{
		"error":      logger.Error(nil),
		"errors":     logger.Errors(nil, nil),
		"request id": logger.RequestID(""),
		"visitor id": logger.VisitorID(""),
	} {
		assert.True(t, attr.Equal(slog.Attr{}), name)
	}
}

func TestErrorsAndGroup(t *testing.T) {
	t.Parallel()
	first, second := errors.New("first"), errors.New("second")

	attr := logger.Errors(first, nil, second)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, second, g[1].Value.Any())

	grp := logger.Group("req", logger.Method("GET"), logger.Status(200))
	require.Equal(t, slog.KindGroup, grp.Value.Kind())
	assert.Len(t, grp.Value.Group(), 2)
}
