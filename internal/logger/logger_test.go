package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("auth-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "auth-server", entry["role"])

	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("auth-server") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.Error().Msg("should go nowhere")
	})
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := Nop()
	parent.Logger = zerolog.New(&buf)

	ctx := parent.WithContext(context.Background())
	got := FromContext(ctx)

	got.Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := Nop()
	parent.Logger = zerolog.New(&buf)

	r := httptest.NewRequest("GET", "/auth/me", nil)
	r = r.WithContext(parent.WithContext(r.Context()))

	FromRequest(r).Info().Msg("via request")
	assert.Contains(t, buf.String(), "via request")
}

func TestGetChildLogger_IndependentContext(t *testing.T) {
	var parentBuf bytes.Buffer
	parent := Nop()
	parent.Logger = zerolog.New(&parentBuf)

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	parent.Info().Msg("parent entry")
	assert.NotContains(t, parentBuf.String(), "trace_id")
}
