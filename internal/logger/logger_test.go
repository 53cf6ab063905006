package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("chat-server")
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Str("chat_id", "bobalice").Msg("message stored")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "chat-server", entry["role"])
	assert.Equal(t, "bobalice", entry["chat_id"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	// empty keeps the current level
	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.Error(t, SetLevel("loud"))
}

func TestNewLogger_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "chat-server")
	l.Info().Str("direction", "encrypt").Msg("transformed")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "chat-server", entry["role"])
	assert.Equal(t, "encrypt", entry["direction"])
	assert.Contains(t, entry, "func")
}

func TestNewClientLogger(t *testing.T) {
	require.NotNil(t, NewClientLogger("chat-client"))
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Info().Msg("from child")
	assert.Equal(t, "parent-role", decodeEntry(t, &buf)["role"])
}

func TestFromContextAndRequest(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
	assert.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")
	assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])

	buf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("req")
	assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
}
