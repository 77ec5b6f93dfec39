package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	ctx = ContextWithTraceID(ctx, "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))
	assert.Equal(t, "abc", GetOrGenerateTraceID(ctx))
}

func TestGetOrGenerateTraceID_GeneratesULID(t *testing.T) {
	id := GetOrGenerateTraceID(context.Background())
	_, err := ulid.Parse(id)
	require.NoError(t, err)
}

func TestNew_AddsTraceIDAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(New(&buf, "debug"), "loader")
	ctx := ContextWithTraceID(context.Background(), "trace-1")

	l.Debug().Ctx(ctx).Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-1", entry[FieldTraceID])
	assert.Equal(t, "loader", entry["component"])
	assert.Equal(t, "hello", entry["message"])
}

func TestNew_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "chatty")
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")
}
