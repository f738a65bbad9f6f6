package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"student-service/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("JSONAddsTraceContext", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, true, "info")

		spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    trace.TraceID{0x01, 0x02},
			SpanID:     trace.SpanID{0x03},
			TraceFlags: trace.FlagsSampled,
		})
		ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

		log.InfoContext(ctx, "student created", "student_id", "S-1")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "student created", entry["msg"])
		assert.Equal(t, "S-1", entry["student_id"])
		assert.Equal(t, spanCtx.TraceID().String(), entry["trace_id"])
		assert.Equal(t, spanCtx.SpanID().String(), entry["span_id"])
	})

	t.Run("LevelFilters", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, true, "warn")

		log.Info("hidden")
		assert.Zero(t, buf.Len())

		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("TextColorsErrors", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, false, "")

		log.Error("boom")
		assert.Contains(t, buf.String(), "[31mboom")
	})
}
