package telemetry_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"student-service/internal/config"
	"student-service/internal/metrics"
	"student-service/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitMeterProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("DisabledWithoutEndpoint", func(t *testing.T) {
		mp, err := telemetry.InitMeterProvider(ctx, config.TelemetryConfig{}, "student-service", "test", "test", logger)
		require.NoError(t, err)
		assert.Nil(t, mp)
		assert.NoError(t, telemetry.Shutdown(ctx, mp, logger))
	})

	t.Run("InstallsGlobalProvider", func(t *testing.T) {
		// The gRPC exporter connects lazily, so no collector is needed here.
		cfg := config.TelemetryConfig{OTLPEndpoint: "127.0.0.1:4317", ExportIntervalSeconds: 60}
		mp, err := telemetry.InitMeterProvider(ctx, cfg, "student-service", "test", "test", logger)
		require.NoError(t, err)
		require.NotNil(t, mp)
		assert.Same(t, mp, otel.GetMeterProvider())

		m, err := metrics.New(otel.Meter("student-service"))
		require.NoError(t, err)
		m.RecordStudentCreated(ctx)

		shutdownCtx, cancel := context.WithTimeout(ctx, 0)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx, mp, logger)
	})
}
