package config_test

import (
	"testing"

	"student-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("ENV", "test")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 12, cfg.Security.BcryptSaltRounds)
		assert.Equal(t, "students", cfg.Events.NATS.Subject)
		assert.Empty(t, cfg.Events.Broker)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("BCRYPT_SALT_ROUNDS", "8")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_USER", "registrar")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("KAFKA_BROKERS", "kafka-0:9092,kafka-1:9092")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 8, cfg.Security.BcryptSaltRounds)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "registrar", cfg.Database.User)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, []string{"kafka-0:9092", "kafka-1:9092"}, cfg.Events.Kafka.Brokers)
	})

	t.Run("RejectsNonPositiveCost", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("BCRYPT_SALT_ROUNDS", "0")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
