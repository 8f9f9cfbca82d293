package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"procurement/cmd"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every setting so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "LOG_LEVEL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"JWT_SECRET", "ADMIN_USERNAME", "EVENTS_BROKER", "KAFKA_BROKERS", "KAFKA_ORDER_EVENTS_TOPIC",
		"NATS_URL", "NATS_ORDER_EVENTS_SUBJECT", "REMINDER_INTERVAL", "REMINDER_LEAD",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, cmd.BrokerNone, config.EventsBroker)
	assert.Equal(t, 15*time.Minute, config.ReminderInterval)
	assert.Equal(t, 24*time.Hour, config.ReminderLead)
	assert.Equal(t, "host=localhost port=5432 user= password= dbname= sslmode=disable", config.DSN())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"JWT_SECRET=from-file\nEVENTS_BROKER=Kafka\nKAFKA_BROKERS=k1:9092,k2:9092\nREMINDER_INTERVAL=5m\nHTTP_PORT=9000\n",
	), 0o600))
	t.Setenv("HTTP_PORT", "7000")

	config, err := cmd.LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.JWTSecret)
	assert.Equal(t, cmd.BrokerKafka, config.EventsBroker)
	assert.Equal(t, "k1:9092,k2:9092", config.KafkaBrokers)
	assert.Equal(t, 5*time.Minute, config.ReminderInterval)
	assert.Equal(t, "7000", config.HTTPPort, "process environment wins over the file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		clearEnv(t)

		_, err := cmd.LoadConfig()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("unknown broker", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("EVENTS_BROKER", "rabbit")

		_, err := cmd.LoadConfig()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("kafka without brokers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("EVENTS_BROKER", "kafka")

		_, err := cmd.LoadConfig()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "KAFKA_BROKERS")
	})
}
