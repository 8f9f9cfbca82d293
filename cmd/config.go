package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"procurement/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of EVENTS_BROKER.
const (
	BrokerNone  = "none"
	BrokerKafka = "kafka"
	BrokerNats  = "nats"
)

// Config holds every runtime setting of the service. It is resolved from the
// environment by LoadConfig and checked by Validate before anything is wired.
type Config struct {
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret     string
	AdminUsername string

	EventsBroker           string
	KafkaBrokers           string
	KafkaOrderEventsTopic  string
	NatsURL                string
	NatsOrderEventsSubject string

	ReminderInterval time.Duration
	ReminderLead     time.Duration
}

// LoadConfig reads envFiles (missing files are skipped) into the process
// environment and then resolves every setting from it, applying defaults.
// Variables already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("EVENTS_BROKER", BrokerNone)
	v.SetDefault("KAFKA_ORDER_EVENTS_TOPIC", "procurement.order-events")
	v.SetDefault("NATS_URL", "nats://127.0.0.1:4222")
	v.SetDefault("NATS_ORDER_EVENTS_SUBJECT", "procurement.orders")
	v.SetDefault("REMINDER_INTERVAL", 15*time.Minute)
	v.SetDefault("REMINDER_LEAD", 24*time.Hour)

	config := Config{
		HTTPPort:               v.GetString("HTTP_PORT"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		DBHost:                 v.GetString("DB_HOST"),
		DBPort:                 v.GetString("DB_PORT"),
		DBUser:                 v.GetString("DB_USER"),
		DBPassword:             v.GetString("DB_PASSWORD"),
		DBName:                 v.GetString("DB_NAME"),
		DBSslMode:              v.GetString("DB_SSLMODE"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		AdminUsername:          strings.TrimSpace(v.GetString("ADMIN_USERNAME")),
		EventsBroker:           strings.ToLower(strings.TrimSpace(v.GetString("EVENTS_BROKER"))),
		KafkaBrokers:           v.GetString("KAFKA_BROKERS"),
		KafkaOrderEventsTopic:  v.GetString("KAFKA_ORDER_EVENTS_TOPIC"),
		NatsURL:                v.GetString("NATS_URL"),
		NatsOrderEventsSubject: v.GetString("NATS_ORDER_EVENTS_SUBJECT"),
		ReminderInterval:       v.GetDuration("REMINDER_INTERVAL"),
		ReminderLead:           v.GetDuration("REMINDER_LEAD"),
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate reports every invalid setting at once, joined with errors.Join.
//
// Returns:
//   - nil when the configuration can be used
//   - ValueIsRequiredError or ValueIsInvalidError per offending variable
func (c Config) Validate() error {
	var errList []error

	if c.JWTSecret == "" {
		errList = append(errList, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if !slices.Contains([]string{BrokerNone, BrokerKafka, BrokerNats}, c.EventsBroker) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("EVENTS_BROKER",
			fmt.Errorf("%q is not one of none, kafka, nats", c.EventsBroker)))
	}
	if c.EventsBroker == BrokerKafka && strings.TrimSpace(c.KafkaBrokers) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("KAFKA_BROKERS"))
	}
	if c.ReminderInterval <= 0 {
		errList = append(errList, errs.NewValueIsInvalidError("REMINDER_INTERVAL"))
	}
	if c.ReminderLead < 0 {
		errList = append(errList, errs.NewValueIsInvalidError("REMINDER_LEAD"))
	}

	return errors.Join(errList...)
}

// DSN formats the Postgres connection settings as a libpq keyword string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// NewLogger returns a JSON logger on stdout. Unknown levels fall back to info.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
