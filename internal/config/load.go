package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Load reads the full configuration from the environment. A .env file in the
// working directory is merged in first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	logLevel, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "config: invalid LOG_LEVEL")
	}

	httpPort, err := getEnvInt("HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, errors.Errorf("config: HTTP_PORT out of range: %d", httpPort)
	}

	pgPort, err := getEnvInt("POSTGRES_PORT", 5432)
	if err != nil {
		return nil, err
	}

	redisPort, err := getEnvInt("REDIS_PORT", 6379)
	if err != nil {
		return nil, err
	}
	redisDb, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	kafkaPort, err := getEnvInt("KAFKA_PORT", 9092)
	if err != nil {
		return nil, err
	}

	return &Config{
		AppEnv:   AppEnv(getEnv("APP_ENV", string(LocalEnv))),
		LogLevel: logLevel,
		HTTP: HTTP{
			Port:        httpPort,
			AllowOrigin: os.Getenv("CORS_ALLOW_ORIGIN"),
		},
		Database: Database{
			Postgres: Postgres{
				Host:     getEnv("POSTGRES_HOST", "localhost"),
				Port:     pgPort,
				Username: getEnv("POSTGRES_USER", "postgres"),
				Password: os.Getenv("POSTGRES_PASSWORD"),
				Database: getEnv("POSTGRES_DB", "smsapp"),
			},
			Redis: Redis{
				Host:     os.Getenv("REDIS_HOST"),
				Port:     redisPort,
				Password: os.Getenv("REDIS_PASSWORD"),
				Database: redisDb,
			},
		},
		Kafka: Kafka{
			Host:  os.Getenv("KAFKA_HOST"),
			Port:  kafkaPort,
			Topic: getEnv("KAFKA_TOPIC", "sms.lifecycle"),
		},
		Carrier: Carrier{
			Provider:           getEnv("CARRIER_PROVIDER", "telnyx"),
			APIKey:             os.Getenv("TELNYX_API_KEY"),
			BaseURL:            getEnv("TELNYX_API_BASE", "https://api.telnyx.com"),
			MessagingProfileID: os.Getenv("TELNYX_MESSAGING_PROFILE_ID"),
			FromNumber:         os.Getenv("TELNYX_FROM_NUMBER"),
		},
		Webhook: Webhook{
			PublicKey: os.Getenv("TELNYX_PUBLIC_KEY"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "config: invalid int for %s", key)
	}
	return i, nil
}
