package config

import "github.com/sirupsen/logrus"

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

type (
	Config struct {
		AppEnv   AppEnv
		LogLevel logrus.Level
		HTTP     HTTP
		Database Database
		Kafka    Kafka
		Carrier  Carrier
		Webhook  Webhook
	}

	HTTP struct {
		Port int
		// AllowOrigin is the single cross-origin caller permitted on the API.
		AllowOrigin string
	}

	Database struct {
		Postgres Postgres
		Redis    Redis
	}

	Postgres struct {
		Host     string
		Port     int
		Username string
		Password string
		Database string
	}

	// Redis is optional; an empty Host disables the listing cache.
	Redis struct {
		Host     string
		Port     int
		Password string
		Database int
	}

	// Kafka is optional; an empty Host disables the lifecycle feed.
	Kafka struct {
		Host  string
		Port  int
		Topic string
	}

	Carrier struct {
		// Provider selects the outbound adapter: "telnyx" or "stub".
		Provider string
		APIKey   string
		BaseURL  string
		// Exactly one of MessagingProfileID / FromNumber identifies the
		// sender. Enforced at send time rather than at load so a partially
		// configured process can still serve webhooks and reads.
		MessagingProfileID string
		FromNumber         string
	}

	Webhook struct {
		// PublicKey is the carrier's base64-encoded ed25519 key; empty
		// disables signature verification.
		PublicKey string
	}
)
