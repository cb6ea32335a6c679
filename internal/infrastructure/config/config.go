package config

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SuperAdminEmail always resolves to the super_admin role, regardless of
	// what the user registry says.
	SuperAdminEmail string `env:"SUPER_ADMIN_EMAIL"`
	// AllowedDomain restricts sign-in to emails with this suffix. Empty
	// disables the check.
	AllowedDomain string `env:"ALLOWED_EMAIL_DOMAIN"`

	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	Discord DiscordConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
	// MentionID is the fallback Discord id addressed when a submitter has not
	// linked their own account.
	MentionID string `env:"DISCORD_MENTION_ID"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=health_leave"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		panic(err)
	}
	return &cfg
}
