package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	HTTPServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey      string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RedisServerAddress  string        `mapstructure:"REDIS_SERVER_ADDRESS"`
	GmailSMTPUsername   string        `mapstructure:"GMAIL_SMTP_USERNAME"`
	GmailSMTPPassword   string        `mapstructure:"GMAIL_SMTP_PASSWORD"`
	DiscordBotToken     string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordChannelID    string        `mapstructure:"DISCORD_CHANNEL_ID"`

	// Notification stream settings.
	StreamPollInterval       time.Duration `mapstructure:"STREAM_POLL_INTERVAL"`
	StreamHeartbeatInterval  time.Duration `mapstructure:"STREAM_HEARTBEAT_INTERVAL"`
	StreamPageSize           int32         `mapstructure:"STREAM_PAGE_SIZE"`
	StreamMaxDrainIterations int           `mapstructure:"STREAM_MAX_DRAIN_ITERATIONS"`
	StreamIdleTimeout        time.Duration `mapstructure:"STREAM_IDLE_TIMEOUT"`
	StreamMaxSessionLifetime time.Duration `mapstructure:"STREAM_MAX_SESSION_LIFETIME"`
	StreamMaxPollFailures    int           `mapstructure:"STREAM_MAX_POLL_FAILURES"`

	// Notification retention settings.
	RetentionMaxAge        time.Duration `mapstructure:"RETENTION_MAX_AGE"`
	RetentionSweepInterval time.Duration `mapstructure:"RETENTION_SWEEP_INTERVAL"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	viper.SetDefault("STREAM_POLL_INTERVAL", "2s")
	viper.SetDefault("STREAM_HEARTBEAT_INTERVAL", "15s")
	viper.SetDefault("STREAM_PAGE_SIZE", 50)
	viper.SetDefault("STREAM_MAX_DRAIN_ITERATIONS", 5)
	viper.SetDefault("STREAM_IDLE_TIMEOUT", "5m")
	viper.SetDefault("STREAM_MAX_SESSION_LIFETIME", "30m")
	viper.SetDefault("STREAM_MAX_POLL_FAILURES", 5)
	viper.SetDefault("RETENTION_MAX_AGE", "720h")
	viper.SetDefault("RETENTION_SWEEP_INTERVAL", "1h")

	// Prefer environment variables over config file
	viper.AutomaticEnv()

	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.TokenSecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}

	return nil
}
