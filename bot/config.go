package bot

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all bot configuration loaded from environment variables.
type Config struct {
	Discord  DiscordConfig
	Database DatabaseConfig
}

// DiscordConfig holds gateway and command settings.
type DiscordConfig struct {
	Token  string `envconfig:"DISCORD_TOKEN" required:"true"`
	Prefix string `envconfig:"COMMAND_PREFIX" default:"."`
}

// DatabaseConfig holds the backing store settings.
type DatabaseConfig struct {
	// Driver is "postgres" in production; "sqlite" is supported for local runs.
	Driver string `envconfig:"DB_DRIVER" default:"postgres"`
	URL    string `envconfig:"DATABASE_URL" required:"true"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
