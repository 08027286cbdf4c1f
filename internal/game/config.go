package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Frontend names accepted by Config.Frontend.
const (
	FrontendConsole = "console"
	FrontendScreen  = "screen"
)

// Config holds game configuration options.
type Config struct {
	// Seed for the session random source, which picks each game's layout.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"SCATSCOUT_SEED"`

	Frontend string `env:"SCATSCOUT_FRONTEND" envDefault:"console"`
	Theme    string `env:"SCATSCOUT_THEME" envDefault:"classic"`

	LogLevel  string `env:"SCATSCOUT_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"SCATSCOUT_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"SCATSCOUT_LOG_FILE"`

	// Layout is a YAML board file to play instead of a generated board.
	Layout string `env:"SCATSCOUT_LAYOUT"`
}

// LoadConfig reads configuration from SCATSCOUT_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that cannot be expressed as env defaults.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendConsole, FrontendScreen:
	default:
		return fmt.Errorf("frontend %q: want %s or %s", c.Frontend, FrontendConsole, FrontendScreen)
	}
	return nil
}
