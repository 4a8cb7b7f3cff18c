package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/tiggercwh/stone-paper-scissors/console"
)

// Config holds the game's runtime settings.
type Config struct {
	BannerCmd   string        `env:"SPS_BANNER_CMD"   envDefault:"figlet"`
	BannerWidth int           `env:"SPS_BANNER_WIDTH" envDefault:"180"`
	MaxAttempts int           `env:"SPS_MAX_ATTEMPTS" envDefault:"5"`
	DelayShort  time.Duration `env:"SPS_DELAY_SHORT"  envDefault:"100ms"`
	DelayMedium time.Duration `env:"SPS_DELAY_MEDIUM" envDefault:"200ms"`
	DelayLong   time.Duration `env:"SPS_DELAY_LONG"   envDefault:"500ms"`
	NoDelay     bool          `env:"SPS_NO_DELAY"`
	LogLevel    string        `env:"SPS_LOG_LEVEL"    envDefault:"warn"`
}

// Load reads Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.BannerCmd == "" {
		errs = append(errs, errors.New("banner command is required"))
	}
	if c.BannerWidth <= 0 {
		errs = append(errs, fmt.Errorf("banner width must be positive, got %d", c.BannerWidth))
	}
	if c.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts))
	}
	if c.DelayShort < 0 || c.DelayMedium < 0 || c.DelayLong < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	return errors.Join(errs...)
}

// Pacer returns the display delays, all zero when NoDelay is set.
func (c Config) Pacer() console.Pacer {
	if c.NoDelay {
		return console.NoDelay
	}
	return console.Pacer{Short: c.DelayShort, Medium: c.DelayMedium, Long: c.DelayLong}
}
