package configs

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
)

// EnvConfig holds the settings read from the process environment.
type EnvConfig struct {
	// Password is the build passphrase. Never log it.
	Password string `env:"PASSWORD"`

	// ConfigPath overrides where pageseal.toml is read from.
	ConfigPath string `env:"PAGESEAL_CONFIG"`
}

// LoadEnv parses the process environment.
func LoadEnv() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: parse env: %v", perrors.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Passphrase returns the configured passphrase with surrounding whitespace
// removed, or nil when none is usable.
func (e *EnvConfig) Passphrase() []byte {
	trimmed := strings.TrimSpace(e.Password)
	if trimmed == "" {
		return nil
	}
	return []byte(trimmed)
}

// HasPassphrase reports whether a usable passphrase is configured without
// copying it.
func (e *EnvConfig) HasPassphrase() bool {
	return strings.TrimSpace(e.Password) != ""
}
