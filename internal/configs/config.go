package configs

import (
	"fmt"
	"os"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
)

// ConfigFileName is the project configuration file looked up from the
// working directory upwards.
const ConfigFileName = "pageseal.toml"

// DefaultIterations is the PBKDF2 work factor used when none is configured.
const DefaultIterations = 3_000_000

// MaxIterations is the largest work factor a sealed artifact may carry.
const MaxIterations = 100_000_000

// Mode selects what a build does when no passphrase is configured.
type Mode string

const (
	// ModeOptional falls back to an unencrypted artifact with a warning.
	ModeOptional Mode = "optional"
	// ModeRequired aborts the build.
	ModeRequired Mode = "required"
)

type ProjectConfig struct {
	Template   string     `toml:"template"`
	Payload    string     `toml:"payload"`
	CSSSources []string   `toml:"css_sources"`
	Output     string     `toml:"output"`
	Iterations int        `toml:"iterations"`
	Mode       Mode       `toml:"mode"`
	AuditLog   string     `toml:"audit_log"`
	Sync       SyncConfig `toml:"sync"`
}

// SyncConfig describes where `pageseal sync-css` copies the design system
// stylesheet from and to.
type SyncConfig struct {
	Source   string `toml:"source"`
	Vendored string `toml:"vendored"`
	Static   string `toml:"static"`
}

// DefaultProjectConfig returns the configuration used when pageseal.toml is
// absent or leaves keys unset.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Template: "index.html",
		Payload:  "apps.json",
		CSSSources: []string{
			"node_modules/@eti360/design-system/eti360.css",
			"ui_style.css",
		},
		Output:     "dist/index.html",
		Iterations: DefaultIterations,
		Mode:       ModeOptional,
		Sync: SyncConfig{
			Source:   "node_modules/@eti360/design-system/eti360.css",
			Vendored: "ui_style.css",
			Static:   "api/app/static/eti360.css",
		},
	}
}

// LoadProjectConfig reads the project configuration at configPath on top of
// the defaults. A missing file is not an error.
func LoadProjectConfig(configPath string) (*ProjectConfig, error) {
	config := DefaultProjectConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("%w: failed to load %s: %v", perrors.ErrInvalidConfig, configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveProjectConfig writes the configuration to configPath.
func SaveProjectConfig(configPath string, config *ProjectConfig) error {
	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save project config: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *ProjectConfig) Validate() error {
	switch c.Mode {
	case ModeOptional, ModeRequired:
	default:
		return fmt.Errorf("%w: mode must be %q or %q, got %q", perrors.ErrInvalidConfig, ModeOptional, ModeRequired, c.Mode)
	}

	if c.Iterations < 1 || c.Iterations > MaxIterations {
		return fmt.Errorf("%w: iterations must be between 1 and %d, got %d", perrors.ErrInvalidConfig, MaxIterations, c.Iterations)
	}

	for key, value := range map[string]string{
		"template": c.Template,
		"payload":  c.Payload,
		"output":   c.Output,
	} {
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", perrors.ErrInvalidConfig, key)
		}
	}

	if len(c.CSSSources) == 0 {
		return fmt.Errorf("%w: css_sources must list at least one path", perrors.ErrInvalidConfig)
	}

	return nil
}
