package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/pageseal/internal/configs"
	perrors "github.com/PolarWolf314/pageseal/internal/errors"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Dir is the project directory. If empty, uses the working directory.
	Dir string

	// Mode is written to the new pageseal.toml. If empty, the default
	// optional mode is used.
	Mode configs.Mode

	// Force overwrites an existing pageseal.toml.
	Force bool
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// ConfigPath is the pageseal.toml that was written.
	ConfigPath string

	// Config is the configuration that was written.
	Config *configs.ProjectConfig
}

// Init writes a pageseal.toml with the default settings.
//
// Returns ErrAlreadyInitialized if the file exists and Force is not set.
// Returns ErrInvalidConfig if Mode is not a known mode.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}

	configPath := filepath.Join(dir, configs.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return nil, perrors.ErrAlreadyInitialized
	}

	config := configs.DefaultProjectConfig()
	if opts.Mode != "" {
		config.Mode = opts.Mode
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := configs.SaveProjectConfig(configPath, config); err != nil {
		return nil, err
	}

	return &InitResult{
		ConfigPath: configPath,
		Config:     config,
	}, nil
}
