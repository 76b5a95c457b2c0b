package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/pageseal/internal/utils"
)

// Settings is everything a command needs to know about the current project.
type Settings struct {
	// Root is the directory relative paths are resolved against.
	Root string

	// ConfigPath is the pageseal.toml that was (or would be) loaded.
	ConfigPath string

	Project *ProjectConfig
	Env     *EnvConfig
}

// LoadSettings resolves the project root and loads pageseal.toml plus the
// environment. An explicit configPath (from --config) wins over
// PAGESEAL_CONFIG, which wins over searching upwards from the working
// directory.
func LoadSettings(configPath string) (*Settings, error) {
	envConfig, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		configPath = envConfig.ConfigPath
	}

	var root string
	if configPath != "" {
		configPath, err = filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		root = filepath.Dir(configPath)
	} else {
		root, err = utils.FindProjectRoot(ConfigFileName)
		if err != nil {
			return nil, err
		}
		if root == "" {
			root, err = os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
		}
		configPath = filepath.Join(root, ConfigFileName)
	}

	project, err := LoadProjectConfig(configPath)
	if err != nil {
		return nil, err
	}

	return &Settings{
		Root:       root,
		ConfigPath: configPath,
		Project:    project,
		Env:        envConfig,
	}, nil
}

// Abs resolves a configured path against the project root.
func (s *Settings) Abs(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Root, path)
}
