package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/PolarWolf314/pageseal/internal/configs"
	perrors "github.com/PolarWolf314/pageseal/internal/errors"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()

	result, err := Init(context.Background(), InitOptions{Dir: dir, Mode: configs.ModeRequired})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	loaded, err := configs.LoadProjectConfig(result.ConfigPath)
	if err != nil {
		t.Fatalf("LoadProjectConfig failed: %v", err)
	}
	if loaded.Mode != configs.ModeRequired {
		t.Errorf("Expected required mode, got %q", loaded.Mode)
	}
	if loaded.Iterations != configs.DefaultIterations {
		t.Errorf("Expected default iterations, got %d", loaded.Iterations)
	}

	if _, err := Init(context.Background(), InitOptions{Dir: dir}); !errors.Is(err, perrors.ErrAlreadyInitialized) {
		t.Errorf("Expected ErrAlreadyInitialized, got %v", err)
	}

	if _, err := Init(context.Background(), InitOptions{Dir: dir, Force: true}); err != nil {
		t.Errorf("Init with force failed: %v", err)
	}
}

func TestInitRejectsUnknownMode(t *testing.T) {
	_, err := Init(context.Background(), InitOptions{Dir: t.TempDir(), Mode: "sometimes"})
	if !errors.Is(err, perrors.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
