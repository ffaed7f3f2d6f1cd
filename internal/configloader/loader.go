package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/xmlnav/internal/logging"
	"github.com/yaklabco/xmlnav/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project config is searched. Empty means
	// the current directory.
	WorkingDir string

	// ExplicitPath is the --config flag value; when set it replaces
	// discovery and a missing file is an error rather than a fallback.
	ExplicitPath string

	// IgnoreUserConfig skips the XDG user config (used by tests).
	IgnoreUserConfig bool
}

// Load produces the effective configuration: built-in defaults, then the
// user config file, then the project (or explicit) file, then XMLNAV_*
// environment overrides. The result is validated before it is returned.
func Load(ctx context.Context, opts LoadOptions) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		workDir = cwd
	}

	cfg := config.Default()

	if !opts.IgnoreUserConfig {
		if path := FindUserConfig(); path != "" {
			if err := mergeFile(cfg, path); err != nil {
				return nil, err
			}
			logger.Debug("loaded user config", logging.FieldPath, path)
		}
	}

	switch {
	case opts.ExplicitPath != "":
		if err := mergeFile(cfg, opts.ExplicitPath); err != nil {
			return nil, err
		}
		logger.Debug("loaded explicit config", logging.FieldPath, opts.ExplicitPath)
	default:
		if path := FindProjectConfig(workDir); path != "" {
			if err := mergeFile(cfg, path); err != nil {
				return nil, err
			}
			logger.Debug("loaded project config", logging.FieldPath, path)
		}
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// mergeFile unmarshals path over cfg, so only fields present in the file
// override the values already set.
func mergeFile(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
