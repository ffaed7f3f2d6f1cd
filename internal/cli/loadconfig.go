package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/xmlnav/internal/configloader"
	"github.com/yaklabco/xmlnav/pkg/config"
)

// loadConfig resolves the effective configuration for a command,
// honoring the root command's persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, errors.Join(errConfig, err)
	}
	return cfg, nil
}

// effectiveColor resolves the color mode: an explicit --color flag wins,
// otherwise the configured value applies.
func effectiveColor(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("color") {
		if mode, err := cmd.Flags().GetString("color"); err == nil {
			return mode
		}
	}
	return cfg.Color
}
