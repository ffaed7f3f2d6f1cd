package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/xmlnav/pkg/config"
)

// envVarPrefix is the prefix for all xmlnav environment variables.
const envVarPrefix = "XMLNAV_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with XMLNAV_ (e.g. XMLNAV_COLOR);
// unset or empty variables leave the config untouched.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = v
	}
	if err := envInt(envVarPrefix+"POLL_INTERVAL_MS", &cfg.PollIntervalMS); err != nil {
		return err
	}
	if err := envInt(envVarPrefix+"PAGE_SIZE", &cfg.PageSize); err != nil {
		return err
	}
	if err := envInt(envVarPrefix+"PREVIEW_WIDTH", &cfg.PreviewWidth); err != nil {
		return err
	}
	if v := os.Getenv(envVarPrefix + "SHOW_HELP"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean in %sSHOW_HELP: %q", envVarPrefix, v)
		}
		cfg.ShowHelp = parsed
	}

	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid integer in %s: %q", name, v)
	}
	*dst = parsed
	return nil
}
