package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// defaultConfigRelPath is the palette file searched for when no explicit
// path is given. Relative to the user's home directory.
const defaultConfigRelPath = ".config/csvpeek/config.toml"

// findConfigFile returns the palette file to use and whether it was
// explicitly requested. An empty return means run on built-in defaults.
func findConfigFile(explicit string) (path string, required bool) {
	if explicit != "" {
		return explicit, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	candidate := filepath.Join(home, defaultConfigRelPath)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, false
	}
	return "", false
}

// Load builds the configuration from defaults, the TOML palette file,
// CSVPEEK_* environment variables, and command-line flags, in ascending
// precedence. cfgFile is the explicitly requested palette path, empty for
// the default search. A missing or malformed explicit file is a fatal
// error; a malformed file found on the default path is skipped with a
// warning so the viewer still starts.
func Load(cfgFile string, flags *pflag.FlagSet, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"rows":                     DefaultRows,
		"delimiter":                DefaultDelimiter,
		"pager.scroll_single_line": DefaultScrollSingleLine,
		"pager.scroll_multi_line":  DefaultScrollMultiLine,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Palette file.
	path, required := findConfigFile(cfgFile)
	if path != "" {
		err := k.Load(file.Provider(path), toml.Parser())
		switch {
		case err != nil && required:
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		case err != nil:
			logger.Warn("ignoring unreadable config file", "path", path, "error", err)
		}
	}

	// 3. Environment variables: CSVPEEK_NO_HEADER -> no_header.
	if err := k.Load(env.Provider("CSVPEEK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CSVPEEK_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest precedence, only those explicitly set).
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")

			// The toggle flag is --pager for familiarity, but the
			// config key is "interactive": [pager] is already the
			// scroll-step table in the palette file.
			if key == "pager" {
				return "interactive", posflag.FlagVal(flags, f)
			}
			// --colorscheme names the config file itself and is not
			// a config value.
			if key == "colorscheme" {
				return "", nil
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		if required || cfgFile != "" {
			return nil, err
		}
		// A bad value from the optional default-path file must not
		// keep the viewer from starting.
		logger.Warn("invalid config value, using defaults", "path", path, "error", err)
		cfg.resetColors()
		cfg.resetPagerSteps()
		if err := cfg.Validate(); err != nil {
			// Still invalid, so the bad value came from a flag or
			// the environment, not the file.
			return nil, err
		}
	}

	if path != "" {
		logger.Debug("loaded config file", "path", path)
	}
	return &cfg, nil
}

// resetColors drops all configured colors so the built-in palette applies.
func (c *Config) resetColors() {
	c.Header = ""
	c.RowIndex = ""
	c.DataTypes = DataTypeColors{}
	c.Background = ZebraColors{}
}

// resetPagerSteps restores the default scroll step sizes.
func (c *Config) resetPagerSteps() {
	c.Pager.ScrollSingleLine = DefaultScrollSingleLine
	c.Pager.ScrollMultiLine = DefaultScrollMultiLine
}
