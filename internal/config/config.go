// Package config resolves xn's settings from defaults, an optional YAML file,
// XN_* environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zoro11031/xn/internal/common"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "XN"

// Config wraps a viper instance with typed accessors for xn's keys
type Config struct {
	filePath string
	v        *viper.Viper
}

// DefaultFilePath returns $XDG_CONFIG_HOME/xn/config.yaml (or the platform equivalent).
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "xn", "config.yaml")
}

// New creates a new Config instance. An empty filePath selects DefaultFilePath.
func New(filePath string) *Config {
	if filePath == "" {
		filePath = DefaultFilePath()
	}

	v := viper.New()
	for key, value := range Defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Config{filePath: filePath, v: v}
}

// Load reads the config file. A missing file is not an error.
func (c *Config) Load() error {
	if c.filePath == "" {
		return nil
	}
	if _, err := os.Stat(c.filePath); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	c.v.SetConfigFile(c.filePath)
	c.v.SetConfigType("yaml")
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", c.filePath, err)
	}
	return nil
}

// BindFlags lets explicitly set flags in fs override every other source.
// Flags that fs does not define are skipped.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	for key, name := range flagNames {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := c.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Count returns the run count, falling back to common.DefaultCount when the
// configured value is not a positive integer.
func (c *Config) Count() int {
	return common.ParseCount(c.v.GetString(KeyCount))
}

// Silent reports whether per-run detail output is suppressed
func (c *Config) Silent() bool {
	return c.v.GetBool(KeySilent)
}

// Shell returns the interpreter override, empty for the platform default
func (c *Config) Shell() string {
	return strings.TrimSpace(c.v.GetString(KeyShell))
}

// Timeout returns the per-run timeout
func (c *Config) Timeout() (time.Duration, error) {
	raw := strings.TrimSpace(c.v.GetString(KeyTimeout))
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	if err := common.ValidateTimeout(d); err != nil {
		return 0, err
	}
	return d, nil
}

// ConfirmAbove returns the run count above which confirmation is requested
func (c *Config) ConfirmAbove() int {
	return c.v.GetInt(KeyConfirmAbove)
}

// AssumeYes reports whether confirmation prompts are answered automatically
func (c *Config) AssumeYes() bool {
	return c.v.GetBool(KeyAssumeYes)
}

// LogLevel returns the configured log level name
func (c *Config) LogLevel() string {
	return c.v.GetString(KeyLogLevel)
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}
