// Package config resolves runtime settings from flags, environment,
// an optional YAML file and defaults, in that order of precedence.
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
)

// EnvPrefix prefixes every environment override, e.g. SPECIALCHARS_STORE_BACKEND.
const EnvPrefix = "SPECIALCHARS"

// Config holds all application configuration.
type Config struct {
	DataDir string      `mapstructure:"data_dir"`
	Store   StoreConfig `mapstructure:"store"`
	Log     LogConfig   `mapstructure:"log"`
	UI      UIConfig    `mapstructure:"ui"`

	// ConfigFile is the file that was read, empty if none.
	ConfigFile string `mapstructure:"-"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // file, sqlite or memory
}

// LogConfig controls the slog output. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // defaults to <data_dir>/specialchars.log
}

// UIConfig tunes the interactive screen.
type UIConfig struct {
	ToastDuration time.Duration `mapstructure:"toast_duration"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"data-dir":  "data_dir",
	"store":     "store.backend",
	"log-level": "log.level",
	"log-file":  "log.file",
	"toast":     "ui.toast_duration",
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML config file (default <data-dir>/config.yaml)")
	fs.String("data-dir", "", "Directory holding preferences and logs")
	fs.String("store", "", "Storage backend: file, sqlite or memory")
	fs.String("log-level", "", "Log level: debug, info, warn or error")
	fs.String("log-file", "", "Log file path")
	fs.Duration("toast", 0, "How long copy confirmations stay on screen")
}

// Load resolves the configuration. Flags that were not set on the command
// line do not override lower-precedence sources.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("store.backend", "file")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("ui.toast_duration", 2*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	explicit := ""
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
	}
	if explicit == "" {
		explicit = os.Getenv(EnvPrefix + "_CONFIG")
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", explicit, err)
		}
	} else {
		v.AddConfigPath(v.GetString("data_dir"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values and fills derived defaults.
func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(c.Store.Backend)
	switch c.Store.Backend {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("invalid store backend %q (want file, sqlite or memory)", c.Store.Backend)
	}

	c.Log.Level = strings.ToLower(c.Log.Level)
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	if c.UI.ToastDuration <= 0 {
		return fmt.Errorf("toast duration must be positive, got %s", c.UI.ToastDuration)
	}

	if c.DataDir == "" {
		return errors.New("data dir must not be empty")
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.DataDir, "specialchars.log")
	}
	return nil
}

// DefaultDataDir is the per-user configuration directory for the app.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".specialchars"
	}
	return filepath.Join(dir, "specialchars")
}
