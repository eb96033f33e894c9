package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Environment variable prefix for leetkick configuration.
const envPrefix = "LEETKICK"

// keys are the configuration keys bound to environment variables.
var keys = []string{
	"templates",
	"leetcode.endpoint",
	"leetcode.timeout",
	"test.timeout",
	"log.timestamps",
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("leetcode.endpoint", defaults.LeetCode.Endpoint)
	v.SetDefault("leetcode.timeout", defaults.LeetCode.Timeout)
	v.SetDefault("test.timeout", defaults.Test.Timeout)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing config file is fine: defaults and env vars apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Templates != "" {
		if cfg.Templates, err = ExpandPath(cfg.Templates); err != nil {
			return nil, fmt.Errorf("expanding templates path: %w", err)
		}
	}

	return &cfg, nil
}

// IsSet reports whether key was set by the config file or environment.
func (l *Loader) IsSet(key string) bool {
	return l.v.InConfig(key) || os.Getenv(EnvVar(key)) != ""
}

// EnvVar returns the environment variable bound to a configuration key.
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// WriteDefault writes the default configuration to configFile, creating its
// directory. An existing file is kept unless force is set.
func WriteDefault(configFile string, force bool) error {
	exists, err := ConfigFileExists(configFile)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%s already exists", configFile)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	path, err := ExpandPath(configFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
