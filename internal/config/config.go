// Package config provides configuration loading and management.
package config

import (
	"time"
)

// LeetCodeConfig contains problem metadata source settings.
type LeetCodeConfig struct {
	// Endpoint is the GraphQL endpoint.
	// Env: LEETKICK_LEETCODE_ENDPOINT, Default: https://leetcode.com/graphql
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Timeout bounds a single metadata request.
	// Env: LEETKICK_LEETCODE_TIMEOUT, Default: 15s
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// TestConfig contains test runner settings.
type TestConfig struct {
	// Timeout bounds a test run. Zero disables the bound.
	// Env: LEETKICK_TEST_TIMEOUT, Default: 0
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the leetkick configuration.
// Loaded from ~/.leetkick/config.yaml.
type Config struct {
	// Templates is a template directory replacing the embedded templates.
	// Env: LEETKICK_TEMPLATES
	Templates string `mapstructure:"templates" yaml:"templates,omitempty"`

	LeetCode LeetCodeConfig `mapstructure:"leetcode" yaml:"leetcode"`

	Test TestConfig `mapstructure:"test" yaml:"test"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `leetkick config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		LeetCode: LeetCodeConfig{
			Endpoint: "https://leetcode.com/graphql",
			Timeout:  15 * time.Second,
		},
	}
}
