package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		modify func(*Config)
		fields []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"templates dir", func(c *Config) { c.Templates = dir }, nil},
		{"missing templates dir", func(c *Config) { c.Templates = dir + "/missing" }, []string{"templates"}},
		{"blank templates", func(c *Config) { c.Templates = "  " }, []string{"templates"}},
		{"bad endpoint", func(c *Config) { c.LeetCode.Endpoint = "leetcode.com" }, []string{"leetcode.endpoint"}},
		{"negative timeouts", func(c *Config) {
			c.LeetCode.Timeout = -time.Second
			c.Test.Timeout = -time.Second
		}, []string{"leetcode.timeout", "test.timeout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var errs ValidationErrors
			require.True(t, errors.As(err, &errs))
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}
