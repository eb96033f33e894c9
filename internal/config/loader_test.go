package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
templates: /my/templates
leetcode:
  endpoint: http://localhost:8080/graphql
  timeout: 5s
test:
  timeout: 2m
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/my/templates", cfg.Templates)
		assert.Equal(t, "http://localhost:8080/graphql", cfg.LeetCode.Endpoint)
		assert.Equal(t, 5*time.Second, cfg.LeetCode.Timeout)
		assert.Equal(t, 2*time.Minute, cfg.Test.Timeout)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().LeetCode, cfg.LeetCode)
		assert.Empty(t, cfg.Templates)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("test:\n  timeout: 1m\n"), 0o644))

		t.Setenv("LEETKICK_TEST_TIMEOUT", "30s")
		t.Setenv("LEETKICK_LEETCODE_ENDPOINT", "https://leetcode.cn/graphql")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.Test.Timeout)
		assert.Equal(t, "https://leetcode.cn/graphql", cfg.LeetCode.Endpoint)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("leetcode: [unclosed\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "LEETKICK_TEMPLATES", EnvVar("templates"))
	assert.Equal(t, "LEETKICK_LEETCODE_ENDPOINT", EnvVar("leetcode.endpoint"))
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	exists, err = ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))
	assert.Error(t, WriteDefault(path, false))
	require.NoError(t, WriteDefault(path, true))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().LeetCode, cfg.LeetCode)
	assert.NoError(t, ValidateFile(path))
}
