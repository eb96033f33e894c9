package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	setupLogging(&buf, cfg)
	return &buf
}

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	buf := captureLog(LogConfig{})
	logger.Info("test")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	logger.Info("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(out),
		"output should not start with a timestamp")
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	logger.Debug("verbose-msg")
	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out))
}

func TestSetupLogging_Levels(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestSetupLogging_DebugHiddenByDefault(t *testing.T) {
	buf := captureLog(LogConfig{})
	Debug("hidden-msg")
	assert.NotContains(t, buf.String(), "hidden-msg")
}

func TestLanguageLogger_HasPrefix(t *testing.T) {
	SetupLogging(LogConfig{})
	langLog := LanguageLogger("python")
	assert.NotNil(t, langLog)
	assert.Contains(t, langLog.GetPrefix(), "python")
}
