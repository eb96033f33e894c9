// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps overrides timestamp reporting. Nil means on.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the logger based on verbosity and timestamp settings.
func SetupLogging(cfg LogConfig) {
	setupLogging(os.Stderr, cfg)
}

func setupLogging(w io.Writer, cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// Logger returns the global logger.
func Logger() *log.Logger {
	return logger
}

// LanguageLogger returns a child logger prefixed with the language name.
func LanguageLogger(language string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("l:") + StyleNoun.Render(language))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
