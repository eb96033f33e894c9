// Package cmdtypes provides shared types for the cmd package and its helpers.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmdutil.
package cmdtypes

import (
	oerrors "github.com/leetkick/leetkick/internal/errors"

	"github.com/leetkick/leetkick/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every command
// constructor.
type GlobalConfig struct {
	Config     *config.Config
	ConfigPath string // resolved --config path
	Templates  string // resolved template directory, empty for the embedded templates
	Verbose    bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitUpstreamError   = oerrors.ExitUpstreamError
	ExitNotFound        = oerrors.ExitNotFound
	ExitTestsFailed     = oerrors.ExitTestsFailed
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// LeetCode returns the metadata source settings, falling back to defaults
// when no configuration was loaded.
func (g *GlobalConfig) LeetCode() config.LeetCodeConfig {
	if g == nil || g.Config == nil {
		return config.DefaultConfig().LeetCode
	}
	return g.Config.LeetCode
}

// Test returns the test runner settings.
func (g *GlobalConfig) Test() config.TestConfig {
	if g == nil || g.Config == nil {
		return config.DefaultConfig().Test
	}
	return g.Config.Test
}
