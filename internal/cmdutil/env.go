package cmdutil

import (
	"fmt"
	"os"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/leetcode"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
	"github.com/leetkick/leetkick/internal/templates"
	"github.com/leetkick/leetkick/internal/workspace"
)

// OpenStore returns the configured template store: the resolved template
// directory when set, the embedded templates otherwise.
func OpenStore(cfg *cmdtypes.GlobalConfig) (*templates.Store, error) {
	if cfg == nil || cfg.Templates == "" {
		return templates.Default(), nil
	}

	store, err := templates.Open(cfg.Templates)
	if err != nil {
		return nil, &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err}
	}
	output.Debug("using template directory", "path", store.Location())
	return store, nil
}

// FindWorkspace locates the workspace enclosing the working directory.
func FindWorkspace() (*workspace.Workspace, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return workspace.FindRoot(wd)
}

// NewSource creates the problem metadata source from configuration.
func NewSource(cfg *cmdtypes.GlobalConfig) problem.Source {
	lc := cfg.LeetCode()
	return leetcode.NewClient(lc.Endpoint, leetcode.WithTimeout(lc.Timeout))
}
