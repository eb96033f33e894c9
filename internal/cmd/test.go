package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/cmdutil"
	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/runner"
)

// NewTestCmd creates the test command.
func NewTestCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var langFlags cmdutil.LanguageFlags
	var timeoutFlag string

	c := &cobra.Command{
		Use:   "test <id|slug|problem_NNNN>",
		Short: "Run an exercise's tests",
		Long: `Run the tests of one exercise with the language's test tool.

The tool runs in the language workspace directory and its output is shown as
it runs. The exit code is 0 when the tests pass and 6 when they fail.

Examples:
  leetkick test 1 -l typescript
  leetkick test two-sum -l python
  leetkick test problem_0001 -l java --timeout 2m`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			timeout := cfg.Test().Timeout
			if timeoutFlag != "" {
				d, err := parseTimeout(timeoutFlag)
				if err != nil {
					return err
				}
				timeout = d
			}
			return runTest(c, cfg, args[0], langFlags.Normalized(), timeout)
		},
	}

	langFlags.AddTo(c, true)
	c.Flags().StringVar(&timeoutFlag, "timeout", "", "Bound the test run, e.g. 90s (env: LEETKICK_TEST_TIMEOUT)")

	return c
}

func runTest(c *cobra.Command, cfg *cmdtypes.GlobalConfig, identifier, lang string, timeout time.Duration) error {
	ws, err := cmdutil.FindWorkspace()
	if err != nil {
		return err
	}

	store, err := cmdutil.OpenStore(cfg)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	r := runner.New(store, runner.WithTimeout(timeout), runner.WithOutput(out))

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := r.Run(ctx, ws, lang, identifier)
	if res == nil {
		return err
	}

	output.LanguageLogger(lang).Debug("test run finished",
		"exercise", res.Exercise.Name,
		"command", strings.Join(res.Command, " "),
		"exit", res.ExitCode,
		"duration", res.Duration)

	if err == nil {
		fmt.Fprintln(out, output.FormatCheckmark("Tests passed!"))
		return nil
	}

	if !errors.Is(err, oerrors.ErrTestsFailed) {
		return err
	}
	fmt.Fprintln(out, output.FormatCross("Tests failed: "+err.Error()))
	return &oerrors.ExitError{Code: ExitTestsFailed, Err: err, Printed: true}
}
