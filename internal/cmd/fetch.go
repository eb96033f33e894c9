package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/cmdutil"
	"github.com/leetkick/leetkick/internal/exercise"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newFetchCmd(cfg, cmdutil.NewSource)
}

func newFetchCmd(cfg *cmdtypes.GlobalConfig, newSource func(*cmdtypes.GlobalConfig) problem.Source) *cobra.Command {
	var langFlags cmdutil.LanguageFlags
	var forceFlag bool

	c := &cobra.Command{
		Use:   "fetch <id|slug>",
		Short: "Create an exercise for a problem",
		Long: `Fetch a problem's metadata and create its exercise in a language workspace.

The exercise is written to <root>/<language>/problem_NNNN/. An existing
exercise is never touched unless --force is given; --force rewrites the
generated files and leaves any other files in the directory alone.

Examples:
  # By problem number
  leetkick fetch 1 -l typescript

  # By slug
  leetkick fetch two-sum -l python

  # Start over
  leetkick fetch 1 -l typescript --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runFetch(c, cfg, newSource(cfg), args[0], langFlags.Normalized(), forceFlag)
		},
	}

	langFlags.AddTo(c, true)
	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite the generated files of an existing exercise")

	return c
}

func runFetch(c *cobra.Command, cfg *cmdtypes.GlobalConfig, source problem.Source, identifier, lang string, force bool) error {
	ws, err := cmdutil.FindWorkspace()
	if err != nil {
		return err
	}

	store, err := cmdutil.OpenStore(cfg)
	if err != nil {
		return err
	}

	langDir, err := ws.RequireLanguage(lang, store)
	if err != nil {
		return err
	}

	svc := exercise.NewService(source, exercise.New(store))

	type fetched struct {
		p   *problem.Problem
		res *exercise.Result
	}
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out, err := output.Spin(ctx, "Fetching "+identifier+"...", func(ctx context.Context) (fetched, error) {
		p, res, err := svc.Fetch(ctx, langDir, identifier, exercise.Options{Force: force})
		return fetched{p: p, res: res}, err
	})
	if err != nil {
		return err
	}

	cmdutil.WriteExerciseResult(c.OutOrStdout(), out.p, lang, out.res)
	return nil
}
