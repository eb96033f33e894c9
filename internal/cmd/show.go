package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/cmdutil"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
)

// markdownWidth is the word wrap width of rendered problem statements.
const markdownWidth = 100

// NewShowCmd creates the show command.
func NewShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newShowCmd(cfg, cmdutil.NewSource)
}

func newShowCmd(cfg *cmdtypes.GlobalConfig, newSource func(*cmdtypes.GlobalConfig) problem.Source) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|slug>",
		Short: "Show a problem statement",
		Long: `Fetch a problem and print its statement. No workspace is needed.

Examples:
  leetkick show 1
  leetkick show two-sum`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			source := newSource(cfg)
			p, err := output.Spin(ctx, "Fetching "+args[0]+"...", func(ctx context.Context) (*problem.Problem, error) {
				return source.Fetch(ctx, args[0])
			})
			if err != nil {
				return err
			}

			rendered, err := output.RenderMarkdown(problemMarkdown(p), markdownWidth)
			if err != nil {
				return fmt.Errorf("rendering problem: %w", err)
			}
			fmt.Fprint(c.OutOrStdout(), rendered)
			return nil
		},
	}
}

// problemMarkdown formats a problem statement as markdown.
func problemMarkdown(p *problem.Problem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d. %s\n\n", p.ID, p.Title)
	fmt.Fprintf(&b, "**%s** · `%s`\n\n", p.Difficulty, p.Slug)
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n")
	}
	return b.String()
}
