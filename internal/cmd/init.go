package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/cmdutil"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/workspace"
)

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var forceFlag bool
	var gitFlag bool

	c := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a workspace",
		Long: `Create a leetkick workspace by writing a .leetkick.json marker.

The directory defaults to the current directory and is created if needed.
Commands run anywhere below the workspace root find it by searching upward.

Examples:
  # Create a workspace in the current directory
  leetkick init

  # Create a workspace in a new directory with a git repository
  leetkick init practice --git`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(c, cfg, dir, workspace.InitOptions{Force: forceFlag, Git: gitFlag})
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Rewrite an existing .leetkick.json")
	c.Flags().BoolVar(&gitFlag, "git", false, "Initialize a git repository with a .gitignore")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, dir string, opts workspace.InitOptions) error {
	ws, err := workspace.Init(dir, opts)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Initialized workspace in "+output.StyleNoun.Render(ws.Root)))

	store, err := cmdutil.OpenStore(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nNext, add a language: leetkick add <%s>\n", strings.Join(store.Languages(), "|"))
	return nil
}
