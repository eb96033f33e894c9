package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/cmdutil"
	"github.com/leetkick/leetkick/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var toolsFlag bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show leetkick version information.

Displays:
  - leetkick version, commit, and build date
  - with --tools, the test tool of every language and whether it is installed`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.GetInfo()
			if !toolsFlag {
				fmt.Fprintln(c.OutOrStdout(), info.String())
				return nil
			}

			store, err := cmdutil.OpenStore(cfg)
			if err != nil {
				return err
			}

			// Languages sharing a tool are reported on one line.
			byTool := map[string][]string{}
			for _, lang := range store.Languages() {
				spec, err := store.Language(lang)
				if err != nil || spec.Test.Command == "" {
					continue
				}
				byTool[spec.Test.Command] = append(byTool[spec.Test.Command], lang)
			}

			names := make([]string, 0, len(byTool))
			for name := range byTool {
				names = append(names, name)
			}
			sort.Strings(names)

			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			tools := make([]version.ToolInfo, 0, len(names))
			for _, name := range names {
				tools = append(tools, version.DetectTool(ctx, name, byTool[name]...))
			}

			fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(info, tools))
			return nil
		},
	}

	c.Flags().BoolVar(&toolsFlag, "tools", false, "Detect the test tools of all languages")

	return c
}
