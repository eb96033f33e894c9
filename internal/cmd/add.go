package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/cmdutil"
	"github.com/leetkick/leetkick/internal/exercise"
	"github.com/leetkick/leetkick/internal/output"
)

// NewAddCmd creates the add command.
func NewAddCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "add <language>",
		Short: "Add a language workspace",
		Long: `Add a language workspace to the current workspace.

Creates <root>/<language>/ and copies the language's build and test
configuration into it. Adding a language twice leaves it untouched.

Examples:
  leetkick add typescript
  leetkick add python`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runAdd(c, cfg, strings.ToLower(strings.TrimSpace(args[0])))
		},
	}
}

func runAdd(c *cobra.Command, cfg *cmdtypes.GlobalConfig, lang string) error {
	ws, err := cmdutil.FindWorkspace()
	if err != nil {
		return err
	}

	store, err := cmdutil.OpenStore(cfg)
	if err != nil {
		return err
	}

	res, err := exercise.New(store).AddLanguage(ws, lang)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	if res.AlreadyAdded {
		fmt.Fprintln(out, output.FormatCheckmark(output.StyleNoun.Render(lang)+" already added"))
		return nil
	}

	fmt.Fprintln(out, output.FormatCheckmark("Added "+output.StyleNoun.Render(lang)+" workspace"))
	cmdutil.WriteConfigFiles(out, lang, res.Files)
	fmt.Fprintf(out, "\nNext, fetch a problem: leetkick fetch <id|slug> -l %s\n", lang)
	return nil
}
