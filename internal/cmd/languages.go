package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/cmdutil"
	"github.com/leetkick/leetkick/internal/output"
)

// languageRow is one line of the languages listing.
type languageRow struct {
	Language string `json:"language"`
	Added    bool   `json:"added"`
	Test     string `json:"test"`
}

// NewLanguagesCmd creates the languages command.
func NewLanguagesCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var outputFlags cmdutil.OutputFlags

	c := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Long: `List the languages of the template store and their test commands.

Inside a workspace, ADDED marks the languages that were added to it.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := outputFlags.Parse()
			if err != nil {
				return err
			}

			store, err := cmdutil.OpenStore(cfg)
			if err != nil {
				return err
			}

			var added []string
			if ws, err := cmdutil.FindWorkspace(); err == nil {
				if added, err = ws.Languages(store); err != nil {
					return err
				}
			}

			var rows []languageRow
			for _, lang := range store.Languages() {
				spec, err := store.Language(lang)
				if err != nil {
					return err
				}
				rows = append(rows, languageRow{
					Language: lang,
					Added:    slices.Contains(added, lang),
					Test:     strings.TrimSpace(spec.Test.Command + " " + strings.Join(spec.Test.Args, " ")),
				})
			}

			out := c.OutOrStdout()
			if format == output.FormatJSON {
				data, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding languages: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			t := output.NewTable("LANGUAGE", "ADDED", "TEST COMMAND")
			for _, r := range rows {
				mark := ""
				if r.Added {
					mark = "yes"
				}
				t.Row(r.Language, mark, r.Test)
			}
			fmt.Fprintln(out, t.String())
			return nil
		},
	}

	outputFlags.AddTo(c)

	return c
}
