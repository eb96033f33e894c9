package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/cmdutil"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
	"github.com/leetkick/leetkick/internal/templates"
	"github.com/leetkick/leetkick/internal/workspace"
)

// NewListCmd creates the list command.
func NewListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var langFlags cmdutil.LanguageFlags
	var outputFlags cmdutil.OutputFlags

	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List exercises",
		Long: `List the exercises of every added language, or of one with --language.

MODIFIED marks exercises whose generated files changed since they were
created, which usually means work in progress.

Examples:
  leetkick list
  leetkick list -l python -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := outputFlags.Parse()
			if err != nil {
				return err
			}
			return runList(c.OutOrStdout(), cfg, langFlags.Normalized(), format)
		},
	}

	langFlags.AddTo(c, false)
	outputFlags.AddTo(c)

	return c
}

func runList(out io.Writer, cfg *cmdtypes.GlobalConfig, lang string, format output.OutputFormat) error {
	ws, err := cmdutil.FindWorkspace()
	if err != nil {
		return err
	}

	store, err := cmdutil.OpenStore(cfg)
	if err != nil {
		return err
	}

	langs := []string{lang}
	if lang == "" {
		if langs, err = ws.Languages(store); err != nil {
			return err
		}
	}

	rows := []output.ExerciseRow{}
	for _, l := range langs {
		langDir, err := ws.RequireLanguage(l, store)
		if err != nil {
			return err
		}
		exercises, err := workspace.Exercises(langDir)
		if err != nil {
			return err
		}
		for _, ex := range exercises {
			rows = append(rows, exerciseRow(l, ex))
		}
	}

	if format == output.FormatJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding exercises: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No exercises yet. Create one with: leetkick fetch <id|slug> -l <language>")
		return nil
	}
	fmt.Fprintln(out, output.RenderExerciseTable(rows))
	return nil
}

func exerciseRow(lang string, ex workspace.Exercise) output.ExerciseRow {
	row := output.ExerciseRow{Language: lang, Directory: ex.Name}
	if id, ok := problem.ParseID(ex.Name[len(templates.ProblemDirPrefix):]); ok {
		row.ID = id
	}
	if ex.Meta != nil {
		row.Slug = ex.Meta.Slug
		row.Title = ex.Meta.Title
		row.Difficulty = string(ex.Meta.Difficulty)
		row.Modified = len(ex.Meta.Modified(ex.Dir)) > 0
	}
	return row
}
