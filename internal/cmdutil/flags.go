// Package cmdutil provides shared command utilities: flag groups, template
// store and workspace lookup, metadata source construction and result output.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
)

// LanguageFlags holds the --language flag of commands that act on one
// language workspace (fetch, test).
type LanguageFlags struct {
	Language string
}

// AddTo registers the language flag on the given cobra command.
func (f *LanguageFlags) AddTo(cmd *cobra.Command, required bool) {
	cmd.Flags().StringVarP(&f.Language, "language", "l", "",
		"Language workspace (e.g. typescript, python)")
	if required {
		_ = cmd.MarkFlagRequired("language")
	}
}

// Normalized returns the language lower-cased and trimmed.
func (f *LanguageFlags) Normalized() string {
	return strings.ToLower(strings.TrimSpace(f.Language))
}

// OutputFlags holds the --output flag of listing commands.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatTable),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// Parse validates the output format.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	if !output.OutputFormat(strings.ToLower(f.Format)).IsValid() {
		return "", &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(
				fmt.Sprintf("unknown output format %q", f.Format),
				"",
				"Valid formats: "+strings.Join(output.ValidFormats(), ", ")),
		}
	}
	return output.ParseOutputFormat(f.Format), nil
}
