package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/config"
	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the leetkick CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default configuration to ~/.leetkick/config.yaml, or to the
path given by --config.

Examples:
  # Initialize configuration
  leetkick config init

  # Overwrite existing configuration
  leetkick config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path, err := resolvedConfigPath(cfg)
			if err != nil {
				return err
			}

			exists, err := config.ConfigFileExists(path)
			if err != nil {
				return fmt.Errorf("checking config file: %w", err)
			}
			if exists && !forceFlag {
				return &oerrors.ExitError{
					Code: ExitValidationError,
					Err: &oerrors.DetailError{
						Type:     "validation failed",
						Message:  "configuration already exists",
						Location: path,
						Hint:     "Use --force to overwrite existing configuration.",
						Cause:    oerrors.ErrValidation,
					},
				}
			}

			if err := config.WriteDefault(path, forceFlag); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Wrote "+output.StyleNoun.Render(path)))
			return nil
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing configuration")

	return c
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file.

The command validates the configuration file at ~/.leetkick/config.yaml by
default. Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path, err := resolvedConfigPath(cfg)
			if err != nil {
				return err
			}

			exists, err := config.ConfigFileExists(path)
			if err != nil {
				return fmt.Errorf("checking config file: %w", err)
			}
			if !exists {
				return &oerrors.ExitError{
					Code: ExitNotFound,
					Err:  fmt.Errorf("config file not found: %s", path),
				}
			}

			if err := config.ValidateFile(path); err != nil {
				var validationErrs config.ValidationErrors
				if errors.As(err, &validationErrs) {
					w := c.ErrOrStderr()
					fmt.Fprintln(w, "Error: config validation failed")
					fmt.Fprintf(w, "  File: %s\n\n", path)
					for _, e := range validationErrs {
						fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
					}
					return &oerrors.ExitError{Code: ExitValidationError, Err: err, Printed: true}
				}
				return &oerrors.ExitError{Code: ExitValidationError, Err: err}
			}

			fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", path)
			return nil
		},
	}
}

// resolvedConfigPath returns the resolved config file path, resolving it directly
// when the command runs without the root command.
func resolvedConfigPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg != nil && cfg.ConfigPath != "" {
		return config.ExpandPath(cfg.ConfigPath)
	}
	resolved, err := config.ResolveConfigPath("")
	if err != nil {
		return "", err
	}
	return config.ExpandPath(resolved.Value)
}
