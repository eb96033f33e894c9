// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/config"
	"github.com/leetkick/leetkick/internal/output"
)

// NewRootCmd creates the root command for the leetkick CLI.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		templatesFlag  string
		verboseFlag    bool
		timestampsFlag bool
	)

	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "leetkick",
		Short: "Scaffold and test LeetCode practice exercises",
		Long: `leetkick scaffolds LeetCode practice exercises into a local workspace
and runs their tests with each language's own test tool.

A workspace is a directory holding a .leetkick.json marker. Each language you
add gets its own directory with its build and test configuration, and each
problem you fetch becomes a problem_NNNN directory inside it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, globalFlags{
				config:     configFlag,
				templates:  templatesFlag,
				verbose:    verboseFlag,
				timestamps: timestampsFlag,
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: LEETKICK_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&templatesFlag, "templates", "", "Template directory replacing the built-in templates (env: LEETKICK_TEMPLATES)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd(cfg))
	rootCmd.AddCommand(NewAddCmd(cfg))
	rootCmd.AddCommand(NewFetchCmd(cfg))
	rootCmd.AddCommand(NewTestCmd(cfg))
	rootCmd.AddCommand(NewListCmd(cfg))
	rootCmd.AddCommand(NewShowCmd(cfg))
	rootCmd.AddCommand(NewLanguagesCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

type globalFlags struct {
	config     string
	templates  string
	verbose    bool
	timestamps bool
}

// initializeGlobals loads configuration, resolves global values and sets up logging.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags globalFlags) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}

	// A broken config file must not block commands that do not need it.
	loaded, loadErr := config.NewLoader().Load(configPath.Value)
	if loadErr != nil {
		loaded = config.DefaultConfig()
	}

	tmplDir := config.Resolve(config.ResolveOptions{
		Key:         "templates",
		FlagValue:   flags.templates,
		ConfigValue: loaded.Templates,
	})
	if tmplDir.Source == config.SourceFlag {
		if loaded.Templates, err = config.ExpandPath(tmplDir.Value); err != nil {
			return err
		}
	}

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.Templates = loaded.Templates
	cfg.Verbose = flags.verbose

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", configPath.Value, "error", loadErr)
	} else if err := config.Validate(loaded); err != nil {
		output.Warn("config file has invalid values", "path", configPath.Value, "error", err)
	}

	if flags.verbose {
		config.LogResolvedValues([]config.ResolvedValue{configPath, tmplDir})
		output.Debug("initializing CLI",
			"config", cfg.ConfigPath,
			"templates", cfg.Templates,
			"endpoint", loaded.LeetCode.Endpoint,
			"test-timeout", loaded.Test.Timeout,
		)
	}

	return nil
}
