package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/virtualboard/sectionscan/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:   "sectionscan [file]",
		Short: "Report collapsible section line ranges in an HTML file",
		Long: "sectionscan scans an HTML file (index.html by default) for collapsible sections and reports " +
			"the line ranges of each section wrapper and its content block.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Current(); err == nil {
				return nil
			}
			opts := config.New()
			if err := opts.Init(flagRoot, flagConfig, flagJSON, flagVerbose, flagLogFile); err != nil {
				if errors.Is(err, config.ErrInvalidConfig) {
					return WrapCLIError(ExitCodeConfig, err)
				}
				return WrapCLIError(ExitCodeFilesystem, err)
			}
			cmd.SetContext(opts.WithContext(cmd.Context()))
			return nil
		},
		RunE: runScan,
	}

	flagJSON    bool
	flagVerbose bool
	flagRoot    string
	flagConfig  string
	flagLogFile string

	flagFormat string
	flagOutput string
)

// Execute runs the root command.
func Execute() error {
	registerCommands()
	err := rootCmd.Execute()
	if opts, cerr := config.Current(); cerr == nil {
		if cerr := opts.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close resources: %v\n", cerr)
		}
	}
	return err
}

// RootCommand returns the configured root command; primarily for testing scenarios.
func RootCommand() *cobra.Command {
	registerCommands()
	return rootCmd
}

// registerCommands ensures all flags and subcommands are attached before execution.
func registerCommands() {
	if len(rootCmd.Commands()) > 0 {
		return
	}
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "Directory the input file is resolved against (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: <root>/"+config.DefaultConfigName+" when present)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "File to write verbose logs")

	rootCmd.Flags().StringVar(&flagFormat, "format", "text", "Report format: text, table, json")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the report to a file instead of stdout ('-' for stdout)")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand())
}
