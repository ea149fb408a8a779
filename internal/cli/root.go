// Package cli provides the command-line interface for planimport.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/planimport/planimport/internal/cli/commands"
	"github.com/planimport/planimport/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planimport",
		Short: "planimport - spreadsheet importer for produtos_bling",
		Long: `planimport loads a CSV or XLS/XLSX spreadsheet into a single
relational table, fully replacing any prior table of the same name.

Column headers are normalized into safe, unique SQL identifiers and
missing cells become NULL. All columns are stored as text.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Build the logger: debug to stderr when verbose, discard otherwise.
			logger := slog.New(slog.DiscardHandler)
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			ctx := context.WithValue(cmd.Context(), config.LoggerKey(), logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./planimport.yaml)")
	rootCmd.PersistentFlags().StringP("database", "d", "", "Destination store path (default: produtos_bling.db)")
	rootCmd.PersistentFlags().String("table", "", "Destination table name (default: produtos_bling)")
	rootCmd.PersistentFlags().String("type", "", "Destination store type (sqlite|duckdb|postgres)")
	rootCmd.PersistentFlags().String("encoding", "", "Source encoding for CSV files (utf-8|windows-1252|latin-1)")
	rootCmd.PersistentFlags().String("host", "", "Database host (network stores)")
	rootCmd.PersistentFlags().Int("port", 0, "Database port (network stores)")
	rootCmd.PersistentFlags().String("user", "", "Database user (network stores)")
	rootCmd.PersistentFlags().String("password", "", "Database password (network stores)")
	rootCmd.PersistentFlags().String("schema", "", "Database schema (network stores)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|table|csv|md|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"sqlite", "duckdb", "postgres"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "table", "csv", "md", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command. Errors are reported once on stderr.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
