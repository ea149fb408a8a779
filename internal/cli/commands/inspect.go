package commands

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planimport/planimport/internal/store"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show rows already stored in the destination table",
		Long: `Open the destination database read-only and print the contents of
the destination table. Only SQLite databases can be inspected.`,
		Example: `  planimport inspect
  planimport inspect --database vendas.db --table produtos_bling
  planimport inspect --limit 50 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, limit, format)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of rows to show (0 for all)")
	cmd.Flags().StringVarP(&format, "format", "f", "auto", "output format (auto, table, json, csv, md)")

	return cmd
}

func runInspect(cmd *cobra.Command, limit int, format string) error {
	cfg := getConfig()
	if !cmd.Flags().Changed("format") && cfg.Output != "" {
		format = cfg.Output
	}

	if cfg.Type != "sqlite" {
		return fmt.Errorf("inspect supports only sqlite databases, got %q", cfg.Type)
	}

	db, err := sql.Open("sqlite", cfg.Database+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", cfg.Database, err)
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf("SELECT * FROM %s", store.QuoteIdent(cfg.Table))
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}

	rows, err := db.QueryContext(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("failed to read table %s: %w", cfg.Table, err)
	}
	defer func() { _ = rows.Close() }()

	return renderSQLRows(cmd.OutOrStdout(), rows, format)
}
