package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planimport/planimport/internal/normalize"
	"github.com/planimport/planimport/internal/reader"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Show the parsed rows of a spreadsheet without importing",
		Long: `Parse a CSV or Excel file and print its rows with the column names
the importer would use, without touching any database.

Empty cells and the literal "NaN" are shown as NULL, exactly as they
would be stored.`,
		Example: `  planimport preview produtos.csv
  planimport preview produtos.xlsx --limit 5
  planimport preview produtos.csv --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], limit, format)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of rows to show (0 for all)")
	cmd.Flags().StringVarP(&format, "format", "f", "auto", "output format (auto, table, json, csv, md)")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, limit int, format string) error {
	cfg := getConfig()
	if !cmd.Flags().Changed("format") && cfg.Output != "" {
		format = cfg.Output
	}

	tbl, err := reader.ReadFile(path, reader.Options{Encoding: cfg.Encoding})
	if err != nil {
		return fmt.Errorf("Erro ao importar planilha: %w", err)
	}

	cols := normalize.Headers(tbl.Headers)

	rows := tbl.Rows
	truncated := 0
	if limit > 0 && len(rows) > limit {
		truncated = len(rows) - limit
		rows = rows[:limit]
	}

	grid := make([][]string, len(rows))
	for i, row := range rows {
		vals := make([]string, len(row))
		for j, cell := range row {
			vals[j] = cell.String()
		}
		grid[i] = vals
	}

	out := cmd.OutOrStdout()
	if err := renderGrid(out, cols, grid, format); err != nil {
		return err
	}
	if truncated > 0 {
		fmt.Fprintf(out, "... %d more rows not shown (use --limit 0 for all)\n", truncated)
	}
	return nil
}
