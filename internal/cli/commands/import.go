package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planimport/planimport/internal/cli/config"
	"github.com/planimport/planimport/internal/importer"
)

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a spreadsheet into the destination table",
		Long: `Import a CSV or XLS/XLSX file into the destination table.

The table is dropped and recreated on every run, so an import fully
replaces whatever the previous run loaded. CSV delimiters (comma or
semicolon) are detected automatically.`,
		Example: `  # Import into the default produtos_bling.db
  planimport import produtos.xlsx

  # Import into a specific database file
  planimport import produtos.csv --database ./data/produtos.db

  # Legacy Windows-1252 CSV export
  planimport import produtos.csv --encoding windows-1252`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0])
		},
	}
}

func runImport(cmd *cobra.Command, source string) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	res, err := importer.Run(cmd.Context(), importer.Options{
		Source:   source,
		Table:    cfg.Table,
		Encoding: cfg.Encoding,
		Store:    storeConfig(cfg),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("Erro ao importar planilha: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Importação concluída com sucesso! Dados gravados em '%s'.\n", res.Destination)
	fmt.Fprintf(out, "%d registros importados na tabela '%s' (%d colunas).\n", res.Rows, res.Table, len(res.Columns))
	return nil
}
