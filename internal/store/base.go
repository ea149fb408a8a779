package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/planimport/planimport/internal/reader"
)

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close, Query and Load behavior.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Cfg    Config
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// Query executes a SQL statement that returns rows.
func (b *BaseSQLAdapter) Query(ctx context.Context, sqlStr string, args ...any) (*Rows, error) {
	if b.DB == nil {
		return nil, errNotConnected
	}
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := b.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return &Rows{Rows: rows}, nil
}

// LoadCommon implements Load for adapters whose SQL dialect supports
// transactional DDL: the drop, create and every insert run inside one
// transaction, so a failure at any point leaves the previous table
// untouched. placeholder formats the n-th (1-based) bind parameter.
func (b *BaseSQLAdapter) LoadCommon(ctx context.Context, table string, columns []string, rows [][]reader.Cell, placeholder func(int) string) (int64, error) {
	if b.DB == nil {
		return 0, errNotConnected
	}

	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := replaceTable(ctx, tx, table, columns); err != nil {
		return 0, err
	}

	n, err := insertRows(ctx, tx, table, columns, rows, placeholder)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if b.Logger != nil {
		b.Logger.Debug("table loaded", slog.String("table", table), slog.Int("columns", len(columns)), slog.Int64("rows", n))
	}
	return n, nil
}

// replaceTable drops any existing table of the given name and recreates it
// with one TEXT column per entry in columns.
func replaceTable(ctx context.Context, tx *sql.Tx, table string, columns []string) error {
	dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s", QuoteIdent(table))
	if _, err := tx.ExecContext(ctx, dropSQL); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}

	colDefs := make([]string, len(columns))
	for i, col := range columns {
		colDefs[i] = fmt.Sprintf("%s TEXT", QuoteIdent(col))
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", QuoteIdent(table), strings.Join(colDefs, ", "))
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// insertRows bulk-inserts all rows through one prepared parameterized
// statement. Values are never concatenated into SQL text.
func insertRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]reader.Cell, placeholder func(int) string) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	quoted := make([]string, len(columns))
	holders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = QuoteIdent(col)
		holders[i] = placeholder(i + 1)
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		QuoteIdent(table), strings.Join(quoted, ", "), strings.Join(holders, ", "))

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, row := range rows {
		if len(row) != len(columns) {
			return 0, fmt.Errorf("row %d has %d values, expected %d: %w", i+1, len(row), len(columns), ErrSchemaMismatch)
		}
		args := make([]any, len(row))
		for j, cell := range row {
			args[j] = cell.Value()
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	return int64(len(rows)), nil
}

// questionPlaceholder formats "?" bind parameters (sqlite, duckdb).
func questionPlaceholder(int) string { return "?" }

// dollarPlaceholder formats "$N" bind parameters (postgres).
func dollarPlaceholder(n int) string { return fmt.Sprintf("$%d", n) }
