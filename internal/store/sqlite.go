package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/planimport/planimport/internal/reader"

	// Pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

func init() {
	Register("sqlite", func(logger *slog.Logger) Adapter { return NewSQLiteAdapter(logger) })
}

// SQLiteAdapter implements the Adapter interface for SQLite. This is the
// default destination store.
type SQLiteAdapter struct {
	BaseSQLAdapter
}

// NewSQLiteAdapter creates a new SQLite adapter instance. A nil logger
// uses a discard logger.
func NewSQLiteAdapter(logger *slog.Logger) *SQLiteAdapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteAdapter{BaseSQLAdapter: BaseSQLAdapter{Logger: logger}}
}

// DialectName returns the SQL dialect for this adapter.
func (a *SQLiteAdapter) DialectName() string {
	return "sqlite"
}

// Connect opens the SQLite database file, creating it if necessary.
// Use ":memory:" as the path for an in-memory database.
func (a *SQLiteAdapter) Connect(ctx context.Context, cfg Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	a.Logger.Debug("connecting to sqlite", slog.String("path", path))

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A second connection to a :memory: DSN would see a different database,
	// and the tool is single-writer anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// Load replaces the table and inserts all rows in a single transaction.
func (a *SQLiteAdapter) Load(ctx context.Context, table string, columns []string, rows [][]reader.Cell) (int64, error) {
	return a.LoadCommon(ctx, table, columns, rows, questionPlaceholder)
}

var _ Adapter = (*SQLiteAdapter)(nil)
