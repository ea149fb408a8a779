// Package store provides destination-store adapters for the importer.
// Every adapter replaces a single table with all-TEXT columns and bulk
// inserts rows inside one transaction.
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/planimport/planimport/internal/reader"
)

// ErrSchemaMismatch is returned when a row's value count disagrees with
// the column count. It indicates a malformed input file and aborts the
// whole load.
var ErrSchemaMismatch = errors.New("row value count does not match column count")

var errNotConnected = errors.New("database connection not established")

// Config holds the configuration for connecting to a destination store.
type Config struct {
	// Type selects the adapter ("sqlite", "duckdb", "postgres").
	Type string

	// Path is the file path for file-based stores. ":memory:" opens an
	// in-memory database.
	Path string

	// Host, Port, Database, Username, Password and Schema configure
	// network stores.
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Schema   string

	// Options contains additional driver-specific options.
	Options map[string]string
}

// Adapter is the destination-store contract. Connect acquires the scoped
// connection for one import run; Close must be called on every exit path.
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// Load drops any existing table of the given name, recreates it with
	// one TEXT column per entry in columns, and inserts all rows, as a
	// single transaction. Null cells become SQL NULL; all other cells are
	// inserted as their verbatim text. It returns the number of rows
	// inserted. No partial table is left visible on failure.
	Load(ctx context.Context, table string, columns []string, rows [][]reader.Cell) (int64, error)

	// DialectName returns the SQL dialect name for this adapter.
	DialectName() string
}

// QuoteIdent escapes an identifier by wrapping it in double quotes and
// doubling any embedded quote character, so arbitrary header text is
// safely usable as a column name.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Rows wraps sql.Rows to keep callers off the driver packages.
type Rows struct {
	*sql.Rows
}
