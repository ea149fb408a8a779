// Package importer sequences one import run: read the source file,
// normalize its headers, and replace the destination table.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/planimport/planimport/internal/normalize"
	"github.com/planimport/planimport/internal/reader"
	"github.com/planimport/planimport/internal/store"
)

// Options configures a single import run.
type Options struct {
	// Source is the path to the input file (.csv, .xls, .xlsx).
	Source string

	// Table is the destination table name.
	Table string

	// Encoding selects the source character encoding for delimited files.
	Encoding string

	// Store configures the destination store connection.
	Store store.Config

	// Logger receives structured progress events. Nil discards them.
	Logger *slog.Logger
}

// Result describes a completed import run.
type Result struct {
	RunID       string
	Source      string
	Destination string
	Table       string
	Columns     []string
	Rows        int64
	Elapsed     time.Duration
}

// Run executes one import: read file, normalize headers, connect, replace
// table, insert rows, commit. Any failure aborts before commit; the store
// connection is released on every exit path.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	runID := uuid.New().String()
	logger = logger.With(slog.String("run_id", runID))
	start := time.Now()

	logger.Debug("reading source file", slog.String("path", opts.Source))
	table, err := reader.ReadFile(opts.Source, reader.Options{Encoding: opts.Encoding})
	if err != nil {
		return nil, err
	}

	columns := normalize.Headers(table.Headers)
	logger.Debug("headers normalized", slog.Int("columns", len(columns)), slog.Int("rows", len(table.Rows)))

	adapter, err := store.New(opts.Store, logger)
	if err != nil {
		return nil, err
	}
	if err := adapter.Connect(ctx, opts.Store); err != nil {
		return nil, err
	}
	defer func() { _ = adapter.Close() }()

	n, err := adapter.Load(ctx, opts.Table, columns, table.Rows)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:       runID,
		Source:      opts.Source,
		Destination: destinationLabel(opts.Store),
		Table:       opts.Table,
		Columns:     columns,
		Rows:        n,
		Elapsed:     time.Since(start),
	}
	logger.Debug("import completed", slog.Int64("rows", res.Rows), slog.Duration("elapsed", res.Elapsed))
	return res, nil
}

// destinationLabel names the destination for user-facing messages: the
// resolved file path for file-backed stores, the database name otherwise.
func destinationLabel(cfg store.Config) string {
	if cfg.Path != "" && cfg.Path != ":memory:" {
		if abs, err := filepath.Abs(cfg.Path); err == nil {
			return abs
		}
		return cfg.Path
	}
	if cfg.Path == ":memory:" {
		return ":memory:"
	}
	return fmt.Sprintf("%s/%s", cfg.Host, cfg.Database)
}
