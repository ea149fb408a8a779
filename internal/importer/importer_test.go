package importer

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planimport/planimport/internal/reader"
	"github.com/planimport/planimport/internal/store"
	"github.com/planimport/planimport/internal/testutil"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func queryAll(t *testing.T, dbPath, table string) (cols []string, rows [][]sql.NullString) {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	res, err := db.Query("SELECT * FROM " + store.QuoteIdent(table))
	require.NoError(t, err)
	defer func() { _ = res.Close() }()

	cols, err = res.Columns()
	require.NoError(t, err)

	for res.Next() {
		row := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range row {
			ptrs[i] = &row[i]
		}
		require.NoError(t, res.Scan(ptrs...))
		rows = append(rows, row)
	}
	require.NoError(t, res.Err())
	return cols, rows
}

func TestRunImportsCSVIntoSQLite(t *testing.T) {
	dir := t.TempDir()
	src := writeCSV(t, dir, "produtos.csv", "Nome,Preço,Preço\nCaneta,2.50,3.00\nLápis,NaN,\n")
	dbPath := filepath.Join(dir, "produtos_bling.db")

	res, err := Run(context.Background(), Options{
		Source: src,
		Table:  "produtos_bling",
		Store:  store.Config{Type: "sqlite", Path: dbPath},
		Logger: testutil.Logger(t),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, int64(2), res.Rows)
	assert.Equal(t, []string{"Nome", "Preço", "Preço_2"}, res.Columns)

	abs, err := filepath.Abs(dbPath)
	require.NoError(t, err)
	assert.Equal(t, abs, res.Destination)

	cols, rows := queryAll(t, dbPath, "produtos_bling")
	assert.Equal(t, []string{"Nome", "Preço", "Preço_2"}, cols)
	require.Len(t, rows, 2)
	assert.Equal(t, "2.50", rows[0][1].String)
	assert.False(t, rows[1][1].Valid, "NaN cell must land as NULL")
	assert.False(t, rows[1][2].Valid, "empty cell must land as NULL")
}

func TestRunReplacesPreviousImport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "produtos_bling.db")
	cfg := store.Config{Type: "sqlite", Path: dbPath}

	first := writeCSV(t, dir, "first.csv", "Nome\nCaneta\nLápis\n")
	_, err := Run(context.Background(), Options{Source: first, Table: "produtos_bling", Store: cfg})
	require.NoError(t, err)

	second := writeCSV(t, dir, "second.csv", "Nome;Preço\nCaderno;10.00\n")
	res, err := Run(context.Background(), Options{Source: second, Table: "produtos_bling", Store: cfg})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Rows)

	cols, rows := queryAll(t, dbPath, "produtos_bling")
	assert.Equal(t, []string{"Nome", "Preço"}, cols)
	require.Len(t, rows, 1)
	assert.Equal(t, "Caderno", rows[0][0].String)
}

func TestRunRejectionsLeaveTableUntouched(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "produtos_bling.db")
	cfg := store.Config{Type: "sqlite", Path: dbPath}

	good := writeCSV(t, dir, "good.csv", "Nome\nCaneta\n")
	_, err := Run(context.Background(), Options{Source: good, Table: "produtos_bling", Store: cfg})
	require.NoError(t, err)

	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"unsupported extension", "dados.txt", "Nome\nCaneta\n", reader.ErrUnsupportedFormat},
		{"header only", "vazio.csv", "Nome,Preço\n", reader.ErrEmptyInput},
		{"empty file", "nada.csv", "", reader.ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := writeCSV(t, dir, tt.file, tt.content)
			_, err := Run(context.Background(), Options{Source: src, Table: "produtos_bling", Store: cfg})
			require.ErrorIs(t, err, tt.wantErr)

			_, rows := queryAll(t, dbPath, "produtos_bling")
			require.Len(t, rows, 1, "rejected input must not disturb the existing table")
			assert.Equal(t, "Caneta", rows[0][0].String)
		})
	}
}

func TestRunUnknownStoreType(t *testing.T) {
	dir := t.TempDir()
	src := writeCSV(t, dir, "produtos.csv", "Nome\nCaneta\n")

	_, err := Run(context.Background(), Options{
		Source: src,
		Table:  "produtos_bling",
		Store:  store.Config{Type: "oracle"},
	})
	require.Error(t, err)

	var unknownErr *store.UnknownStoreError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestDestinationLabel(t *testing.T) {
	abs, err := filepath.Abs("produtos.db")
	require.NoError(t, err)

	tests := []struct {
		name string
		cfg  store.Config
		want string
	}{
		{"file path resolves to absolute", store.Config{Path: "produtos.db"}, abs},
		{"memory passes through", store.Config{Path: ":memory:"}, ":memory:"},
		{"network store", store.Config{Host: "db.local", Database: "produtos"}, "db.local/produtos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, destinationLabel(tt.cfg))
		})
	}
}
