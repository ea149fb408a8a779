package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planimport/planimport/internal/cli/config"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := runCommand(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"import", "preview", "inspect", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestRootVersionFlag(t *testing.T) {
	out, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestImportEndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "produtos.csv")
	require.NoError(t, os.WriteFile(src, []byte("Nome,Preço\nCaneta,2.50\nLápis,NaN\n"), 0644))
	dbPath := filepath.Join(dir, "produtos_bling.db")

	out, err := runCommand(t, "import", src, "--database", dbPath)
	require.NoError(t, err)

	abs, err := filepath.Abs(dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Importação concluída com sucesso! Dados gravados em '"+abs+"'.")
	assert.Contains(t, out, "2 registros importados na tabela 'produtos_bling' (2 colunas).")

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file was not created: %v", err)
	}
}

func TestImportThenInspect(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "produtos.csv")
	require.NoError(t, os.WriteFile(src, []byte("Nome,Preço\nCaneta,2.50\n"), 0644))
	dbPath := filepath.Join(dir, "produtos_bling.db")

	_, err := runCommand(t, "import", src, "--database", dbPath)
	require.NoError(t, err)

	out, err := runCommand(t, "inspect", "--database", dbPath, "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Nome,Preço", lines[0])
	assert.Equal(t, "Caneta,2.50", lines[1])
}

func TestImportUnsupportedFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "produtos.txt")
	require.NoError(t, os.WriteFile(src, []byte("Nome\nCaneta\n"), 0644))

	_, err := runCommand(t, "import", src, "--database", filepath.Join(dir, "x.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Erro ao importar planilha:")
	assert.Contains(t, err.Error(), "não suportado")
}

func TestImportEmptySpreadsheet(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "vazio.csv")
	require.NoError(t, os.WriteFile(src, []byte("Nome,Preço\n"), 0644))

	_, err := runCommand(t, "import", src, "--database", filepath.Join(dir, "x.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a planilha está vazia")
}

func TestImportRequiresFileArgument(t *testing.T) {
	_, err := runCommand(t, "import")
	require.Error(t, err)
}

func TestImportCustomTableFlag(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "produtos.csv")
	require.NoError(t, os.WriteFile(src, []byte("Nome\nCaneta\n"), 0644))
	dbPath := filepath.Join(dir, "x.db")

	out, err := runCommand(t, "import", src, "--database", dbPath, "--table", "estoque")
	require.NoError(t, err)
	assert.Contains(t, out, "na tabela 'estoque'")
}
