// Package reader loads delimited-text and spreadsheet files into an
// in-memory table of tagged cell values.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned when the input extension is not
	// recognized.
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado: utilize arquivos .csv, .xls ou .xlsx")

	// ErrEmptyInput is returned when the parsed input has no data rows.
	ErrEmptyInput = errors.New("a planilha está vazia e não possui dados para importar")
)

// Options configures file reading.
type Options struct {
	// Encoding selects the source character encoding for delimited files.
	// Empty or "utf-8" reads bytes as-is; "windows-1252", "latin-1" and
	// "iso-8859-1" decode legacy exports. Spreadsheets are always UTF-8.
	Encoding string
}

// ReadFile parses the file at path based on its extension (case-insensitive)
// and returns its contents as a Table. The result always has at least one
// data row; a well-formed but header-only file fails with ErrEmptyInput.
func ReadFile(path string, opts Options) (*Table, error) {
	var (
		t   *Table
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		t, err = readCSV(path, opts.Encoding)
	case ".xls", ".xlsx":
		t, err = readSpreadsheet(path)
	default:
		return nil, fmt.Errorf("%w (extensão %q)", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if len(t.Rows) == 0 {
		return nil, ErrEmptyInput
	}
	return t, nil
}
