package reader

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readSpreadsheet parses the first sheet of a workbook. Rows shorter than
// the header are padded with null cells, matching how spreadsheet tools
// omit trailing empty cells.
func readSpreadsheet(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("no sheets found in spreadsheet")
	}

	iter, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	defer func() { _ = iter.Close() }()

	var (
		headers []string
		records [][]string
		first   = true
	)
	for iter.Next() {
		row, err := iter.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row in sheet %s: %w", sheets[0], err)
		}

		// Skip leading empty rows before the header.
		if first && len(row) == 0 {
			continue
		}
		if first {
			headers = row
			first = false
			continue
		}
		records = append(records, row)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate sheet %s: %w", sheets[0], err)
	}

	if first {
		return nil, ErrEmptyInput
	}
	return newTable(headers, records), nil
}
