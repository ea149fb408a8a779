package reader

import (
	"strconv"
	"strings"
)

// CellKind tags the value carried by a Cell.
type CellKind int

const (
	// KindNull marks a missing cell (empty or a NaN marker in the source).
	KindNull CellKind = iota
	// KindText marks a plain text value.
	KindText
	// KindNumber marks a value that parses as a number. The verbatim source
	// text is kept so the stored representation never depends on float
	// formatting.
	KindNumber
)

// Cell is a single tagged value read from a source file.
type Cell struct {
	Kind CellKind
	Text string
}

// NullCell returns a missing-value cell.
func NullCell() Cell {
	return Cell{Kind: KindNull}
}

// NewCell classifies a raw cell value. Surrounding whitespace is trimmed;
// empty cells and NaN markers become null.
func NewCell(raw string) Cell {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "nan") {
		return Cell{Kind: KindNull}
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return Cell{Kind: KindNumber, Text: v}
	}
	return Cell{Kind: KindText, Text: v}
}

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// Value returns the driver-level value for the cell: nil for null cells,
// the verbatim text otherwise. This is the point where the tagged
// (text | number | null) value narrows to (text | null).
func (c Cell) Value() any {
	if c.Kind == KindNull {
		return nil
	}
	return c.Text
}

// String renders the cell for display. Null cells render as "NULL".
func (c Cell) String() string {
	if c.Kind == KindNull {
		return "NULL"
	}
	return c.Text
}

// Table is the in-memory result of parsing one input file: the raw header
// labels in column order plus the data rows. Headers may be empty or
// duplicated; normalization happens downstream.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// newTable builds a Table from raw string records, padding the header and
// every row to the widest record so all rows share one arity. Padding
// headers with empty labels lets the normalizer assign positional names.
func newTable(headers []string, records [][]string) *Table {
	width := len(headers)
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	padded := make([]string, width)
	copy(padded, headers)

	rows := make([][]Cell, 0, len(records))
	for _, rec := range records {
		row := make([]Cell, width)
		for i := range row {
			if i < len(rec) {
				row[i] = NewCell(rec[i])
			} else {
				row[i] = NullCell()
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: padded, Rows: rows}
}
