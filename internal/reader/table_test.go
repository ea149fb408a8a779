package reader

import "testing"

func TestNewCell(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind CellKind
		wantText string
	}{
		{"empty is null", "", KindNull, ""},
		{"whitespace is null", "   ", KindNull, ""},
		{"NaN is null", "NaN", KindNull, ""},
		{"nan lowercase is null", "nan", KindNull, ""},
		{"plain text", "Caneta Azul", KindText, "Caneta Azul"},
		{"text is trimmed", "  Caneta ", KindText, "Caneta"},
		{"integer keeps verbatim text", "42", KindNumber, "42"},
		{"decimal keeps verbatim text", "10.50", KindNumber, "10.50"},
		{"trailing zeros survive", "1.200", KindNumber, "1.200"},
		{"negative number", "-3.5", KindNumber, "-3.5"},
		{"scientific notation", "1e3", KindNumber, "1e3"},
		{"comma decimal is text", "10,50", KindText, "10,50"},
		{"sku with leading digits is text", "123-ABC", KindText, "123-ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCell(tt.raw)
			if got.Kind != tt.wantKind {
				t.Errorf("NewCell(%q).Kind = %v, want %v", tt.raw, got.Kind, tt.wantKind)
			}
			if got.Text != tt.wantText {
				t.Errorf("NewCell(%q).Text = %q, want %q", tt.raw, got.Text, tt.wantText)
			}
		})
	}
}

func TestCellValue(t *testing.T) {
	if v := NullCell().Value(); v != nil {
		t.Errorf("NullCell().Value() = %v, want nil", v)
	}
	if v := NewCell("abc").Value(); v != "abc" {
		t.Errorf(`NewCell("abc").Value() = %v, want "abc"`, v)
	}
	if v := NewCell("10.50").Value(); v != "10.50" {
		t.Errorf(`NewCell("10.50").Value() = %v, want "10.50"`, v)
	}
}

func TestCellString(t *testing.T) {
	if s := NullCell().String(); s != "NULL" {
		t.Errorf("NullCell().String() = %q, want NULL", s)
	}
	if s := NewCell("abc").String(); s != "abc" {
		t.Errorf(`NewCell("abc").String() = %q, want "abc"`, s)
	}
}

func TestNewTablePadsShortRows(t *testing.T) {
	tbl := newTable(
		[]string{"a", "b"},
		[][]string{
			{"1", "2", "3"},
			{"4"},
		},
	)

	if len(tbl.Headers) != 3 {
		t.Fatalf("Headers = %v, want 3 entries", tbl.Headers)
	}
	if tbl.Headers[2] != "" {
		t.Errorf("padded header = %q, want empty", tbl.Headers[2])
	}

	for i, row := range tbl.Rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", i, len(row))
		}
	}
	if !tbl.Rows[1][1].IsNull() || !tbl.Rows[1][2].IsNull() {
		t.Errorf("short row padding should be null, got %v", tbl.Rows[1])
	}
}
