package reader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned when the requested source encoding is not
// one of the supported names.
var ErrUnknownEncoding = errors.New("unknown source encoding")

// delimiterCandidates are tried in order during sniffing; comma wins ties.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// sniffBufferSize bounds how much of the file the delimiter sniffer may
// inspect without consuming it.
const sniffBufferSize = 64 * 1024

func readCSV(path string, encodingName string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var src io.Reader = f
	dec, err := decoderFor(encodingName)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		src = transform.NewReader(f, dec)
	}

	br := bufio.NewReaderSize(src, sniffBufferSize)
	delim, err := sniffDelimiter(br)
	if err != nil {
		return nil, fmt.Errorf("failed to detect delimiter: %w", err)
	}

	r := csv.NewReader(br)
	r.Comma = delim
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return newTable(records[0], records[1:]), nil
}

// decoderFor maps an encoding name to a charmap decoder. A nil decoder
// means bytes are passed through unchanged.
func decoderFor(name string) (*encoding.Decoder, error) {
	switch name {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// sniffDelimiter inspects the buffered first line (without consuming it)
// and picks the candidate delimiter with the most occurrences outside
// quoted sections. Comma- and semicolon-delimited files both parse without
// manual configuration this way.
func sniffDelimiter(br *bufio.Reader) (rune, error) {
	sample, err := br.Peek(sniffBufferSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, err
	}

	// Only the header line matters; a delimiter that never appears in it
	// cannot be the column separator.
	line := sample
	for i, b := range sample {
		if b == '\n' {
			line = sample[:i]
			break
		}
	}

	counts := make(map[rune]int, len(delimiterCandidates))
	inQuotes := false
	for _, b := range line {
		switch {
		case b == '"':
			inQuotes = !inQuotes
		case !inQuotes:
			for _, cand := range delimiterCandidates {
				if rune(b) == cand {
					counts[cand]++
				}
			}
		}
	}

	best := ','
	bestCount := 0
	for _, cand := range delimiterCandidates {
		if counts[cand] > bestCount {
			best = cand
			bestCount = counts[cand]
		}
	}
	return best, nil
}
