package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Load reads a comma-separated file into a table of string cells.
// Every column in wantHeader must be present in the file header, any
// order; extra columns are loaded too and dropped later by Normalize.
// Empty cells load as Missing. Typing happens in Normalize.
func Load(path string, wantHeader []string) (*Table, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0655)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f, wantHeader, path)
}

func read(f io.Reader, wantHeader []string, name string) (*Table, error) {
	r := csv.NewReader(f)
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, &ParseError{Field: "header", Value: name, Reason: "cannot read header row: " + err.Error()}
	}
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	for _, want := range wantHeader {
		if !have[want] {
			return nil, &ParseError{Field: "header", Value: want, Reason: "expected column missing from " + name}
		}
	}

	t := New(header...)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Field: "row", Value: name, Reason: err.Error()}
		}
		row := make(Row, len(record))
		for i, cell := range record {
			if cell == "" {
				row[i] = Missing
			} else {
				row[i] = Str(cell)
			}
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}
