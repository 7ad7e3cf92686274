// Package csvfile reads a CSV file into the in-memory columnar table the
// analyzers operate on. Parsing follows encoding/csv defaults: comma
// delimiter, RFC 4180 quoting, first row treated as the header.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"csvlens/domain/core"
	"csvlens/domain/table"
)

// Reader loads CSV files as typed tables
type Reader struct{}

// NewReader creates a new CSV reader
func NewReader() *Reader {
	return &Reader{}
}

// Load reads the whole file, infers one scalar type per column, and returns
// the table. The file is read fully into memory; there are no size limits
// beyond what the filesystem imposes.
func (r *Reader) Load(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.NewNotFoundError(path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewParseError(path, err)
	}
	if len(records) == 0 {
		return nil, core.NewParseError(path, fmt.Errorf("no header row"))
	}

	headers := records[0]
	dataRows := records[1:]

	columns := make([]table.Column, len(headers))
	for col, header := range headers {
		raw := make([]string, len(dataRows))
		for row := range dataRows {
			raw[row] = strings.TrimSpace(dataRows[row][col])
		}

		dtype := inferDType(raw)
		cells := make([]any, len(raw))
		for row, value := range raw {
			cells[row] = parseCell(value, dtype)
		}
		columns[col] = table.Column{Name: header, DType: dtype, Cells: cells}
	}

	tbl, err := table.New(columns)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}
	return tbl, nil
}
