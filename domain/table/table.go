// Package table holds the in-memory columnar representation every analyzer
// works on. A Table is loaded from one CSV, used for one operation, and
// discarded; nothing caches it across calls.
package table

import (
	"fmt"
	"time"
)

// DType labels the inferred scalar type of a column
type DType string

const (
	DTypeNumeric  DType = "numeric"
	DTypeText     DType = "text"
	DTypeBoolean  DType = "boolean"
	DTypeDatetime DType = "datetime"
)

// Column is one named column with a uniform inferred type.
// Cells hold float64, string, bool, or time.Time; nil marks a missing value.
type Column struct {
	Name  string
	DType DType
	Cells []any
}

// Table is an ordered sequence of equal-length columns
type Table struct {
	columns []Column
	names   map[string]int
}

// New builds a table, enforcing that all columns have equal length
func New(columns []Column) (*Table, error) {
	names := make(map[string]int, len(columns))
	for i, col := range columns {
		if i > 0 && len(col.Cells) != len(columns[0].Cells) {
			return nil, fmt.Errorf("column %q has %d cells, expected %d", col.Name, len(col.Cells), len(columns[0].Cells))
		}
		names[col.Name] = i
	}
	return &Table{columns: columns, names: names}, nil
}

// NumRows returns the row count
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].Cells)
}

// NumColumns returns the column count
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Shape returns (rows, columns)
func (t *Table) Shape() (int, int) {
	return t.NumRows(), t.NumColumns()
}

// Columns returns the columns in table order
func (t *Table) Columns() []Column {
	return t.columns
}

// ColumnNames returns the column names in table order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name
func (t *Table) Column(name string) (*Column, bool) {
	idx, ok := t.names[name]
	if !ok {
		return nil, false
	}
	return &t.columns[idx], true
}

// Row returns one row as a column-name-to-cell mapping
func (t *Table) Row(i int) map[string]any {
	row := make(map[string]any, len(t.columns))
	for _, col := range t.columns {
		row[col.Name] = col.Cells[i]
	}
	return row
}

// Clone deep-copies the table so remediation can mutate freely
func (t *Table) Clone() *Table {
	columns := make([]Column, len(t.columns))
	for i, col := range t.columns {
		cells := make([]any, len(col.Cells))
		copy(cells, col.Cells)
		columns[i] = Column{Name: col.Name, DType: col.DType, Cells: cells}
	}
	clone, _ := New(columns)
	return clone
}

// DropRows removes the given row indices from every column
func (t *Table) DropRows(indices map[int]bool) {
	for i := range t.columns {
		kept := t.columns[i].Cells[:0:0]
		for r, cell := range t.columns[i].Cells {
			if !indices[r] {
				kept = append(kept, cell)
			}
		}
		t.columns[i].Cells = kept
	}
}

// EstimatedBytes approximates the in-memory footprint of the table.
// Numeric and datetime cells count 8 bytes, booleans 1; text cells count the
// string header plus payload. An estimate, not an allocation measurement.
func (t *Table) EstimatedBytes() int64 {
	const stringHeader = 16
	var total int64
	for _, col := range t.columns {
		for _, cell := range col.Cells {
			switch v := cell.(type) {
			case nil:
				total += 8
			case float64:
				total += 8
			case time.Time:
				total += 8
			case bool:
				total++
			case string:
				total += stringHeader + int64(len(v))
			default:
				total += 8
			}
		}
	}
	return total
}

// IsNumeric reports whether the column holds numeric cells
func (c *Column) IsNumeric() bool {
	return c.DType == DTypeNumeric
}

// NonNullCount returns the number of present cells
func (c *Column) NonNullCount() int {
	count := 0
	for _, cell := range c.Cells {
		if cell != nil {
			count++
		}
	}
	return count
}

// NullCount returns the number of missing cells
func (c *Column) NullCount() int {
	return len(c.Cells) - c.NonNullCount()
}

// UniqueCount returns the number of distinct non-null values
func (c *Column) UniqueCount() int {
	seen := make(map[string]bool)
	for _, cell := range c.Cells {
		if cell != nil {
			seen[ValueKey(cell)] = true
		}
	}
	return len(seen)
}

// FloatSeries returns the column's non-null values as float64 together with
// their original row indices. Non-numeric cells are skipped.
func (c *Column) FloatSeries() (values []float64, rows []int) {
	for i, cell := range c.Cells {
		if f, ok := cell.(float64); ok {
			values = append(values, f)
			rows = append(rows, i)
		}
	}
	return values, rows
}

