// Package eda implements the descriptive-statistics operations: dataset
// listing, previews, per-column summaries, missing-value accounting, the
// describe table, and correlation matrices.
package eda

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"csvlens/domain/report"
	"csvlens/domain/table"
)

// Analyzer computes descriptive statistics over loaded tables
type Analyzer struct{}

// NewAnalyzer creates a new descriptive-statistics analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// ListDatasets enumerates every .csv file under the root, recursively,
// returned as root-relative paths sorted lexicographically
func (a *Analyzer) ListDatasets(root string) (*report.ListDatasetsOutput, error) {
	datasets := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		datasets = append(datasets, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(datasets)

	return &report.ListDatasetsOutput{DataRoot: root, Datasets: datasets}, nil
}

// Preview returns the first n rows with nulls rendered as nil. When n
// exceeds the row count every row is returned; n <= 0 defaults to 5.
func (a *Analyzer) Preview(path string, tbl *table.Table, n int) *report.PreviewOutput {
	if n <= 0 {
		n = 5
	}
	if n > tbl.NumRows() {
		n = tbl.NumRows()
	}

	rows := make([]map[string]any, n)
	for i := 0; i < n; i++ {
		rows[i] = scalarRow(tbl, i)
	}

	return &report.PreviewOutput{
		Path:    path,
		NRows:   n,
		Columns: tbl.ColumnNames(),
		Rows:    rows,
	}
}

// ColumnInfo summarizes dtype and basic counts for every column
func (a *Analyzer) ColumnInfo(path string, tbl *table.Table) *report.ColumnInfoOutput {
	info := make(map[string]report.ColumnSummary, tbl.NumColumns())
	for _, col := range tbl.Columns() {
		info[col.Name] = SummarizeColumn(&col)
	}
	return &report.ColumnInfoOutput{Path: path, Columns: info}
}

// MissingValues summarizes missing counts and ratios per column
func (a *Analyzer) MissingValues(path string, tbl *table.Table) *report.MissingValuesOutput {
	return &report.MissingValuesOutput{
		Path:    path,
		Summary: MissingSummary(tbl),
		NRows:   tbl.NumRows(),
	}
}

// Describe computes the classic summary table, transposed so each column
// maps statistic name to value. Not-applicable statistics are nil rather
// than omitted.
func (a *Analyzer) Describe(path string, tbl *table.Table) *report.DescribeOutput {
	describe := make(map[string]map[string]any, tbl.NumColumns())
	for _, col := range tbl.Columns() {
		describe[col.Name] = describeColumn(&col)
	}

	rows, cols := tbl.Shape()
	return &report.DescribeOutput{
		Path:     path,
		Shape:    []int{rows, cols},
		Describe: describe,
	}
}

// scalarRow renders one row through the central scalar normalizer
func scalarRow(tbl *table.Table, i int) map[string]any {
	row := tbl.Row(i)
	out := make(map[string]any, len(row))
	for name, cell := range row {
		out[name] = table.Scalar(cell)
	}
	return out
}
