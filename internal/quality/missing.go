package quality

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"csvlens/domain/core"
	"csvlens/domain/report"
	"csvlens/domain/table"
	"csvlens/internal/eda"
)

const remediationPreviewRows = 5

// Remediator applies a missing-data strategy column by column and reports
// what changed
type Remediator struct{}

// NewRemediator creates a remediator
func NewRemediator() *Remediator {
	return &Remediator{}
}

var remediationStrategies = map[string]bool{
	"drop":      true,
	"mean":      true,
	"median":    true,
	"mode":      true,
	"fill_zero": true,
}

// Remediate applies strategy to the target columns (all columns when targets
// is empty) and returns the processed table alongside a change summary.
// Unknown target names are skipped; columns with no missing values are left
// untouched and do not appear in the change summary.
func (r *Remediator) Remediate(path string, tbl *table.Table, strategy string, targets []string) (*report.ProcessedDataOutput, error) {
	if !remediationStrategies[strategy] {
		return nil, core.NewUnsupportedMethodError(strategy)
	}

	origRows, origCols := tbl.Shape()
	work := tbl.Clone()

	if len(targets) == 0 {
		targets = tbl.ColumnNames()
	}

	var changes []string
	var affected []string
	for _, name := range targets {
		col, ok := work.Column(name)
		if !ok {
			continue
		}
		missing := col.NullCount()
		if missing == 0 {
			continue
		}

		change, ok := applyStrategy(work, col, strategy, missing)
		if !ok {
			continue
		}
		changes = append(changes, change)
		affected = append(affected, name)
	}

	procRows, procCols := work.Shape()
	return &report.ProcessedDataOutput{
		Path:     path,
		Strategy: strategy,
		Info: report.ProcessedDataInfo{
			OriginalShape:   []int{origRows, origCols},
			ProcessedShape:  []int{procRows, procCols},
			ChangesMade:     changes,
			AffectedColumns: affected,
		},
		Preview: previewRows(work, remediationPreviewRows),
	}, nil
}

// applyStrategy mutates work in place for one column. It reports false when
// the strategy does not apply, e.g. mean on a text column.
func applyStrategy(work *table.Table, col *table.Column, strategy string, missing int) (string, bool) {
	switch strategy {
	case "drop":
		dropped := dropMissingRows(work, col)
		return fmt.Sprintf("%s: dropped %d rows with missing values", col.Name, dropped), true

	case "mean":
		values, _ := col.FloatSeries()
		if !col.IsNumeric() || len(values) == 0 {
			return "", false
		}
		mean, _ := stats.Mean(values)
		fillCells(col, mean)
		return fmt.Sprintf("%s: filled %d missing values with mean %.2f", col.Name, missing, mean), true

	case "median":
		values, _ := col.FloatSeries()
		if !col.IsNumeric() || len(values) == 0 {
			return "", false
		}
		median, _ := stats.Median(values)
		fillCells(col, median)
		return fmt.Sprintf("%s: filled %d missing values with median %.2f", col.Name, missing, median), true

	case "mode":
		value, ok := modeValue(col)
		if !ok {
			return "", false
		}
		fillCells(col, value)
		return fmt.Sprintf("%s: filled %d missing values with mode %v", col.Name, missing, table.Scalar(value)), true

	case "fill_zero":
		fillCells(col, 0.0)
		return fmt.Sprintf("%s: filled %d missing values with 0", col.Name, missing), true
	}
	return "", false
}

// dropMissingRows removes every row where col is null. Drops are cumulative
// across target columns, so later columns see the already-shrunk table.
func dropMissingRows(work *table.Table, col *table.Column) int {
	indices := make(map[int]bool)
	for i, cell := range col.Cells {
		if cell == nil {
			indices[i] = true
		}
	}
	work.DropRows(indices)
	return len(indices)
}

func fillCells(col *table.Column, value any) {
	for i, cell := range col.Cells {
		if cell == nil {
			col.Cells[i] = value
		}
	}
}

// modeValue returns the most frequent non-null cell value, preserving the
// cell's original type so the fill does not change the column's dtype
func modeValue(col *table.Column) (any, bool) {
	key, _, ok := eda.Mode(col)
	if !ok {
		return nil, false
	}
	for _, cell := range col.Cells {
		if cell != nil && table.ValueKey(cell) == key {
			return cell, true
		}
	}
	return nil, false
}

func previewRows(tbl *table.Table, n int) []map[string]any {
	if n > tbl.NumRows() {
		n = tbl.NumRows()
	}
	preview := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		row := make(map[string]any, tbl.NumColumns())
		for _, col := range tbl.Columns() {
			row[col.Name] = table.Scalar(col.Cells[i])
		}
		preview = append(preview, row)
	}
	return preview
}
