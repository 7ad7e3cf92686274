package quality

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"csvlens/domain/core"
	"csvlens/domain/report"
	"csvlens/domain/table"
	"csvlens/internal/eda"
)

const (
	highMissingPct        = 20.0
	highDuplicatePct      = 5.0
	highCardinalityRatio  = 0.9
	highMemoryMB          = 100.0
	maxNamedColumns       = 3
	maxSeverity           = 100.0
	memorySeverityCeiling = 20.0
)

// Reporter builds the aggregate data-quality report
type Reporter struct{}

// NewReporter creates a quality reporter
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report computes dataset-wide metrics, per-column quality facts, and a
// heuristic severity score in [0,100]. The score is an additive signal, not
// a calibrated statistic: independent checks each contribute a delta and an
// optional recommendation, folded together and clamped at the end.
func (r *Reporter) Report(path string, tbl *table.Table) *report.DataQualityOutput {
	totalRows, totalColumns := tbl.Shape()

	duplicates := duplicateRowCount(tbl)
	duplicatePct := 0.0
	if totalRows > 0 {
		duplicatePct = float64(duplicates) / float64(totalRows) * 100
	}

	memoryMB := float64(tbl.EstimatedBytes()) / 1024 / 1024
	missing := eda.MissingSummary(tbl)

	dtypes := make(map[string]string, totalColumns)
	columnQuality := make(map[string]report.ColumnQuality, totalColumns)
	for _, col := range tbl.Columns() {
		dtypes[col.Name] = string(col.DType)
		columnQuality[col.Name] = columnQualityFor(&col)
	}

	metrics := report.DataQualityMetrics{
		TotalRows:           totalRows,
		TotalColumns:        totalColumns,
		DuplicateRows:       duplicates,
		DuplicatePercentage: duplicatePct,
		MissingDataSummary:  missing,
		DataTypesSummary:    dtypes,
		MemoryUsageMB:       memoryMB,
	}

	score, recommendations := foldSeverity(
		checkHighMissing(tbl, missing, totalRows),
		checkDuplicates(duplicatePct),
		checkHighCardinality(tbl, columnQuality),
		checkMemory(memoryMB),
	)

	return &report.DataQualityOutput{
		Path:            path,
		Metrics:         metrics,
		ColumnQuality:   columnQuality,
		Recommendations: recommendations,
		SeverityScore:   score,
	}
}

// severityFinding is one heuristic check's contribution to the report
type severityFinding struct {
	delta          float64
	recommendation string
}

// foldSeverity sums independent findings and clamps the score to [0,100]
func foldSeverity(findings ...severityFinding) (float64, []string) {
	score := 0.0
	recommendations := []string{}
	for _, f := range findings {
		score += f.delta
		if f.recommendation != "" {
			recommendations = append(recommendations, f.recommendation)
		}
	}
	if score > maxSeverity {
		score = maxSeverity
	}
	return score, recommendations
}

// checkHighMissing adds 10 per column whose missing percentage exceeds 20
func checkHighMissing(tbl *table.Table, missing map[string]report.MissingValueSummary, totalRows int) severityFinding {
	var offenders []string
	for _, name := range tbl.ColumnNames() {
		if missing[name].Ratio*100 > highMissingPct {
			offenders = append(offenders, name)
		}
	}
	if len(offenders) == 0 {
		return severityFinding{}
	}
	return severityFinding{
		delta:          float64(len(offenders)) * 10,
		recommendation: fmt.Sprintf("High-missing columns (%d): %s", len(offenders), nameUpTo(offenders, maxNamedColumns)),
	}
}

// checkDuplicates adds the duplicate percentage itself once it exceeds 5%
func checkDuplicates(duplicatePct float64) severityFinding {
	if duplicatePct <= highDuplicatePct {
		return severityFinding{}
	}
	return severityFinding{
		delta:          duplicatePct,
		recommendation: fmt.Sprintf("High duplicate-row rate (%.1f%%): consider deduplicating", duplicatePct),
	}
}

// checkHighCardinality adds 5 per textual column with cardinality ratio > 0.9
func checkHighCardinality(tbl *table.Table, columnQuality map[string]report.ColumnQuality) severityFinding {
	var offenders []string
	for _, name := range tbl.ColumnNames() {
		if facts := columnQuality[name].Text; facts != nil && facts.CardinalityRatio > highCardinalityRatio {
			offenders = append(offenders, name)
		}
	}
	if len(offenders) == 0 {
		return severityFinding{}
	}
	return severityFinding{
		delta:          float64(len(offenders)) * 5,
		recommendation: fmt.Sprintf("High-cardinality columns: %s", nameUpTo(offenders, maxNamedColumns)),
	}
}

// checkMemory adds min(MB/10, 20) once the footprint exceeds 100 MB
func checkMemory(memoryMB float64) severityFinding {
	if memoryMB <= highMemoryMB {
		return severityFinding{}
	}
	delta := memoryMB / 10
	if delta > memorySeverityCeiling {
		delta = memorySeverityCeiling
	}
	return severityFinding{
		delta:          delta,
		recommendation: fmt.Sprintf("Large memory footprint (%.1f MB): consider optimizing", memoryMB),
	}
}

func nameUpTo(names []string, limit int) string {
	if len(names) > limit {
		names = names[:limit]
	}
	return strings.Join(names, ", ")
}

// columnQualityFor builds the per-column entry, reusing the descriptive
// summary and attaching the type-specific facts variant
func columnQualityFor(col *table.Column) report.ColumnQuality {
	summary := eda.SummarizeColumn(col)
	cq := report.ColumnQuality{
		DType:       summary.DType,
		NonNull:     summary.NonNull,
		Null:        summary.Null,
		UniqueCount: summary.Unique,
	}

	switch col.DType {
	case table.DTypeNumeric:
		cq.Numeric = numericFacts(col)
	case table.DTypeText:
		cq.Text = textFacts(col, summary)
	}
	return cq
}

func numericFacts(col *table.Column) *report.NumericColumnFacts {
	values, _ := col.FloatSeries()

	facts := &report.NumericColumnFacts{}
	for _, v := range values {
		if v == 0 {
			facts.ZeroCount++
		}
		if v < 0 {
			facts.NegativeCount++
		}
	}

	if len(values) > 0 {
		mean, _ := stats.Mean(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)
		facts.Mean = table.ScalarFloat(mean)
		facts.Min = table.ScalarFloat(min)
		facts.Max = table.ScalarFloat(max)
		if len(values) > 1 {
			std, _ := stats.StandardDeviationSample(values)
			facts.Std = table.ScalarFloat(std)
		}
	}
	return facts
}

func textFacts(col *table.Column, summary report.ColumnSummary) *report.TextColumnFacts {
	facts := &report.TextColumnFacts{}
	if mode, freq, ok := eda.Mode(col); ok {
		facts.MostFrequent = mode
		facts.MostFrequentCount = freq
	}
	if summary.NonNull > 0 {
		facts.CardinalityRatio = float64(summary.Unique) / float64(summary.NonNull)
	}
	return facts
}

// duplicateRowCount counts rows whose full cell sequence already appeared
func duplicateRowCount(tbl *table.Table) int {
	seen := make(map[core.RowHash]bool, tbl.NumRows())
	duplicates := 0
	for i := 0; i < tbl.NumRows(); i++ {
		var b strings.Builder
		for _, col := range tbl.Columns() {
			cell := col.Cells[i]
			if cell == nil {
				b.WriteByte(0x00)
			} else {
				b.WriteString(table.ValueKey(cell))
			}
			b.WriteByte(0x1f)
		}
		h := core.NewRowHash([]byte(b.String()))
		if seen[h] {
			duplicates++
		}
		seen[h] = true
	}
	return duplicates
}
