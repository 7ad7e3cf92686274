package eda

import (
	"sort"

	"github.com/montanaflynn/stats"

	"csvlens/domain/report"
	"csvlens/domain/table"
)

// describeStats is the union stat set emitted for every column
var describeStats = []string{"count", "unique", "top", "freq", "mean", "std", "min", "25%", "50%", "75%", "max"}

// SummarizeColumn computes the dtype label and basic counts for one column.
// The quality aggregator reuses this rather than recounting.
func SummarizeColumn(col *table.Column) report.ColumnSummary {
	return report.ColumnSummary{
		DType:   string(col.DType),
		NonNull: col.NonNullCount(),
		Null:    col.NullCount(),
		Unique:  col.UniqueCount(),
	}
}

// MissingSummary computes per-column missing counts and ratios. The ratio is
// 0.0 for an empty table rather than a division by zero.
func MissingSummary(tbl *table.Table) map[string]report.MissingValueSummary {
	totalRows := tbl.NumRows()
	summary := make(map[string]report.MissingValueSummary, tbl.NumColumns())
	for _, col := range tbl.Columns() {
		missing := col.NullCount()
		ratio := 0.0
		if totalRows > 0 {
			ratio = float64(missing) / float64(totalRows)
		}
		summary[col.Name] = report.MissingValueSummary{Missing: missing, Ratio: ratio}
	}
	return summary
}

// Mode returns the most frequent non-null value key and its count. Ties
// break toward the smaller key so results are deterministic. ok is false
// when the column has no non-null values.
func Mode(col *table.Column) (key string, count int, ok bool) {
	freq := make(map[string]int)
	for _, cell := range col.Cells {
		if cell != nil {
			freq[table.ValueKey(cell)]++
		}
	}
	if len(freq) == 0 {
		return "", 0, false
	}

	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if freq[k] > count {
			key = k
			count = freq[k]
		}
	}
	return key, count, true
}

// describeColumn emits the union stat set for one column, nil where a
// statistic does not apply to the column's type
func describeColumn(col *table.Column) map[string]any {
	out := make(map[string]any, len(describeStats))
	for _, name := range describeStats {
		out[name] = nil
	}
	out["count"] = col.NonNullCount()
	out["unique"] = col.UniqueCount()

	if col.IsNumeric() {
		values, _ := col.FloatSeries()
		if len(values) == 0 {
			return out
		}
		mean, _ := stats.Mean(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)
		q1, _ := stats.Percentile(values, 25)
		q2, _ := stats.Percentile(values, 50)
		q3, _ := stats.Percentile(values, 75)

		out["mean"] = table.ScalarFloat(mean)
		out["min"] = table.ScalarFloat(min)
		out["max"] = table.ScalarFloat(max)
		out["25%"] = table.ScalarFloat(q1)
		out["50%"] = table.ScalarFloat(q2)
		out["75%"] = table.ScalarFloat(q3)
		if len(values) > 1 {
			std, _ := stats.StandardDeviationSample(values)
			out["std"] = table.ScalarFloat(std)
		}
		return out
	}

	if mode, freq, ok := Mode(col); ok {
		out["top"] = mode
		out["freq"] = freq
	}
	return out
}
