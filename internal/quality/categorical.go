package quality

import (
	"fmt"
	"math"

	"csvlens/domain/core"
	"csvlens/domain/report"
	"csvlens/domain/table"
	"csvlens/internal/eda"
)

const (
	highCardinalityCutoff = 50
	dominantShareCutoff   = 0.9
)

// CategoricalProfiler analyzes the frequency distribution of one column
type CategoricalProfiler struct{}

// NewCategoricalProfiler creates a categorical profiler
func NewCategoricalProfiler() *CategoricalProfiler {
	return &CategoricalProfiler{}
}

// Profile builds the value distribution of a column, its Shannon entropy,
// and heuristic recommendations. Nulls are dropped first.
func (p *CategoricalProfiler) Profile(path string, tbl *table.Table, column string) (*report.CategoricalAnalysisOutput, error) {
	col, ok := tbl.Column(column)
	if !ok {
		return nil, core.NewColumnNotFoundError(column)
	}

	counts := make(map[string]int)
	total := 0
	for _, cell := range col.Cells {
		if cell != nil {
			counts[table.ValueKey(cell)]++
			total++
		}
	}

	percentages := make(map[string]float64, len(counts))
	for k, c := range counts {
		percentages[k] = float64(c) / float64(total) * 100
	}

	mode, modeFreq, _ := eda.Mode(col)

	info := report.CategoricalInfo{
		UniqueCount:      len(counts),
		ValueCounts:      counts,
		ValuePercentages: percentages,
		Mode:             mode,
		ModeFrequency:    modeFreq,
		Entropy:          entropy(counts, total),
	}

	return &report.CategoricalAnalysisOutput{
		Path:            path,
		Column:          column,
		Info:            info,
		Recommendations: p.recommendations(info, total),
	}, nil
}

// entropy computes Shannon entropy in bits over the observed distribution
func entropy(counts map[string]int, total int) float64 {
	if total == 0 {
		return 0
	}
	h := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// recommendations evaluates each heuristic independently and concatenates
// whatever fires
func (p *CategoricalProfiler) recommendations(info report.CategoricalInfo, total int) []string {
	recs := []string{}
	if total == 0 {
		return recs
	}

	if info.UniqueCount > highCardinalityCutoff {
		recs = append(recs, fmt.Sprintf("High cardinality (%d unique values): consider consolidating categories", info.UniqueCount))
	}
	if float64(info.ModeFrequency)/float64(total) > dominantShareCutoff {
		recs = append(recs, "Dominant category present: watch for class imbalance")
	}
	if info.UniqueCount == total {
		recs = append(recs, "All values are distinct: possible identifier column")
	}
	return recs
}
