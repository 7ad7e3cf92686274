package eda

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"csvlens/domain/core"
	"csvlens/domain/report"
	"csvlens/domain/table"
)

// correlationFns maps method names to pairwise coefficient functions
var correlationFns = map[string]func(x, y []float64) float64{
	"pearson":  pearson,
	"spearman": spearman,
	"kendall":  kendall,
}

// CorrelationMatrix computes a symmetric correlation matrix over numeric
// columns. When columns is non-empty every requested name must be a numeric
// column already; otherwise the offending names are reported together.
// Coefficients that are undefined (zero variance in either series) are nil.
func (a *Analyzer) CorrelationMatrix(path string, tbl *table.Table, columns []string, method string) (*report.CorrelationMatrixOutput, error) {
	if _, ok := correlationFns[method]; !ok {
		return nil, core.NewUnsupportedMethodError(method)
	}

	numeric := make(map[string]*table.Column)
	var ordered []string
	for _, col := range tbl.Columns() {
		if col.IsNumeric() {
			c := col
			numeric[col.Name] = &c
			ordered = append(ordered, col.Name)
		}
	}

	selected := ordered
	if len(columns) > 0 {
		var offending []string
		for _, name := range columns {
			if _, ok := numeric[name]; !ok {
				offending = append(offending, name)
			}
		}
		if len(offending) > 0 {
			return nil, core.NewInvalidColumnsError(offending)
		}
		selected = columns
	}

	if len(selected) == 0 {
		return nil, core.ErrNoNumericColumns
	}

	matrix := make(map[string]map[string]any, len(selected))
	for _, name := range selected {
		matrix[name] = make(map[string]any, len(selected))
	}

	fn := correlationFns[method]
	for i, aName := range selected {
		for j := i; j < len(selected); j++ {
			bName := selected[j]
			coeff := pairCoefficient(numeric[aName], numeric[bName], fn)
			matrix[aName][bName] = coeff
			matrix[bName][aName] = coeff
		}
	}

	return &report.CorrelationMatrixOutput{
		Path:    path,
		Columns: selected,
		Method:  method,
		Matrix:  matrix,
	}, nil
}

// pairCoefficient computes one coefficient over pairwise-complete rows.
// The diagonal is 1.0 for nonzero-variance columns, nil otherwise.
func pairCoefficient(a, b *table.Column, fn func(x, y []float64) float64) any {
	var x, y []float64
	for i := range a.Cells {
		av, aok := a.Cells[i].(float64)
		bv, bok := b.Cells[i].(float64)
		if aok && bok {
			x = append(x, av)
			y = append(y, bv)
		}
	}

	if len(x) < 2 || isConstant(x) || isConstant(y) {
		return nil
	}
	if a == b {
		return 1.0
	}
	return table.ScalarFloat(fn(x, y))
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func pearson(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}

func spearman(x, y []float64) float64 {
	return stat.Correlation(ranks(x), ranks(y), nil)
}

func kendall(x, y []float64) float64 {
	return stat.Kendall(x, y, nil)
}

// ranks converts values to ranks, averaging ties
func ranks(data []float64) []float64 {
	n := len(data)
	type pair struct {
		value float64
		index int
	}
	pairs := make([]pair, n)
	for i, v := range data {
		pairs[i] = pair{value: v, index: i}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].value < pairs[j].value })

	out := make([]float64, n)
	i := 0
	for i < n {
		j := i + 1
		for j < n && pairs[j].value == pairs[i].value {
			j++
		}
		avgRank := float64(i+1) + float64(j-i-1)/2.0
		for k := i; k < j; k++ {
			out[pairs[k].index] = avgRank
		}
		i = j
	}
	return out
}
