// Package quality implements outlier detection, categorical profiling, the
// aggregate data-quality report, and missing-value remediation.
package quality

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"csvlens/domain/core"
	"csvlens/domain/report"
	"csvlens/domain/table"
	"csvlens/ports"
)

const (
	// maxReportedOutliers bounds the outlier list in the result; totals and
	// percentages still cover every flagged point
	maxReportedOutliers = 20

	zscoreThreshold = 3.0
	iqrFenceFactor  = 1.5
	contamination   = 0.1
)

// OutlierDetector runs one of three interchangeable detection strategies
// over a numeric column
type OutlierDetector struct {
	scorer ports.AnomalyScorer
}

// NewOutlierDetector creates a detector backed by the given anomaly scorer
// for the isolation_forest strategy
func NewOutlierDetector(scorer ports.AnomalyScorer) *OutlierDetector {
	return &OutlierDetector{scorer: scorer}
}

// Detect flags outliers in a numeric column. Reported indices are original
// row positions; the returned list is the top 20 by score descending while
// the totals cover every flagged point.
func (d *OutlierDetector) Detect(path string, tbl *table.Table, column, method string) (*report.OutlierDetectionOutput, error) {
	col, ok := tbl.Column(column)
	if !ok {
		return nil, core.NewColumnNotFoundError(column)
	}
	if !col.IsNumeric() {
		return nil, core.NewNonNumericColumnError(column)
	}

	values, rows := col.FloatSeries()

	var outliers []report.Outlier
	var thresholds map[string]float64

	switch method {
	case "iqr":
		outliers, thresholds = d.detectIQR(values, rows, method)
	case "zscore":
		outliers, thresholds = d.detectZScore(values, rows, method)
	case "isolation_forest":
		outliers, thresholds = d.detectIsolation(values, rows, method)
	default:
		return nil, core.NewUnsupportedMethodError(method)
	}

	sort.SliceStable(outliers, func(i, j int) bool { return outliers[i].Score > outliers[j].Score })

	total := len(outliers)
	percentage := 0.0
	if len(values) > 0 {
		percentage = float64(total) / float64(len(values)) * 100
	}
	if total > maxReportedOutliers {
		outliers = outliers[:maxReportedOutliers]
	}

	return &report.OutlierDetectionOutput{
		Path:              path,
		Column:            column,
		Method:            method,
		TotalOutliers:     total,
		OutlierPercentage: percentage,
		Outliers:          outliers,
		ThresholdInfo:     thresholds,
	}, nil
}

// detectIQR fences values at [Q1 - 1.5*IQR, Q3 + 1.5*IQR]; the score is the
// distance to the nearer fence
func (d *OutlierDetector) detectIQR(values []float64, rows []int, method string) ([]report.Outlier, map[string]float64) {
	if len(values) == 0 {
		return nil, map[string]float64{}
	}

	q1, _ := stats.Percentile(values, 25)
	q3, _ := stats.Percentile(values, 75)
	iqr := q3 - q1
	lower := q1 - iqrFenceFactor*iqr
	upper := q3 + iqrFenceFactor*iqr

	thresholds := map[string]float64{
		"Q1":          q1,
		"Q3":          q3,
		"IQR":         iqr,
		"lower_bound": lower,
		"upper_bound": upper,
	}

	var outliers []report.Outlier
	for i, v := range values {
		if v < lower || v > upper {
			score := math.Min(math.Abs(v-lower), math.Abs(v-upper))
			outliers = append(outliers, report.Outlier{RowIndex: rows[i], Value: v, Score: score, Method: method})
		}
	}
	return outliers, thresholds
}

// detectZScore flags |z| > 3 using the population standard deviation
func (d *OutlierDetector) detectZScore(values []float64, rows []int, method string) ([]report.Outlier, map[string]float64) {
	thresholds := map[string]float64{"threshold": zscoreThreshold}
	if len(values) == 0 {
		return nil, thresholds
	}

	mean, _ := stats.Mean(values)
	std, _ := stats.StandardDeviationPopulation(values)
	if std == 0 {
		return nil, thresholds
	}

	var outliers []report.Outlier
	for i, v := range values {
		z := math.Abs(v-mean) / std
		if z > zscoreThreshold {
			outliers = append(outliers, report.Outlier{RowIndex: rows[i], Value: v, Score: z, Method: method})
		}
	}
	return outliers, thresholds
}

// detectIsolation delegates to the anomaly scorer and keeps its labeled
// points, ranked by its non-negative anomaly score
func (d *OutlierDetector) detectIsolation(values []float64, rows []int, method string) ([]report.Outlier, map[string]float64) {
	thresholds := map[string]float64{"contamination": contamination}
	if len(values) == 0 {
		return nil, thresholds
	}

	labels, scores := d.scorer.ScoreAnomalies(values)

	var outliers []report.Outlier
	for i := range values {
		if labels[i] {
			outliers = append(outliers, report.Outlier{RowIndex: rows[i], Value: values[i], Score: math.Abs(scores[i]), Method: method})
		}
	}
	return outliers, thresholds
}
