// Package report defines the immutable result records returned to callers.
// Every value in these records is a plain JSON-representable scalar; nothing
// here persists beyond the call that produced it.
package report

// ListDatasetsOutput lists the CSV files available under the data root
type ListDatasetsOutput struct {
	DataRoot string   `json:"data_root"`
	Datasets []string `json:"datasets"`
}

// PreviewOutput holds the first rows of a dataset
type PreviewOutput struct {
	Path    string           `json:"path"`
	NRows   int              `json:"n_rows"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// ColumnSummary holds dtype and basic counts for one column
type ColumnSummary struct {
	DType   string `json:"dtype"`
	NonNull int    `json:"non_null"`
	Null    int    `json:"null"`
	Unique  int    `json:"unique"`
}

// ColumnInfoOutput maps every column to its summary
type ColumnInfoOutput struct {
	Path    string                   `json:"path"`
	Columns map[string]ColumnSummary `json:"columns"`
}

// MissingValueSummary holds the missing count and ratio for one column
type MissingValueSummary struct {
	Missing int     `json:"missing"`
	Ratio   float64 `json:"ratio"`
}

// MissingValuesOutput summarizes missing values per column
type MissingValuesOutput struct {
	Path    string                         `json:"path"`
	Summary map[string]MissingValueSummary `json:"summary"`
	NRows   int                            `json:"n_rows"`
}

/// DescribeOutput holds the transposed describe table: per column, a map
// from statistic name to value, with nil marking not-applicable statistics
type DescribeOutput struct {
	Path     string                    `json:"path"`
	Shape    []int                     `json:"shape"`
	Describe map[string]map[string]any `json:"describe"`
}

// CorrelationMatrixOutput holds a symmetric correlation matrix keyed by
// column pairs; nil marks an undefined coefficient (zero variance)
type CorrelationMatrixOutput struct {
	Path    string                    `json:"path"`
	Columns []string                  `json:"columns"`
	Method  string                    `json:"method"`
	Matrix  map[string]map[string]any `json:"matrix"`
}

// Outlier is one flagged observation. RowIndex is the 0-based position of
// the observation in the source file's data rows (header excluded), not its
// position in the null-dropped series.
type Outlier struct {
	RowIndex int     `json:"index"`
	Value    float64 `json:"value"`
	Score    float64 `json:"score"`
	Method   string  `json:"method"`
}

// OutlierDetectionOutput holds the flagged points sorted by score descending,
// truncated to the top 20. TotalOutliers and OutlierPercentage cover all
// flagged points, not just the truncated list.
type OutlierDetectionOutput struct {
	Path              string             `json:"path"`
	Column            string             `json:"column"`
	Method            string             `json:"method"`
	TotalOutliers     int                `json:"total_outliers"`
	OutlierPercentage float64            `json:"outlier_percentage"`
	Outliers          []Outlier          `json:"outliers"`
	ThresholdInfo     map[string]float64 `json:"threshold_info"`
}

// CategoricalInfo describes the frequency distribution of one column
type CategoricalInfo struct {
	UniqueCount      int                `json:"unique_count"`
	ValueCounts      map[string]int     `json:"value_counts"`
	ValuePercentages map[string]float64 `json:"value_percentages"`
	Mode             string             `json:"mode"`
	ModeFrequency    int                `json:"mode_frequency"`
	Entropy          float64            `json:"entropy"`
}

// CategoricalAnalysisOutput is the categorical profiler's result
type CategoricalAnalysisOutput struct {
	Path            string          `json:"path"`
	Column          string          `json:"column"`
	Info            CategoricalInfo `json:"info"`
	Recommendations []string        `json:"recommendations"`
}

// DataQualityMetrics holds dataset-wide quality measurements
type DataQualityMetrics struct {
	TotalRows           int                            `json:"total_rows"`
	TotalColumns        int                            `json:"total_columns"`
	DuplicateRows       int                            `json:"duplicate_rows"`
	DuplicatePercentage float64                        `json:"duplicate_percentage"`
	MissingDataSummary  map[string]MissingValueSummary `json:"missing_data_summary"`
	DataTypesSummary    map[string]string              `json:"data_types_summary"`
	MemoryUsageMB       float64                        `json:"memory_usage_mb"`
}

/// ColumnQuality is the per-column quality entry: base counts plus
// type-specific facts as a tagged variant. Exactly one of Numeric and Text
// is set depending on the column's dtype; both nil for other dtypes.
type ColumnQuality struct {
	DType       string              `json:"data_type"`
	NonNull     int                 `json:"non_null_count"`
	Null        int                 `json:"null_count"`
	UniqueCount int                 `json:"unique_count"`
	Numeric     *NumericColumnFacts `json:"numeric,omitempty"`
	Text        *TextColumnFacts    `json:"text,omitempty"`
}

// NumericColumnFacts holds quality facts for numeric columns. Mean, Std,
// Min, and Max are nil when the column is entirely null.
type NumericColumnFacts struct {
	Mean          any `json:"mean"`
	Std           any `json:"std"`
	Min           any `json:"min"`
	Max           any `json:"max"`
	ZeroCount     int `json:"zero_count"`
	NegativeCount int `json:"negative_count"`
}

// TextColumnFacts holds quality facts for textual columns
type TextColumnFacts struct {
	MostFrequent      string  `json:"most_frequent"`
	MostFrequentCount int     `json:"most_frequent_count"`
	CardinalityRatio  float64 `json:"cardinality_ratio"`
}

// DataQualityOutput is the aggregate quality report. SeverityScore is a
// heuristic, additive signal in [0,100] - higher is worse - not a
// calibrated probability of anything.
type DataQualityOutput struct {
	Path            string                   `json:"path"`
	Metrics         DataQualityMetrics       `json:"metrics"`
	ColumnQuality   map[string]ColumnQuality `json:"column_quality"`
	Recommendations []string                 `json:"recommendations"`
	SeverityScore   float64                  `json:"severity_score"`
}

// ProcessedDataInfo describes what a remediation run changed
type ProcessedDataInfo struct {
	OriginalShape   []int    `json:"original_shape"`
	ProcessedShape  []int    `json:"processed_shape"`
	ChangesMade     []string `json:"changes_made"`
	AffectedColumns []string `json:"affected_columns"`
}

// ProcessedDataOutput is the remediator's result, including a 5-row preview
// of the processed table with nulls rendered as nil
type ProcessedDataOutput struct {
	Path     string            `json:"path"`
	Strategy string            `json:"strategy"`
	Info     ProcessedDataInfo `json:"info"`
	Preview  []map[string]any  `json:"processed_data_preview"`
}
