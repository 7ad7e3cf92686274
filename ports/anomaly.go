// Package ports defines the capability interfaces the analysis core depends
// on, keeping concrete implementations out of the statistical code.
package ports

// AnomalyScorer scores a numeric series for anomalies. Implementations must
// be deterministic for a given input: labels[i] is true when values[i] is
// flagged as an outlier, and scores[i] is a non-negative anomaly score where
// higher means more anomalous.
type AnomalyScorer interface {
	ScoreAnomalies(values []float64) (labels []bool, scores []float64)
}
