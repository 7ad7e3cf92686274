// Package app wires the sandbox, the CSV loader, and the analysis components
// into one service exposing the analysis operations.
package app

import (
	"time"

	"csvlens/domain/core"
	"csvlens/domain/report"
	"csvlens/domain/table"
	"csvlens/internal"
	"csvlens/internal/eda"
	"csvlens/internal/quality"
	"csvlens/internal/sandbox"
	"csvlens/ports"
)

// AnalysisService orchestrates every analysis operation: it resolves the
// user-supplied path inside the sandbox, loads the table, and delegates to
// the matching analyzer. Each call gets a request ID that tags its log lines.
type AnalysisService struct {
	resolver    *sandbox.Resolver
	loader      ports.DatasetLoader
	analyzer    *eda.Analyzer
	detector    *quality.OutlierDetector
	profiler    *quality.CategoricalProfiler
	reporter    *quality.Reporter
	remediator  *quality.Remediator
	logger      *internal.Logger
	previewRows int
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(resolver *sandbox.Resolver, loader ports.DatasetLoader, scorer ports.AnomalyScorer, logger *internal.Logger, previewRows int) *AnalysisService {
	return &AnalysisService{
		resolver:    resolver,
		loader:      loader,
		analyzer:    eda.NewAnalyzer(),
		detector:    quality.NewOutlierDetector(scorer),
		profiler:    quality.NewCategoricalProfiler(),
		reporter:    quality.NewReporter(),
		remediator:  quality.NewRemediator(),
		logger:      logger,
		previewRows: previewRows,
	}
}

// load resolves path inside the sandbox and reads it into a table
func (s *AnalysisService) load(log *internal.Logger, path string) (*table.Table, error) {
	resolved, err := s.resolver.Resolve(path)
	if err != nil {
		log.Warn("resolve %s: %v", path, err)
		return nil, err
	}
	tbl, err := s.loader.Load(resolved)
	if err != nil {
		log.Warn("load %s: %v", path, err)
		return nil, err
	}
	rows, cols := tbl.Shape()
	log.Debug("loaded %s: %d rows, %d columns", path, rows, cols)
	return tbl, nil
}

func (s *AnalysisService) begin(operation string) (*internal.Logger, time.Time) {
	log := s.logger.WithPrefix(string(core.NewRequestID()))
	log.Info("%s requested", operation)
	return log, time.Now()
}

func (s *AnalysisService) done(log *internal.Logger, operation string, start time.Time) {
	log.Info("%s completed in %s", operation, time.Since(start).Round(time.Millisecond))
}

// ListDatasets walks the data root for CSV files
func (s *AnalysisService) ListDatasets() (*report.ListDatasetsOutput, error) {
	log, start := s.begin("list_datasets")
	out, err := s.analyzer.ListDatasets(s.resolver.Root())
	if err != nil {
		return nil, err
	}
	s.done(log, "list_datasets", start)
	return out, nil
}

// Preview returns the first n rows of a dataset
func (s *AnalysisService) Preview(path string, n int) (*report.PreviewOutput, error) {
	log, start := s.begin("preview")
	tbl, err := s.load(log, path)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = s.previewRows
	}
	out := s.analyzer.Preview(path, tbl, n)
	s.done(log, "preview", start)
	return out, nil
}

// ColumnInfo summarizes every column's dtype and counts
func (s *AnalysisService) ColumnInfo(path string) (*report.ColumnInfoOutput, error) {
	log, start := s.begin("column_info")
	tbl, err := s.load(log, path)
	if err != nil {
		return nil, err
	}
	out := s.analyzer.ColumnInfo(path, tbl)
	s.done(log, "column_info", start)
	return out, nil
}

// MissingValues reports missing counts and ratios per column
func (s *AnalysisService) MissingValues(path string) (*report.MissingValuesOutput, error) {
	log, start := s.begin("missing_values")
	tbl, err := s.load(log, path)
	if err != nil {
		return nil, err
	}
	out := s.analyzer.MissingValues(path, tbl)
	s.done(log, "missing_values", start)
	return out, nil
}

// Describe computes descriptive statistics per column
func (s *AnalysisService) Describe(path string) (*report.DescribeOutput, error) {
	log, start := s.begin("describe")
	tbl, err := s.load(log, path)
	if err != nil {
		return nil, err
	}
	out := s.analyzer.Describe(path, tbl)
	s.done(log, "describe", start)
	return out, nil
}

// CorrelationMatrix computes pairwise correlations over numeric columns
func (s *AnalysisService) CorrelationMatrix(path string, columns []string, method string) (*report.CorrelationMatrixOutput, error) {
	log, start := s.begin("correlation_matrix")
	tbl, err := s.load(log, path)
	if err != nil {
		return nil, err
	}
	out, err := s.analyzer.CorrelationMatrix(path, tbl, columns, method)
	if err != nil {
		log.Warn("correlation_matrix %s: %v", path, err)
		return nil, err
	}
	s.done(log, "correlation_matrix", start)
	return out, nil
}

// DetectOutliers flags outliers in one numeric column
func (s *AnalysisService) DetectOutliers(path, column, method string) (*report.OutlierDetectionOutput, error) {
	log, start := s.begin("detect_outliers")
	tbl, err := s.load(log, path)
	if err != nil {
		return nil, err
	}
	out, err := s.detector.Detect(path, tbl, column, method)
	if err != nil {
		log.Warn("detect_outliers %s[%s]: %v", path, column, err)
		return nil, err
	}
	s.done(log, "detect_outliers", start)
	return out, nil
}

// AnalyzeCategorical profiles the value distribution of one column
func (s *AnalysisService) AnalyzeCategorical(path, column string) (*report.CategoricalAnalysisOutput, error) {
	log, start := s.begin("analyze_categorical")
	tbl, err := s.load(log, path)
	if err != nil {
		return nil, err
	}
	out, err := s.profiler.Profile(path, tbl, column)
	if err != nil {
		log.Warn("analyze_categorical %s[%s]: %v", path, column, err)
		return nil, err
	}
	s.done(log, "analyze_categorical", start)
	return out, nil
}

// DataQualityReport builds the aggregate quality report
func (s *AnalysisService) DataQualityReport(path string) (*report.DataQualityOutput, error) {
	log, start := s.begin("data_quality_report")
	tbl, err := s.load(log, path)
	if err != nil {
		return nil, err
	}
	out := s.reporter.Report(path, tbl)
	s.done(log, "data_quality_report", start)
	return out, nil
}

// HandleMissingData applies a remediation strategy and reports the changes
func (s *AnalysisService) HandleMissingData(path, strategy string, columns []string) (*report.ProcessedDataOutput, error) {
	log, start := s.begin("handle_missing_data")
	tbl, err := s.load(log, path)
	if err != nil {
		return nil, err
	}
	out, err := s.remediator.Remediate(path, tbl, strategy, columns)
	if err != nil {
		log.Warn("handle_missing_data %s: %v", path, err)
		return nil, err
	}
	s.done(log, "handle_missing_data", start)
	return out, nil
}
