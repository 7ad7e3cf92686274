package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"csvlens/adapters/csvfile"
	"csvlens/adapters/isoforest"
	"csvlens/domain/core"
	"csvlens/internal"
	"csvlens/internal/sandbox"
	"csvlens/internal/testkit"
)

func newService(t *testing.T, root string) *AnalysisService {
	t.Helper()
	resolver, err := sandbox.NewResolver(root)
	require.NoError(t, err)
	logger := internal.NewLogger(internal.LogLevelError)
	return NewAnalysisService(resolver, csvfile.NewReader(), isoforest.NewForest(0.1, 42), logger, 5)
}

func TestServiceEndToEnd(t *testing.T) {
	root, rel := testkit.DefaultFixture(t)
	svc := newService(t, root)

	listed, err := svc.ListDatasets()
	require.NoError(t, err)
	require.Equal(t, []string{rel}, listed.Datasets)

	preview, err := svc.Preview(rel, 0)
	require.NoError(t, err)
	require.Equal(t, 5, preview.NRows, "zero rows falls back to the configured default")
	require.Equal(t, rel, preview.Path, "results report the requested path, not the resolved one")

	info, err := svc.ColumnInfo(rel)
	require.NoError(t, err)
	require.Equal(t, "numeric", info.Columns["price"].DType)
	require.Equal(t, "text", info.Columns["region"].DType)
	require.Equal(t, "boolean", info.Columns["returned"].DType)
	require.Equal(t, "datetime", info.Columns["order_date"].DType)

	missing, err := svc.MissingValues(rel)
	require.NoError(t, err)
	require.Zero(t, missing.Summary["order_id"].Missing, "order_id is never blanked by the generator")

	_, err = svc.Describe(rel)
	require.NoError(t, err)

	corr, err := svc.CorrelationMatrix(rel, nil, "pearson")
	require.NoError(t, err)
	require.Equal(t, 1.0, corr.Matrix["price"]["price"])

	cats, err := svc.AnalyzeCategorical(rel, "region")
	require.NoError(t, err)
	require.Equal(t, 4, cats.Info.UniqueCount)

	quality, err := svc.DataQualityReport(rel)
	require.NoError(t, err)
	require.Equal(t, 200, quality.Metrics.TotalRows)

	processed, err := svc.HandleMissingData(rel, "drop", nil)
	require.NoError(t, err)
	require.Less(t, processed.Info.ProcessedShape[0], processed.Info.OriginalShape[0],
		"dropping rows with missing values must shrink the fixture")
}

func TestServiceDetectsInjectedOutliers(t *testing.T) {
	config := testkit.DefaultSalesConfig()
	config.RowCount = 300
	config.OutlierRate = 0.1
	root, rel := testkit.Fixture(t, config)
	svc := newService(t, root)

	for _, method := range []string{"iqr", "zscore", "isolation_forest"} {
		out, err := svc.DetectOutliers(rel, "price", method)
		require.NoError(t, err, method)
		require.NotZero(t, out.TotalOutliers, "%s: fixture injects price outliers at 10%%", method)
		require.LessOrEqual(t, len(out.Outliers), 20, "%s: reported list is capped", method)
	}
}

func TestServiceRejectsEscapingPaths(t *testing.T) {
	root, _ := testkit.DefaultFixture(t)
	svc := newService(t, root)

	_, err := svc.Preview("../outside.csv", 5)
	require.Error(t, err)
	require.True(t, core.IsSandboxViolation(err) || core.IsNotFoundError(err), "got %v", err)

	_, err = svc.Preview("ghost.csv", 5)
	require.True(t, core.IsNotFoundError(err), "got %v", err)
}
