package quality

import (
	"errors"
	"strings"
	"testing"

	"csvlens/domain/core"
	"csvlens/domain/table"
)

func TestRemediateDropRemovesRowsAcrossAllColumns(t *testing.T) {
	tbl := mustTable(t, []table.Column{
		numericColumn("age", 30.0, nil, 40.0, nil),
		textColumn("city", "oslo", "bergen", "trondheim", "stavanger"),
	})

	out, err := NewRemediator().Remediate("data.csv", tbl, "drop", nil)
	if err != nil {
		t.Fatal(err)
	}

	if out.Info.OriginalShape[0] != 4 || out.Info.ProcessedShape[0] != 2 {
		t.Fatalf("expected 4 rows down to 2, got %v to %v", out.Info.OriginalShape, out.Info.ProcessedShape)
	}
	if len(out.Info.AffectedColumns) != 1 || out.Info.AffectedColumns[0] != "age" {
		t.Errorf("expected only age affected, got %v", out.Info.AffectedColumns)
	}
	if len(out.Preview) != 2 {
		t.Fatalf("expected a 2-row preview, got %d", len(out.Preview))
	}
	if out.Preview[0]["city"] != "oslo" || out.Preview[1]["city"] != "trondheim" {
		t.Errorf("expected surviving rows in order, got %v", out.Preview)
	}
	// source table untouched
	if tbl.NumRows() != 4 {
		t.Errorf("expected the input table unchanged, got %d rows", tbl.NumRows())
	}
}

func TestRemediateMeanFillsNumericOnly(t *testing.T) {
	tbl := mustTable(t, []table.Column{
		numericColumn("age", 20.0, nil, 40.0),
		textColumn("city", "oslo", nil, "bergen"),
	})

	out, err := NewRemediator().Remediate("data.csv", tbl, "mean", nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(out.Info.AffectedColumns) != 1 || out.Info.AffectedColumns[0] != "age" {
		t.Fatalf("expected mean to skip the text column, got %v", out.Info.AffectedColumns)
	}
	if out.Preview[1]["age"] != 30.0 {
		t.Errorf("expected the null filled with the mean 30, got %v", out.Preview[1]["age"])
	}
	if out.Preview[1]["city"] != nil {
		t.Errorf("expected the text null untouched, got %v", out.Preview[1]["city"])
	}
	if len(out.Info.ChangesMade) != 1 || !strings.Contains(out.Info.ChangesMade[0], "mean 30.00") {
		t.Errorf("unexpected change summary: %v", out.Info.ChangesMade)
	}
}

func TestRemediateMedian(t *testing.T) {
	tbl := mustTable(t, []table.Column{
		numericColumn("v", 1.0, 2.0, 100.0, nil),
	})

	out, err := NewRemediator().Remediate("data.csv", tbl, "median", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Preview[3]["v"] != 2.0 {
		t.Errorf("expected the null filled with the median 2, got %v", out.Preview[3]["v"])
	}
}

func TestRemediateModeKeepsCellType(t *testing.T) {
	tbl := mustTable(t, []table.Column{
		textColumn("city", "oslo", "oslo", "bergen", nil),
	})

	out, err := NewRemediator().Remediate("data.csv", tbl, "mode", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Preview[3]["city"] != "oslo" {
		t.Errorf("expected the null filled with the mode, got %v", out.Preview[3]["city"])
	}
}

func TestRemediateFillZeroAppliesToAnyDType(t *testing.T) {
	tbl := mustTable(t, []table.Column{
		numericColumn("v", 1.0, nil),
		textColumn("city", nil, "oslo"),
	})

	out, err := NewRemediator().Remediate("data.csv", tbl, "fill_zero", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Info.AffectedColumns) != 2 {
		t.Fatalf("expected both columns affected, got %v", out.Info.AffectedColumns)
	}
	if out.Preview[1]["v"] != 0.0 || out.Preview[0]["city"] != 0.0 {
		t.Errorf("expected zero fills, got %v", out.Preview)
	}
}

func TestRemediateTargetsLimitScope(t *testing.T) {
	tbl := mustTable(t, []table.Column{
		numericColumn("a", nil, 1.0),
		numericColumn("b", nil, 2.0),
	})

	out, err := NewRemediator().Remediate("data.csv", tbl, "fill_zero", []string{"a", "ghost"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Info.AffectedColumns) != 1 || out.Info.AffectedColumns[0] != "a" {
		t.Fatalf("expected only a touched, unknown targets skipped, got %v", out.Info.AffectedColumns)
	}
	if out.Preview[0]["b"] != nil {
		t.Errorf("expected b left alone, got %v", out.Preview[0]["b"])
	}
}

func TestRemediateCleanColumnNotReported(t *testing.T) {
	tbl := mustTable(t, []table.Column{
		numericColumn("a", 1.0, 2.0),
		numericColumn("b", nil, 2.0),
	})

	out, err := NewRemediator().Remediate("data.csv", tbl, "mean", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Info.AffectedColumns) != 1 || out.Info.AffectedColumns[0] != "b" {
		t.Errorf("expected only the column with missing values reported, got %v", out.Info.AffectedColumns)
	}
}

func TestRemediateUnknownStrategy(t *testing.T) {
	tbl := mustTable(t, []table.Column{numericColumn("v", 1.0)})
	_, err := NewRemediator().Remediate("data.csv", tbl, "interpolate", nil)
	if !errors.Is(err, core.ErrUnsupportedMethod) {
		t.Fatalf("expected unsupported-method, got %v", err)
	}
}
