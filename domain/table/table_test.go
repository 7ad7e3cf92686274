package table

import (
	"math"
	"testing"
)

func numericColumn(name string, cells ...any) Column {
	return Column{Name: name, DType: DTypeNumeric, Cells: cells}
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New([]Column{
		numericColumn("a", 1.0, 2.0),
		numericColumn("b", 1.0),
	})
	if err == nil {
		t.Fatal("expected error for unequal column lengths")
	}
}

func TestCountsSumToRowCount(t *testing.T) {
	tbl, err := New([]Column{
		numericColumn("a", 1.0, nil, 3.0, nil),
		{Name: "b", DType: DTypeText, Cells: []any{"x", "y", nil, "x"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, col := range tbl.Columns() {
		if col.NonNullCount()+col.NullCount() != tbl.NumRows() {
			t.Errorf("column %q: non-null %d + null %d != rows %d",
				col.Name, col.NonNullCount(), col.NullCount(), tbl.NumRows())
		}
	}

	col, _ := tbl.Column("b")
	if col.UniqueCount() != 2 {
		t.Errorf("expected 2 distinct values in b, got %d", col.UniqueCount())
	}
}

func TestFloatSeriesKeepsOriginalRowIndices(t *testing.T) {
	col := numericColumn("a", nil, 10.0, nil, 30.0)
	values, rows := col.FloatSeries()

	if len(values) != 2 || values[0] != 10.0 || values[1] != 30.0 {
		t.Fatalf("unexpected values: %v", values)
	}
	if rows[0] != 1 || rows[1] != 3 {
		t.Errorf("expected original row indices [1 3], got %v", rows)
	}
}

func TestDropRows(t *testing.T) {
	tbl, _ := New([]Column{
		numericColumn("a", 1.0, 2.0, 3.0),
		{Name: "b", DType: DTypeText, Cells: []any{"x", "y", "z"}},
	})

	tbl.DropRows(map[int]bool{1: true})

	if tbl.NumRows() != 2 {
		t.Fatalf("expected 2 rows after drop, got %d", tbl.NumRows())
	}
	col, _ := tbl.Column("b")
	if col.Cells[0] != "x" || col.Cells[1] != "z" {
		t.Errorf("surviving rows changed: %v", col.Cells)
	}
}

func TestScalarNormalization(t *testing.T) {
	if Scalar(math.NaN()) != nil {
		t.Error("NaN should normalize to nil")
	}
	if Scalar(math.Inf(1)) != nil {
		t.Error("+Inf should normalize to nil")
	}
	if Scalar(nil) != nil {
		t.Error("nil should stay nil")
	}
	if Scalar(2.5) != 2.5 {
		t.Error("plain floats pass through")
	}
	if Scalar(3) != 3.0 {
		t.Error("ints become float64")
	}
}

func TestValueKeyRendering(t *testing.T) {
	if ValueKey(1.0) != "1" {
		t.Errorf("expected whole floats to render without decimals, got %q", ValueKey(1.0))
	}
	if ValueKey(2.5) != "2.5" {
		t.Errorf("got %q", ValueKey(2.5))
	}
	if ValueKey(true) != "true" {
		t.Errorf("got %q", ValueKey(true))
	}
}
