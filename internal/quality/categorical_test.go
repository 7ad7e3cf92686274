package quality

import (
	"errors"
	"math"
	"testing"

	"csvlens/domain/core"
	"csvlens/domain/table"
)

func textColumn(name string, values ...any) table.Column {
	return table.Column{Name: name, DType: table.DTypeText, Cells: values}
}

func TestProfileCountsAndMode(t *testing.T) {
	tbl := mustTable(t, []table.Column{
		textColumn("city", "oslo", "bergen", "oslo", nil, "oslo", "bergen"),
	})

	out, err := NewCategoricalProfiler().Profile("data.csv", tbl, "city")
	if err != nil {
		t.Fatal(err)
	}

	info := out.Info
	if info.UniqueCount != 2 {
		t.Errorf("expected 2 unique values, got %d", info.UniqueCount)
	}
	if info.ValueCounts["oslo"] != 3 || info.ValueCounts["bergen"] != 2 {
		t.Errorf("unexpected counts: %v", info.ValueCounts)
	}
	if math.Abs(info.ValuePercentages["oslo"]-60.0) > 1e-9 {
		t.Errorf("expected percentages over non-null values, got %v", info.ValuePercentages["oslo"])
	}
	if info.Mode != "oslo" || info.ModeFrequency != 3 {
		t.Errorf("expected mode oslo x3, got %s x%d", info.Mode, info.ModeFrequency)
	}
}

func TestProfileEntropy(t *testing.T) {
	tests := []struct {
		name  string
		cells []any
		want  float64
	}{
		{"single value", []any{"a", "a", "a"}, 0.0},
		{"uniform four-way", []any{"a", "b", "c", "d"}, 2.0},
		{"uniform two-way", []any{"a", "b", "a", "b"}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := mustTable(t, []table.Column{textColumn("c", tt.cells...)})
			out, err := NewCategoricalProfiler().Profile("data.csv", tbl, "c")
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(out.Info.Entropy-tt.want) > 1e-9 {
				t.Errorf("expected entropy %v, got %v", tt.want, out.Info.Entropy)
			}
		})
	}
}

func TestProfileRecommendations(t *testing.T) {
	t.Run("dominant category", func(t *testing.T) {
		cells := make([]any, 0, 20)
		for i := 0; i < 19; i++ {
			cells = append(cells, "a")
		}
		cells = append(cells, "b")
		tbl := mustTable(t, []table.Column{textColumn("c", cells...)})

		out, err := NewCategoricalProfiler().Profile("data.csv", tbl, "c")
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Recommendations) != 1 {
			t.Fatalf("expected one recommendation, got %v", out.Recommendations)
		}
	})

	t.Run("all distinct", func(t *testing.T) {
		tbl := mustTable(t, []table.Column{textColumn("c", "a", "b", "c")})
		out, err := NewCategoricalProfiler().Profile("data.csv", tbl, "c")
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Recommendations) != 1 {
			t.Fatalf("expected the identifier-column hint, got %v", out.Recommendations)
		}
	})

	t.Run("all null gives none", func(t *testing.T) {
		tbl := mustTable(t, []table.Column{textColumn("c", nil, nil)})
		out, err := NewCategoricalProfiler().Profile("data.csv", tbl, "c")
		if err != nil {
			t.Fatal(err)
		}
		if out.Recommendations == nil || len(out.Recommendations) != 0 {
			t.Errorf("expected empty non-nil recommendations, got %#v", out.Recommendations)
		}
		if out.Info.Entropy != 0 {
			t.Errorf("expected zero entropy, got %v", out.Info.Entropy)
		}
	})
}

func TestProfileMissingColumn(t *testing.T) {
	tbl := mustTable(t, []table.Column{textColumn("c", "a")})
	_, err := NewCategoricalProfiler().Profile("data.csv", tbl, "nope")
	if !errors.Is(err, core.ErrColumnNotFound) {
		t.Fatalf("expected column-not-found, got %v", err)
	}
}
