// Package testkit generates deterministic synthetic CSV fixtures for tests.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// SalesGeneratorConfig configures the synthetic sales dataset generator
type SalesGeneratorConfig struct {
	RowCount     int
	MissingRate  float64
	OutlierRate  float64
	Regions      []string
	StartDate    time.Time
	Seed         int64
	PriceMean    float64
	PriceStdDev  float64
	OutlierScale float64
}

// DefaultSalesConfig returns sensible defaults for sales data generation
func DefaultSalesConfig() SalesGeneratorConfig {
	return SalesGeneratorConfig{
		RowCount:     200,
		MissingRate:  0.05,
		OutlierRate:  0.02,
		Regions:      []string{"north", "south", "east", "west"},
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Seed:         42,
		PriceMean:    50,
		PriceStdDev:  10,
		OutlierScale: 20,
	}
}

// SalesDataGenerator produces a synthetic sales table with controlled
// missingness and outliers. The same config always yields the same file.
type SalesDataGenerator struct {
	config SalesGeneratorConfig
	rng    *rand.Rand
}

// NewSalesDataGenerator creates a generator seeded from the config
func NewSalesDataGenerator(config SalesGeneratorConfig) *SalesDataGenerator {
	return &SalesDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Rows generates the header plus data rows. Columns cover every inferred
// dtype: order_id and region are text, price and units numeric, returned
// boolean, order_date a date.
func (g *SalesDataGenerator) Rows() [][]string {
	rows := make([][]string, 0, g.config.RowCount+1)
	rows = append(rows, []string{"order_id", "region", "price", "units", "returned", "order_date"})

	for i := 0; i < g.config.RowCount; i++ {
		price := g.config.PriceMean + g.rng.NormFloat64()*g.config.PriceStdDev
		if g.rng.Float64() < g.config.OutlierRate {
			price *= g.config.OutlierScale
		}

		row := []string{
			fmt.Sprintf("order_%04d", i+1),
			g.config.Regions[g.rng.Intn(len(g.config.Regions))],
			fmt.Sprintf("%.2f", price),
			fmt.Sprintf("%d", 1+g.rng.Intn(9)),
			fmt.Sprintf("%t", g.rng.Float64() < 0.1),
			g.config.StartDate.AddDate(0, 0, g.rng.Intn(90)).Format("2006-01-02"),
		}

		// order_id stays intact so the identifier column is never null
		for c := 1; c < len(row); c++ {
			if g.rng.Float64() < g.config.MissingRate {
				row[c] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV renders the generated rows to path
func (g *SalesDataGenerator) WriteCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create fixture directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fixture file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(g.Rows()); err != nil {
		return fmt.Errorf("write fixture rows: %w", err)
	}
	w.Flush()
	return w.Error()
}
