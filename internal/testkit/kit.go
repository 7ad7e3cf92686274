package testkit

import (
	"path/filepath"
	"testing"
)

// Fixture writes a synthetic sales CSV under a fresh temp directory and
// returns the directory and the file's relative path. The directory doubles
// as the sandbox root in service-level tests.
func Fixture(t *testing.T, config SalesGeneratorConfig) (root, rel string) {
	t.Helper()
	root = t.TempDir()
	rel = "sales.csv"
	if err := NewSalesDataGenerator(config).WriteCSV(filepath.Join(root, rel)); err != nil {
		t.Fatal(err)
	}
	return root, rel
}

// DefaultFixture writes a fixture with the default config
func DefaultFixture(t *testing.T) (root, rel string) {
	t.Helper()
	return Fixture(t, DefaultSalesConfig())
}
