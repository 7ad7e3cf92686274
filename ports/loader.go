package ports

import "csvlens/domain/table"

// DatasetLoader reads a dataset file into a typed table. The path must
// already be resolved and sandbox-checked by the caller.
type DatasetLoader interface {
	Load(path string) (*table.Table, error)
}
