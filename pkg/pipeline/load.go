package pipeline

import (
	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/io"
)

// LoadCatalog returns the catalog at path, or the builtin catalog when path
// is empty.
func LoadCatalog(path string) (*circuit.Catalog, error) {
	if path == "" {
		return circuit.Builtin(), nil
	}
	return circuit.LoadCatalog(path)
}

// Load reads the operator at opPath and the catalog at catalogPath.
func Load(opPath, catalogPath string) (circuit.Operator, *circuit.Catalog, error) {
	op, err := io.ImportOperator(opPath)
	if err != nil {
		return circuit.Operator{}, nil, err
	}
	cat, err := LoadCatalog(catalogPath)
	if err != nil {
		return circuit.Operator{}, nil, err
	}
	return op, cat, nil
}
