package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/errors"
)

// ReadOperator decodes a JSON operator from r and validates it.
// ReadOperator does not close r.
func ReadOperator(r io.Reader) (circuit.Operator, error) {
	var op circuit.Operator
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&op); err != nil {
		return circuit.Operator{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode operator")
	}
	if err := op.Validate(); err != nil {
		return circuit.Operator{}, err
	}
	return op, nil
}

// ReadOperatorYAML is ReadOperator for YAML input.
func ReadOperatorYAML(r io.Reader) (circuit.Operator, error) {
	var op circuit.Operator
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&op); err != nil {
		return circuit.Operator{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode operator")
	}
	if err := op.Validate(); err != nil {
		return circuit.Operator{}, err
	}
	return op, nil
}

// ImportOperator reads the operator file at path. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON.
func ImportOperator(path string) (circuit.Operator, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return circuit.Operator{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "operator file %s", path)
	}
	if err != nil {
		return circuit.Operator{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadOperatorYAML(bytes.NewReader(data))
	default:
		return ReadOperator(bytes.NewReader(data))
	}
}

// WriteOperator encodes op as indented JSON.
func WriteOperator(op circuit.Operator, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(op); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode operator")
	}
	return nil
}

// ExportOperator writes op to a JSON file at path.
func ExportOperator(op circuit.Operator, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := WriteOperator(op, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
