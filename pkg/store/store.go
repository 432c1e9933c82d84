// Package store persists operators by id.
//
// Backends:
//   - [Memory]: process-local map, for tests and `serve` without a database
//   - [FileStore]: one JSON file per operator, for the CLI
//   - mongo.Store: a MongoDB collection, for shared API deployments
//
// Ids are random UUIDs assigned by [Put] implementations when an operator
// arrives without one. A missing id reads as OPERATOR_NOT_FOUND.
package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/errors"
)

// Store is the interface for operator storage backends.
type Store interface {
	// Get returns the operator with id, or an OPERATOR_NOT_FOUND error.
	Get(ctx context.Context, id string) (circuit.Operator, error)

	// Put validates and stores op, assigning an id when op.ID is empty.
	// An existing operator with the same id is replaced.
	Put(ctx context.Context, op circuit.Operator) (string, error)

	// List returns every stored operator ordered by title, then id.
	List(ctx context.Context) ([]circuit.Operator, error)

	// Delete removes id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// NewID returns a fresh random operator id.
func NewID() string {
	return uuid.NewString()
}

// Prepare validates op and fills in its id. Backends call it from Put.
func Prepare(op circuit.Operator) (circuit.Operator, error) {
	if err := op.Validate(); err != nil {
		return circuit.Operator{}, err
	}
	if op.ID == "" {
		op.ID = NewID()
	}
	return op, errors.ValidateFilename(op.ID)
}

// NotFound returns the error backends report for a missing id.
func NotFound(id string) error {
	return errors.New(errors.ErrCodeOperatorNotFound, "operator %q not found", id)
}

// Less orders operators for List: by title, then id.
func Less(a, b circuit.Operator) int {
	if c := strings.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}
