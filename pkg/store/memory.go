package store

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/gatexray/pkg/circuit"
)

// Memory is an in-process Store.
type Memory struct {
	mu  sync.RWMutex
	ops map[string]circuit.Operator
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{ops: make(map[string]circuit.Operator)}
}

func (m *Memory) Get(ctx context.Context, id string) (circuit.Operator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	op, ok := m.ops[id]
	if !ok {
		return circuit.Operator{}, NotFound(id)
	}
	return clone(op), nil
}

func (m *Memory) Put(ctx context.Context, op circuit.Operator) (string, error) {
	op, err := Prepare(op)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops[op.ID] = clone(op)
	return op.ID, nil
}

func (m *Memory) List(ctx context.Context) ([]circuit.Operator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]circuit.Operator, 0, len(m.ops))
	for _, op := range m.ops {
		out = append(out, clone(op))
	}
	slices.SortFunc(out, Less)
	return out, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ops, id)
	return nil
}

func (m *Memory) Close() error { return nil }

// clone keeps callers from mutating stored component slices.
func clone(op circuit.Operator) circuit.Operator {
	op.Components = slices.Clone(op.Components)
	return op
}

var _ Store = (*Memory)(nil)
