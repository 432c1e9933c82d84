package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/errors"
	"github.com/matzehuels/gatexray/pkg/io"
)

// FileStore keeps one JSON file per operator in a directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store rooted at baseDir.
// If baseDir is empty, defaults to ~/.config/gatexray/operators/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "gatexray", "operators")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) operatorPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Get(ctx context.Context, id string) (circuit.Operator, error) {
	if strings.ContainsAny(id, `/\`) || id == "" {
		return circuit.Operator{}, NotFound(id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	op, err := io.ImportOperator(s.operatorPath(id))
	if err != nil {
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			return circuit.Operator{}, NotFound(id)
		}
		return circuit.Operator{}, err
	}
	op.ID = id
	return op, nil
}

func (s *FileStore) Put(ctx context.Context, op circuit.Operator) (string, error) {
	op, err := Prepare(op)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := io.ExportOperator(op, s.operatorPath(op.ID)); err != nil {
		return "", err
	}
	return op.ID, nil
}

func (s *FileStore) List(ctx context.Context) ([]circuit.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read store dir: %w", err)
	}

	var out []circuit.Operator
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		op, err := io.ImportOperator(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		op.ID = strings.TrimSuffix(entry.Name(), ".json")
		out = append(out, op)
	}
	slices.SortFunc(out, Less)
	return out, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if strings.ContainsAny(id, `/\`) || id == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.operatorPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove operator file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for operator files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
