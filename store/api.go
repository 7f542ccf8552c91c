package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/knn/classifier"
	"github.com/viant/knn/dataset"
)

// ErrNotFound is returned when a named dataset does not exist.
var ErrNotFound = errors.New("store: dataset not found")

// Store persists datasets under a name. Instance order is preserved.
type Store interface {
	// Save stores ds under name, replacing any dataset previously saved
	// under the same name.
	Save(ctx context.Context, name string, ds dataset.Dataset) error

	// Load returns the dataset saved under name, or ErrNotFound.
	Load(ctx context.Context, name string) (dataset.Dataset, error)

	// Names lists stored dataset names in lexical order.
	Names(ctx context.Context) ([]string, error)

	// Remove deletes the dataset saved under name, or returns ErrNotFound.
	Remove(ctx context.Context, name string) error

	// Close releases the underlying database.
	Close() error
}

// Searcher is implemented by stores that can select nearest neighbors
// without loading the dataset into memory.
type Searcher interface {
	Nearest(ctx context.Context, name string, query []float64, k int) ([]classifier.Neighbor, error)
}

// Nearest returns the k instances of the named dataset closest to query, in
// the same order classifier.Neighbors would produce.
func Nearest(ctx context.Context, s Store, name string, query []float64, k int) ([]classifier.Neighbor, error) {
	if searcher, ok := s.(Searcher); ok {
		return searcher.Nearest(ctx, name, query, k)
	}
	ds, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return classifier.Neighbors(ds, query, k)
}

func checkSave(name string, ds dataset.Dataset) error {
	if name == "" {
		return fmt.Errorf("store: dataset name must be set")
	}
	if len(ds) == 0 {
		return fmt.Errorf("store: dataset %s is empty", name)
	}
	return nil
}
