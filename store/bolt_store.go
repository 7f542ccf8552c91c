package store

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/viant/knn/dataset"
	"github.com/viant/knn/vector"
	"go.etcd.io/bbolt"
)

const datasetBucketPrefix = "dataset_"

// BoltStore keeps each dataset in its own bbolt bucket. Keys are big-endian
// positions so a cursor walk returns instances in saved order.
type BoltStore struct {
	db   *bbolt.DB
	path string
}

// OpenBolt opens (or creates) a bbolt database file at path.
func OpenBolt(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", dir, err)
		}
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open bolt database %s: %w", path, err)
	}
	return &BoltStore{db: db, path: path}, nil
}

// Save replaces the named dataset.
func (s *BoltStore) Save(_ context.Context, name string, ds dataset.Dataset) error {
	if err := checkSave(name, ds); err != nil {
		return err
	}
	bucketName := []byte(datasetBucketPrefix + name)
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		bucket, err := tx.CreateBucket(bucketName)
		if err != nil {
			return fmt.Errorf("store: create bucket %s: %w", bucketName, err)
		}
		for i, inst := range ds {
			if err := bucket.Put(positionKey(i), encodeInstance(inst)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns the named dataset in saved order.
func (s *BoltStore) Load(_ context.Context, name string) (dataset.Dataset, error) {
	var out dataset.Dataset
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(datasetBucketPrefix + name))
		if bucket == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		out = make(dataset.Dataset, 0, bucket.Stats().KeyN)
		return bucket.ForEach(func(_, v []byte) error {
			inst, err := decodeInstance(v)
			if err != nil {
				return err
			}
			out = append(out, inst)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Names lists the stored datasets.
func (s *BoltStore) Names(_ context.Context) ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			if n, ok := bytes.CutPrefix(name, []byte(datasetBucketPrefix)); ok {
				names = append(names, string(n))
			}
			return nil
		})
	})
	return names, err
}

// Remove deletes the named dataset.
func (s *BoltStore) Remove(_ context.Context, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		err := tx.DeleteBucket([]byte(datasetBucketPrefix + name))
		if errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	})
}

// Close closes the bbolt database.
func (s *BoltStore) Close() error { return s.db.Close() }

func positionKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}

// encodeInstance stores: labelLen(uint32), label bytes, features blob.
func encodeInstance(inst dataset.Instance) []byte {
	features := vector.EncodeFeatures(inst.Features)
	out := make([]byte, 4, 4+len(inst.Label)+len(features))
	binary.LittleEndian.PutUint32(out, uint32(len(inst.Label)))
	out = append(out, inst.Label...)
	return append(out, features...)
}

func decodeInstance(data []byte) (dataset.Instance, error) {
	if len(data) < 4 {
		return dataset.Instance{}, errors.New("store: truncated instance")
	}
	labelLen := int(binary.LittleEndian.Uint32(data))
	if 4+labelLen > len(data) {
		return dataset.Instance{}, errors.New("store: truncated label")
	}
	features, err := vector.DecodeFeatures(data[4+labelLen:])
	if err != nil {
		return dataset.Instance{}, err
	}
	return dataset.Instance{Label: string(data[4 : 4+labelLen]), Features: features}, nil
}

var _ Store = (*BoltStore)(nil)
