package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/viant/knn/classifier"
	"github.com/viant/knn/dataset"
	"github.com/viant/knn/engine"
	"github.com/viant/knn/vector"
)

// SQLiteStore keeps datasets in a single SQLite table, one row per instance.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite database at dsn and returns a store
// backed by it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := engine.Open(dsn)
	if err != nil {
		return nil, err
	}
	// Every :memory: connection is a distinct database.
	db.SetMaxOpenConns(1)
	s, err := NewSQLiteStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteStore creates a store on an already opened database. The database
// must have been opened after engine.RegisterFunctions for Nearest to work.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Save replaces the named dataset in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, name string, ds dataset.Dataset) error {
	if err := checkSave(name, ds); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM instances WHERE dataset = ?`, name); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO instances(dataset, position, label, features) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, inst := range ds {
		if _, err := stmt.ExecContext(ctx, name, i, inst.Label, vector.EncodeFeatures(inst.Features)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns the named dataset in its saved order.
func (s *SQLiteStore) Load(ctx context.Context, name string) (dataset.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label, features FROM instances WHERE dataset = ? ORDER BY position`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out dataset.Dataset
	for rows.Next() {
		var inst dataset.Instance
		var blob []byte
		if err := rows.Scan(&inst.Label, &blob); err != nil {
			return nil, err
		}
		if inst.Features, err = vector.DecodeFeatures(blob); err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return out, nil
}

// Names lists the stored datasets.
func (s *SQLiteStore) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT dataset FROM instances ORDER BY dataset`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Remove deletes the named dataset.
func (s *SQLiteStore) Remove(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM instances WHERE dataset = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Nearest scans the named dataset inside SQLite using knn_l2. Ties are broken
// by saved position, which matches the stable order of classifier.Neighbors.
func (s *SQLiteStore) Nearest(ctx context.Context, name string, query []float64, k int) ([]classifier.Neighbor, error) {
	var size int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM instances WHERE dataset = ?`, name).Scan(&size); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := classifier.ValidateK(k, size); err != nil {
		return nil, err
	}
	if err := s.checkDimension(ctx, name, len(query)); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT label, features, knn_l2(features, ?) AS distance
FROM instances
WHERE dataset = ?
ORDER BY distance, position
LIMIT ?`, vector.EncodeFeatures(query), name, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]classifier.Neighbor, 0, k)
	for rows.Next() {
		var n classifier.Neighbor
		var blob []byte
		var distance sql.NullFloat64
		if err := rows.Scan(&n.Label, &blob, &distance); err != nil {
			return nil, err
		}
		// SQLite stores a NaN result as NULL and sorts it first, like cmp.Compare.
		n.Distance = math.NaN()
		if distance.Valid {
			n.Distance = distance.Float64
		}
		if n.Features, err = vector.DecodeFeatures(blob); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// checkDimension reports the first stored instance, by position, whose
// dimension differs from the query.
func (s *SQLiteStore) checkDimension(ctx context.Context, name string, dimension int) error {
	var position, size int
	err := s.db.QueryRowContext(ctx, `SELECT position, COALESCE(length(features), 0) / 8
FROM instances
WHERE dataset = ? AND COALESCE(length(features), 0) != ?
ORDER BY position
LIMIT 1`, name, dimension*8).Scan(&position, &size)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("classifier: training instance %d: %w", position,
		&vector.ErrDimensionMismatch{Expected: size, Actual: dimension})
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Ensure SQLiteStore satisfies the Store and Searcher interfaces.
var (
	_ Store    = (*SQLiteStore)(nil)
	_ Searcher = (*SQLiteStore)(nil)
)
