package engine

import (
	"database/sql"
	"math"
	"strings"
	"testing"

	"github.com/viant/knn/vector"
)

func TestKnnL2(t *testing.T) {
	// Registration is idempotent.
	for i := 0; i < 2; i++ {
		if err := RegisterFunctions(); err != nil {
			t.Fatalf("RegisterFunctions failed: %v", err)
		}
	}
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	zero := vector.EncodeFeatures([]float64{0, 0})
	threeFour := vector.EncodeFeatures([]float64{3, 4})

	var dist float64
	if err := db.QueryRow(`SELECT knn_l2(?, ?)`, zero, threeFour).Scan(&dist); err != nil {
		t.Fatalf("knn_l2 query failed: %v", err)
	}
	if math.Abs(dist-5) > 1e-12 {
		t.Fatalf("knn_l2((0,0),(3,4)) = %v, want 5", dist)
	}

	var null sql.NullFloat64
	if err := db.QueryRow(`SELECT knn_l2(NULL, ?)`, zero).Scan(&null); err != nil {
		t.Fatalf("knn_l2 NULL query failed: %v", err)
	}
	if null.Valid {
		t.Fatalf("knn_l2(NULL, x) = %v, want NULL", null.Float64)
	}
}

func TestKnnL2_DimensionMismatch(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	a := vector.EncodeFeatures([]float64{1, 2, 3})
	b := vector.EncodeFeatures([]float64{1, 2})
	var dist float64
	err = db.QueryRow(`SELECT knn_l2(?, ?)`, a, b).Scan(&dist)
	if err == nil {
		t.Fatalf("knn_l2 with mismatched dimensions = %v, want error", dist)
	}
	if !strings.Contains(err.Error(), "dimension mismatch") {
		t.Fatalf("unexpected error: %v", err)
	}
}
