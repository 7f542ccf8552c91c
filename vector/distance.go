package vector

import (
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when two feature vectors of different
// length are compared.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("vector: dimension mismatch: %d vs %d", e.Expected, e.Actual)
}

// Distance computes the Euclidean (L2) distance between two feature vectors.
// It returns *ErrDimensionMismatch if the vectors have different lengths.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
