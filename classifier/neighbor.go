package classifier

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/viant/knn/dataset"
	"github.com/viant/knn/vector"
)

// Neighbor is a training instance paired with its distance to a query point.
type Neighbor struct {
	Label    string
	Features []float64
	Distance float64
}

// ValidateK checks that 0 < k <= size.
func ValidateK(k, size int) error {
	if size == 0 {
		return ErrEmptyTrainingSet
	}
	if k <= 0 || k > size {
		return fmt.Errorf("%w: k=%d, training set size %d", ErrInvalidK, k, size)
	}
	return nil
}

// Neighbors returns the k training instances closest to query, ordered by
// ascending distance. Instances at equal distance keep their training set
// order.
func Neighbors(train dataset.Dataset, query []float64, k int) ([]Neighbor, error) {
	if err := ValidateK(k, len(train)); err != nil {
		return nil, err
	}
	candidates := make([]Neighbor, len(train))
	for i, inst := range train {
		d, err := vector.Distance(inst.Features, query)
		if err != nil {
			return nil, fmt.Errorf("classifier: training instance %d: %w", i, err)
		}
		candidates[i] = Neighbor{Label: inst.Label, Features: inst.Features, Distance: d}
	}
	slices.SortStableFunc(candidates, func(a, b Neighbor) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return candidates[:k:k], nil
}

// Vote returns the most frequent label among neighbors. On a tie the label
// that reached the winning count first, scanning in neighbor order, wins.
func Vote(neighbors []Neighbor) (string, error) {
	if len(neighbors) == 0 {
		return "", ErrEmptyNeighborSet
	}
	votes := make(map[string]int, len(neighbors))
	var winner string
	best := 0
	for _, n := range neighbors {
		votes[n.Label]++
		if c := votes[n.Label]; c > best {
			best = c
			winner = n.Label
		}
	}
	return winner, nil
}

// Predict labels query by majority vote over its k nearest training instances.
func Predict(train dataset.Dataset, query []float64, k int) (string, error) {
	neighbors, err := Neighbors(train, query, k)
	if err != nil {
		return "", err
	}
	return Vote(neighbors)
}
