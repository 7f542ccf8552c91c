package classifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/knn/dataset"
	"github.com/viant/knn/vector"
)

func labels(neighbors []Neighbor) []string {
	out := make([]string, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.Label
	}
	return out
}

func neighborsWithLabels(ls ...string) []Neighbor {
	out := make([]Neighbor, len(ls))
	for i, l := range ls {
		out[i] = Neighbor{Label: l, Distance: float64(i)}
	}
	return out
}

func TestNeighbors(t *testing.T) {
	train := dataset.Dataset{
		{Features: []float64{10, 10}, Label: "far"},
		{Features: []float64{1, 0}, Label: "near"},
		{Features: []float64{3, 4}, Label: "mid"},
		{Features: []float64{0, 0}, Label: "origin"},
	}

	got, err := Neighbors(train, []float64{0, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"origin", "near", "mid"}, labels(got))
	assert.Equal(t, []float64{0, 1, 5}, []float64{got[0].Distance, got[1].Distance, got[2].Distance})
	assert.Equal(t, []float64{3, 4}, got[2].Features)
}

func TestNeighbors_CountAndOrder(t *testing.T) {
	train := dataset.Dataset{
		{Features: []float64{5, 1}, Label: "a"},
		{Features: []float64{2, 2}, Label: "b"},
		{Features: []float64{-3, 0.5}, Label: "c"},
		{Features: []float64{2, 2}, Label: "d"},
		{Features: []float64{0, 9}, Label: "e"},
	}
	query := []float64{1, 1}
	for k := 1; k <= len(train); k++ {
		got, err := Neighbors(train, query, k)
		require.NoError(t, err)
		require.Len(t, got, k)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Distance, got[i].Distance)
		}
	}
}

func TestNeighbors_StableTieBreak(t *testing.T) {
	train := dataset.Dataset{
		{Features: []float64{0, 0}, Label: "A"},
		{Features: []float64{0, 0}, Label: "B"},
	}
	got, err := Neighbors(train, []float64{0, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, labels(got))
}

func TestNeighbors_Deterministic(t *testing.T) {
	train := dataset.Dataset{
		{Features: []float64{1, 1}, Label: "X"},
		{Features: []float64{1, 1}, Label: "Y"},
		{Features: []float64{2, 2}, Label: "X"},
		{Features: []float64{0, 2}, Label: "Z"},
	}
	first, err := Neighbors(train, []float64{1, 1.5}, 3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Neighbors(train, []float64{1, 1.5}, 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNeighbors_DoesNotMutateTrainingSet(t *testing.T) {
	train := dataset.Dataset{
		{Features: []float64{9}, Label: "far"},
		{Features: []float64{1}, Label: "near"},
	}
	_, err := Neighbors(train, []float64{0}, 2)
	require.NoError(t, err)
	assert.Equal(t, "far", train[0].Label)
	assert.Equal(t, "near", train[1].Label)
}

func TestNeighbors_Errors(t *testing.T) {
	train := dataset.Dataset{
		{Features: []float64{0, 0}, Label: "A"},
		{Features: []float64{1, 1}, Label: "B"},
	}

	_, err := Neighbors(train, []float64{0, 0}, 0)
	assert.True(t, errors.Is(err, ErrInvalidK))

	_, err = Neighbors(train, []float64{0, 0}, -1)
	assert.True(t, errors.Is(err, ErrInvalidK))

	_, err = Neighbors(train, []float64{0, 0}, 3)
	assert.True(t, errors.Is(err, ErrInvalidK))

	_, err = Neighbors(nil, []float64{0, 0}, 1)
	assert.True(t, errors.Is(err, ErrEmptyTrainingSet))

	_, err = Neighbors(train, []float64{0, 0, 0}, 1)
	var dm *vector.ErrDimensionMismatch
	assert.True(t, errors.As(err, &dm))
}

func TestVote(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected string
	}{
		{"Single", []string{"A"}, "A"},
		{"Majority", []string{"A", "B", "B"}, "B"},
		{"LaterLabelOvertakes", []string{"B", "A", "A", "B"}, "A"},
		{"FirstToReachMaximum", []string{"A", "B", "A", "B"}, "A"},
		{"TieAtOne", []string{"C", "B", "A"}, "C"},
		{"SecondReachesFirst", []string{"A", "B", "B", "A"}, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Vote(neighborsWithLabels(tt.labels...))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVote_Empty(t *testing.T) {
	_, err := Vote(nil)
	assert.True(t, errors.Is(err, ErrEmptyNeighborSet))
}

func TestPredict(t *testing.T) {
	train := dataset.Dataset{
		{Features: []float64{1, 1}, Label: "X"},
		{Features: []float64{1.2, 0.8}, Label: "X"},
		{Features: []float64{5, 5}, Label: "Y"},
	}
	label, err := Predict(train, []float64{4, 4}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Y", label)

	label, err = Predict(train, []float64{4, 4}, 3)
	require.NoError(t, err)
	assert.Equal(t, "X", label)
}
