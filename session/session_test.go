package session

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/knn/classifier"
	"github.com/viant/knn/dataset"
	"github.com/viant/knn/logging"
)

func trainingSet() dataset.Dataset {
	return dataset.Dataset{
		{Features: []float64{1, 1}, Label: "X"},
		{Features: []float64{1.5, 1}, Label: "X"},
		{Features: []float64{5, 5}, Label: "Y"},
	}
}

func TestNew(t *testing.T) {
	s, err := New(trainingSet(), 1)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, s.K)
	assert.Equal(t, 1, s.Workers)

	other, err := New(trainingSet(), 1)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)

	_, err = New(trainingSet(), 4)
	assert.True(t, errors.Is(err, classifier.ErrInvalidK))

	_, err = New(nil, 1)
	assert.True(t, errors.Is(err, classifier.ErrEmptyTrainingSet))
}

func TestSetK(t *testing.T) {
	s, err := New(trainingSet(), 1)
	require.NoError(t, err)

	require.NoError(t, s.SetK(3))
	assert.Equal(t, 3, s.K)

	assert.True(t, errors.Is(s.SetK(0), classifier.ErrInvalidK))
	assert.True(t, errors.Is(s.SetK(4), classifier.ErrInvalidK))
	assert.Equal(t, 3, s.K, "invalid k keeps the previous value")
}

func TestPredictOne_UsesCurrentK(t *testing.T) {
	s, err := New(trainingSet(), 1)
	require.NoError(t, err)

	label, err := s.PredictOne([]float64{4, 4})
	require.NoError(t, err)
	assert.Equal(t, "Y", label)

	require.NoError(t, s.SetK(3))
	label, err = s.PredictOne([]float64{4, 4})
	require.NoError(t, err)
	assert.Equal(t, "X", label)

	_, err = s.PredictOne([]float64{4})
	assert.Error(t, err)
}

func TestEvaluateBatch(t *testing.T) {
	var logs bytes.Buffer
	s, err := New(trainingSet(), 1, WithWorkers(2), WithLogger(logging.New(slog.LevelInfo, "text", &logs)))
	require.NoError(t, err)

	report, err := s.EvaluateBatch(dataset.Dataset{
		{Features: []float64{1.1, 1}, Label: "X"},
		{Features: []float64{4.9, 5}, Label: "Y"},
		{Features: []float64{4, 4.5}, Label: "X"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Correct)
	assert.Contains(t, logs.String(), "batch evaluation completed")
	assert.Contains(t, logs.String(), "session="+s.ID)
	assert.Regexp(t, `batch evaluation completed.* k=1 `, logs.String())

	_, err = s.EvaluateBatch(nil)
	assert.True(t, errors.Is(err, classifier.ErrEmptyTestSet))
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	report := &classifier.Report{
		Predictions: []classifier.Prediction{{Predicted: "X", Actual: "X"}, {Predicted: "X", Actual: "Y"}},
		Correct:     1,
		Total:       2,
	}
	require.NoError(t, WriteReport(&buf, report))
	assert.Equal(t, "Predicted: X, Actual: X\nPredicted: X, Actual: Y\nAccuracy: 0.5\n", buf.String())
}
