package classifier

import (
	"fmt"

	"github.com/viant/knn/dataset"
	"golang.org/x/sync/errgroup"
)

// Prediction pairs the predicted label of a test instance with its true label.
type Prediction struct {
	Predicted string
	Actual    string
}

// Correct reports whether the prediction matches the true label.
func (p Prediction) Correct() bool { return p.Predicted == p.Actual }

// Report is the outcome of a batch classification. Predictions follow the
// order of the test set.
type Report struct {
	Predictions []Prediction
	Correct     int
	Total       int
}

// Accuracy returns the fraction of correct predictions.
func (r *Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

type options struct {
	workers int
}

// Option configures Classify.
type Option func(*options)

// WithWorkers classifies up to n test instances concurrently. Values below 2
// keep classification sequential.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Classify predicts a label for every test instance from its k nearest
// neighbors in train and compares it to the instance's true label. The first
// error aborts the batch.
func Classify(test, train dataset.Dataset, k int, opts ...Option) (*Report, error) {
	if len(test) == 0 {
		return nil, ErrEmptyTestSet
	}
	if err := ValidateK(k, len(train)); err != nil {
		return nil, err
	}
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	predictions := make([]Prediction, len(test))
	classifyOne := func(i int) error {
		label, err := Predict(train, test[i].Features, k)
		if err != nil {
			return fmt.Errorf("classifier: test instance %d: %w", i, err)
		}
		predictions[i] = Prediction{Predicted: label, Actual: test[i].Label}
		return nil
	}

	if o.workers < 2 {
		for i := range test {
			if err := classifyOne(i); err != nil {
				return nil, err
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i := range test {
			i := i
			g.Go(func() error { return classifyOne(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	report := &Report{Predictions: predictions, Total: len(predictions)}
	for _, p := range predictions {
		if p.Correct() {
			report.Correct++
		}
	}
	return report, nil
}
