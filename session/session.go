// Package session holds the interactive state of a classifier run (training
// set and current k) and the menu shell that dispatches operations on it.
package session

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/viant/knn/classifier"
	"github.com/viant/knn/dataset"
	"github.com/viant/knn/logging"
)

// Session carries the training set and the current k across repeated
// queries.
type Session struct {
	ID       string
	K        int
	Training dataset.Dataset
	Workers  int

	logger *logging.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithWorkers bounds concurrent classification in EvaluateBatch.
func WithWorkers(n int) Option {
	return func(s *Session) { s.Workers = n }
}

// New creates a session over training with the initial k.
func New(training dataset.Dataset, k int, opts ...Option) (*Session, error) {
	if err := classifier.ValidateK(k, len(training)); err != nil {
		return nil, err
	}
	s := &Session{
		ID:       uuid.NewString(),
		K:        k,
		Training: training,
		Workers:  1,
		logger:   logging.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithSession(s.ID)
	s.logger.Info("session started", "instances", len(training), "dimension", training.Dimension(), "k", k)
	return s, nil
}

// SetK changes k for subsequent queries. An invalid k leaves the current
// value unchanged.
func (s *Session) SetK(k int) error {
	if err := classifier.ValidateK(k, len(s.Training)); err != nil {
		return err
	}
	s.logger.Info("k changed", "from", s.K, "to", k)
	s.K = k
	return nil
}

// PredictOne labels a single observation.
func (s *Session) PredictOne(features []float64) (string, error) {
	label, err := classifier.Predict(s.Training, features, s.K)
	s.logger.WithK(s.K).LogPrediction(label, err)
	if err != nil {
		return "", err
	}
	return label, nil
}

// EvaluateBatch classifies every instance of test and reports accuracy.
func (s *Session) EvaluateBatch(test dataset.Dataset) (*classifier.Report, error) {
	report, err := classifier.Classify(test, s.Training, s.K, classifier.WithWorkers(s.Workers))
	logger := s.logger.WithK(s.K)
	if err != nil {
		logger.LogBatch(len(test), 0, err)
		return nil, err
	}
	logger.LogBatch(report.Total, report.Correct, nil)
	return report, nil
}

// WriteReport prints one line per prediction followed by the accuracy.
func WriteReport(w io.Writer, report *classifier.Report) error {
	for _, p := range report.Predictions {
		if _, err := fmt.Fprintf(w, "Predicted: %s, Actual: %s\n", p.Predicted, p.Actual); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Accuracy: %v\n", report.Accuracy())
	return err
}
