package classifier

import "errors"

var (
	// ErrInvalidK is returned when k is not positive or exceeds the training set size.
	ErrInvalidK = errors.New("classifier: invalid k")
	// ErrEmptyTrainingSet is returned when neighbors are requested from an empty training set.
	ErrEmptyTrainingSet = errors.New("classifier: empty training set")
	// ErrEmptyTestSet is returned when a batch has no test instances.
	ErrEmptyTestSet = errors.New("classifier: empty test set")
	// ErrEmptyNeighborSet is returned when voting over no neighbors.
	ErrEmptyNeighborSet = errors.New("classifier: empty neighbor set")
)
