// Package vector holds the numeric kernel shared by the classifier and the
// storage layer:
//   - Euclidean distance over float64 feature vectors
//   - ErrDimensionMismatch for vectors of differing length
//   - Feature encoding (BLOB) used by the SQLite and bbolt stores
package vector
