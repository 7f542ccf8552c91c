// Package classifier implements k-nearest-neighbors classification by linear
// scan: Euclidean distance to every training instance, a stable sort, and a
// majority vote over the k closest labels. All functions are pure; the
// training set is never modified.
package classifier
