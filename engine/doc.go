// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the knn_l2 SQL
// scalar function used by the dataset store for SQL-side neighbor scans.
package engine
