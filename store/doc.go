// Package store keeps named datasets so a training set can be imported once
// and reused across sessions. It includes:
//   - Store interface and ErrNotFound
//   - SQLiteStore: modernc.org/sqlite backend with SQL-side neighbor scans
//   - BoltStore: go.etcd.io/bbolt backend
//   - Open factory and the Nearest helper
package store
