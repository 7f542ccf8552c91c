package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver, making
// sure knn_l2 is registered first.
//
// For file-based databases, pass a path like "./knn.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterFunctions(); err != nil {
		return nil, err
	}
	return sql.Open("sqlite", dsn)
}
