package store

import (
	"context"
	"database/sql"
)

const instancesSchema = `
CREATE TABLE IF NOT EXISTS instances (
    dataset  TEXT NOT NULL,
    position INTEGER NOT NULL,
    label    TEXT NOT NULL,
    features BLOB,
    PRIMARY KEY(dataset, position)
);
`

// EnsureSchema creates the instances table in the provided database if it
// does not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, instancesSchema)
	return err
}
