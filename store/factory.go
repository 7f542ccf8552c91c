package store

import (
	"context"
	"fmt"
)

const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// Open returns a store for the given driver ("sqlite" or "bolt") at path.
func Open(ctx context.Context, driver, path string) (Store, error) {
	switch driver {
	case DriverSQLite, "":
		return OpenSQLite(ctx, path)
	case DriverBolt:
		return OpenBolt(path)
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}
}
