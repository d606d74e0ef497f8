package storage

import (
	"context"

	"github.com/Xunop/amana-bookstore/internal/config"
	"github.com/pkg/errors"
)

// Open returns the driver selected by the options.
func Open(ctx context.Context, opts *config.Options) (Driver, error) {
	switch opts.StorageDriver {
	case config.StorageDriverFile:
		return NewFileDriver(opts.Data)
	case config.StorageDriverSQLite:
		return NewSQLiteDriver(ctx, opts.DSN)
	default:
		return nil, errors.Errorf("unknown storage driver %q", opts.StorageDriver)
	}
}
