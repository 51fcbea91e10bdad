package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/guilhermegouw/leaguebook/internal/record"
)

// Open returns the store for backend at path. Stores that hold resources
// also implement io.Closer.
func Open(ctx context.Context, backend, path string, opts ...Option) (Storage, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONStore(path, opts...), nil
	case BackendSQLite:
		return OpenSQLiteStore(ctx, path, opts...)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Close releases the store if it holds resources.
func Close(s Storage) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// LoadOrSample loads the saved league. When nothing has been saved yet it
// returns the sample league if withSample is set and an empty one otherwise.
func LoadOrSample(ctx context.Context, s Storage, withSample bool) (*record.League, error) {
	league, err := s.Load(ctx)
	switch {
	case err == nil:
		return league, nil
	case errors.Is(err, ErrNoData) && withSample:
		return SampleLeague()
	case errors.Is(err, ErrNoData):
		return record.New(), nil
	default:
		return nil, err
	}
}
