// Package metadata is a small key/value table in the client's local SQLite
// database. The sqlite session backend keeps its token slot here.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns ("", false, nil) when key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
