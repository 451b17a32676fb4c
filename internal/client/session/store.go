// Package session holds the client's authentication credential.
//
// A Store is a single named slot with a bearer token. It is injected into the
// services that need it; there is no package-level default. SetToken is
// synchronous: a Token call made after SetToken returns observes the new
// value. The token is opaque to the client and never expires locally, so the
// stores keep no TTL.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/filex"
	"github.com/redis/go-redis/v9"
)

// TokenKey names the credential slot in every backend.
const TokenKey = "token"

var ErrUnknownBackend = errors.New("unknown session backend")

type Store interface {
	// Token returns "" and a nil error when no credential is stored.
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Close() error
}

const (
	BackendMemory  = "memory"
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendSQLite  = "sqlite"
	BackendRedis   = "redis"
)

// Options select and configure a backend for Open.
type Options struct {
	Backend string

	// DataDir holds session.json (file) or client.db (sqlite).
	DataDir string

	// KeyringAccount scopes the keychain entry, usually the server URL.
	KeyringAccount string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string
}

// Open builds the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		return NewFileStore(opts.DataDir)
	case BackendKeyring:
		return NewKeyringStore(opts.KeyringAccount), nil
	case BackendSQLite:
		dir, err := filex.EnsureDir(opts.DataDir)
		if err != nil {
			return nil, err
		}
		return OpenSQLiteStore(ctx, filepath.Join(dir, "client.db"))
	case BackendRedis:
		return OpenRedisStore(ctx, &redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		}, opts.RedisKeyPrefix)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
