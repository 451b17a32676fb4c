package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/migrations"
	"github.com/dmitrijs2005/jobboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobboard/internal/dbx"

	_ "modernc.org/sqlite"
)

// SavedAtKey holds the RFC 3339 time the token was written.
const SavedAtKey = "token_saved_at"

// SQLiteStore keeps the token in the metadata table of the local database.
type SQLiteStore struct {
	db   *sql.DB
	repo metadata.Repository
}

// OpenSQLiteStore opens (creating if needed) the database at dsn and applies
// the embedded migrations.
func OpenSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, repo: metadata.NewSQLiteRepository(db)}, nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	token, _, err := s.repo.Get(ctx, TokenKey)
	return token, err
}

// SetToken writes the token and its save time in one transaction.
func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, SavedAtKey, time.Now().UTC().Format(time.RFC3339))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, SavedAtKey)
	})
}

// SavedAt reports when the current token was stored.
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	v, ok, err := s.repo.Get(ctx, SavedAtKey)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s: %w", SavedAtKey, err)
	}
	return t, true, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
