package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/filex"
	"github.com/gofrs/flock"
)

const lockRetryDelay = 20 * time.Millisecond

type fileRecord struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// FileStore persists the token as JSON in <dir>/session.json. An advisory
// lock file serializes access between client processes; mu does the same
// between goroutines of one process.
type FileStore struct {
	mu   sync.Mutex
	path string
	lock *flock.Flock
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("file session store: empty data dir")
	}
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("file session store: %w", err)
	}
	path := filepath.Join(abs, "session.json")
	return &FileStore{path: path, lock: flock.New(path + ".lock")}, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Token(ctx context.Context) (string, error) {
	var rec fileRecord
	err := s.withLock(ctx, false, func() error {
		b, err := os.ReadFile(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}
		return json.Unmarshal(b, &rec)
	})
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}
	return rec.Token, nil
}

func (s *FileStore) SetToken(ctx context.Context, token string) error {
	b, err := json.Marshal(fileRecord{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	err = s.withLock(ctx, true, func() error {
		return filex.WriteFileAtomic(s.path, b, 0o600)
	})
	if err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	err := s.withLock(ctx, true, func() error {
		err := os.Remove(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("clear session file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return s.lock.Close()
}

func (s *FileStore) withLock(ctx context.Context, exclusive bool, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = s.lock.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = s.lock.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return fmt.Errorf("flock: %w", err)
	}
	if !locked {
		return errors.New("flock: not acquired")
	}
	defer func() { _ = s.lock.Unlock() }()

	return fn()
}
