package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the client's entries in the OS keychain.
const KeyringService = "jobboard"

// KeyringStore keeps the token in the OS keychain under one account.
type KeyringStore struct {
	account string
}

func NewKeyringStore(account string) *KeyringStore {
	if account == "" {
		account = TokenKey
	}
	return &KeyringStore{account: account}
}

func (s *KeyringStore) Token(context.Context) (string, error) {
	token, err := keyring.Get(KeyringService, s.account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("keyring get: %w", err)
	}
	return token, nil
}

func (s *KeyringStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}
	if err := keyring.Set(KeyringService, s.account, token); err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

func (s *KeyringStore) Clear(context.Context) error {
	err := keyring.Delete(KeyringService, s.account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}

func (s *KeyringStore) Close() error { return nil }
