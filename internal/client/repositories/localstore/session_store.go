package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/redsocial/redsocial-cli/internal/client/models"
	"github.com/redsocial/redsocial-cli/internal/dbx"
)

// Storage keys, matching the names the web client used in local storage.
const (
	keyAuthToken = "authToken"
	keyUser      = "user"
)

// SessionStore persists the session pair: the raw bearer token and the
// cached user summary. The two are always written together and cleared
// together; no partial state is observable by other readers. No expiry
// logic lives here.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Save writes the token and the user summary in a single transaction.
func (s *SessionStore) Save(ctx context.Context, token string, user models.UserSummary) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user summary: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, data)
	})
}

// Clear removes both values. Clearing an already-empty store succeeds.
func (s *SessionStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyAuthToken); err != nil {
			return err
		}
		return repo.Delete(ctx, keyUser)
	})
}

// Token returns the stored bearer token, or "" when absent.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	value, err := NewSQLiteRepository(s.db).Get(ctx, keyAuthToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// User returns the cached user summary, or nil when absent.
func (s *SessionStore) User(ctx context.Context) (*models.UserSummary, error) {
	value, err := NewSQLiteRepository(s.db).Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	var user models.UserSummary
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user summary: %w", err)
	}
	return &user, nil
}
