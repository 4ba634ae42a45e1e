// Package session owns the client's authentication state: login, logout,
// registration, and the expiry probe run at startup. The state machine is
// deliberately small: a session is either present in the store or not;
// "expired" only exists transiently during Restore and collapses into the
// unauthenticated state by clearing storage.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redsocial/redsocial-cli/internal/client/models"
	"github.com/redsocial/redsocial-cli/internal/client/token"
)

// Authenticator is the slice of the remote API the session manager needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) error
}

// Store persists the session pair (token + cached user summary).
type Store interface {
	Save(ctx context.Context, tok string, user models.UserSummary) error
	Clear(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*models.UserSummary, error)
}

// Manager orchestrates authentication against the remote API and the
// local session store. Construct one per application and inject it into
// every component that needs the session.
type Manager struct {
	api   Authenticator
	store Store

	now func() time.Time
}

func NewManager(api Authenticator, store Store) *Manager {
	return &Manager{api: api, store: store, now: time.Now}
}

// Login authenticates against the server and, on success, stores the
// token and the user summary together. On rejection or network failure
// nothing is written and the error carries the server-provided message
// when there is one.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	tok, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := m.store.Save(ctx, tok, models.UserSummary{Email: email, Token: tok}); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Register creates an account. It never mutates the session state, even
// on success: the user still has to log in afterwards.
func (m *Manager) Register(ctx context.Context, email, password string) error {
	return m.api.Register(ctx, email, password)
}

// Logout unconditionally clears the stored session. Logging out of an
// already-empty store succeeds.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// IsAuthenticated reports whether a token is present in the store. It does
// NOT consult expiry; that asymmetry is intentional. IsTokenExpired is
// the only expiry query, and callers combine the two themselves.
func (m *Manager) IsAuthenticated(ctx context.Context) (bool, error) {
	tok, err := m.store.Token(ctx)
	if err != nil {
		return false, err
	}
	return tok != "", nil
}

// IsTokenExpired reports whether the stored token's exp claim is in the
// past. A missing token, an undecodable token, or a missing exp claim all
// count as expired (fail-closed).
func (m *Manager) IsTokenExpired(ctx context.Context) (bool, error) {
	tok, err := m.store.Token(ctx)
	if err != nil {
		return true, err
	}
	if tok == "" {
		return true, nil
	}
	return token.Decode(tok).Expired(m.now()), nil
}

// CurrentUserID decodes the stored token and returns the best user
// identifier it carries: the userId claim, else the id claim, else the
// subject, in that order. Returns "" when there is no token or it does
// not decode.
func (m *Manager) CurrentUserID(ctx context.Context) (string, error) {
	claims, err := m.Claims(ctx)
	if err != nil || claims == nil {
		return "", err
	}

	switch {
	case claims.UserID != "":
		return claims.UserID, nil
	case claims.ID != "":
		return claims.ID, nil
	default:
		return claims.Subject, nil
	}
}

// Claims returns the decoded claims of the stored token, nil when there is
// no token or it does not decode. The claims are unverified and must not
// be treated as trust-asserting.
func (m *Manager) Claims(ctx context.Context) (*token.Claims, error) {
	tok, err := m.store.Token(ctx)
	if err != nil {
		return nil, err
	}
	if tok == "" {
		return nil, nil
	}
	return token.Decode(tok), nil
}

// Token returns the stored bearer token, "" when absent.
func (m *Manager) Token(ctx context.Context) (string, error) {
	return m.store.Token(ctx)
}

// CurrentUser returns the cached user summary stored at login, or nil.
func (m *Manager) CurrentUser(ctx context.Context) (*models.UserSummary, error) {
	return m.store.User(ctx)
}

// Restore is the startup probe: when a stored token exists but is expired
// (or cannot be decoded), the session is cleared so the process starts
// unauthenticated. It reports whether a stale session was discarded.
func (m *Manager) Restore(ctx context.Context) (cleared bool, err error) {
	tok, err := m.store.Token(ctx)
	if err != nil {
		return false, err
	}
	if tok == "" {
		return false, nil
	}

	if token.Decode(tok).Expired(m.now()) {
		if err := m.store.Clear(ctx); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
