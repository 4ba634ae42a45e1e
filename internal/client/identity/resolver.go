// Package identity resolves the current session to the stable internal
// user identifier the profile routes are keyed by.
//
// The token's subject is not guaranteed to be that identifier: depending
// on the issuer it is either the internal id itself or the account email.
// The discriminator is hyphen presence: internal ids are UUID-like and
// always contain one, emails never do. When the token does not directly
// yield a usable id, the resolver falls back to scanning the unfiltered
// profile listing for the subject email. This two-tier scheme is a
// compatibility shim with the backend's token contract and is preserved
// exactly.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redsocial/redsocial-cli/internal/client/models"
	"github.com/redsocial/redsocial-cli/internal/client/token"
)

var (
	// ErrNoToken: resolution without a stored token.
	ErrNoToken = errors.New("no token available")

	// ErrNoSubject: the token decoded to claims without a subject.
	ErrNoSubject = errors.New("no subject claim in token")

	// ErrNoMatch: no profile in the remote listing carries the subject email.
	ErrNoMatch = errors.New("no profile matches the token subject")
)

// Session is the read-only slice of the session manager the resolver uses.
type Session interface {
	CurrentUserID(ctx context.Context) (string, error)
	Token(ctx context.Context) (string, error)
}

// ProfileLister fetches the unfiltered remote profile listing.
type ProfileLister interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
}

// Resolver produces the internal user id for the current session.
type Resolver struct {
	session Session
	api     ProfileLister
}

func NewResolver(session Session, api ProfileLister) *Resolver {
	return &Resolver{session: session, api: api}
}

// Resolve returns the internal id for the current user.
//
// Fast path: when the token already carries a hyphenated identifier
// (userId/id claim, or a subject that is itself an internal id), it is
// returned directly. Otherwise the subject is treated as an email and
// looked up in the profile listing. Resolution is deterministic: the same
// token and the same listing always yield the same id.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	id, err := r.session.CurrentUserID(ctx)
	if err != nil {
		return "", err
	}
	if id != "" && strings.Contains(id, "-") {
		return id, nil
	}

	raw, err := r.session.Token(ctx)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", ErrNoToken
	}

	claims := token.Decode(raw)
	if claims == nil || claims.Subject == "" {
		return "", ErrNoSubject
	}
	email := claims.Subject

	profiles, err := r.api.ListProfiles(ctx)
	if err != nil {
		return "", fmt.Errorf("profile lookup failed: %w", err)
	}

	for _, p := range profiles {
		if p.Email == email {
			return p.UserID, nil
		}
	}
	return "", ErrNoMatch
}
