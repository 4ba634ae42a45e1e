// Package profile fetches and updates the current user's profile. Every
// operation first resolves the internal user id through the identity
// resolver and then hits the profile routes keyed by that id.
package profile

import (
	"context"
	"fmt"

	"github.com/redsocial/redsocial-cli/internal/client/models"
)

// IDResolver produces the internal id of the current user.
type IDResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// API is the slice of the remote client the gateway needs.
type API interface {
	ProfileByUser(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error)
}

type Gateway struct {
	resolver IDResolver
	api      API
}

func NewGateway(resolver IDResolver, api API) *Gateway {
	return &Gateway{resolver: resolver, api: api}
}

// Fetch returns the current user's profile.
func (g *Gateway) Fetch(ctx context.Context) (*models.Profile, error) {
	id, err := g.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve user id: %w", err)
	}
	return g.api.ProfileByUser(ctx, id)
}

// Update replaces the current user's profile and returns the server's
// canonical copy. The server is the source of truth; callers must use the
// returned record, not their local draft.
func (g *Gateway) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	id, err := g.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve user id: %w", err)
	}
	return g.api.UpdateProfile(ctx, id, p)
}
