// Package users looks up minimal account records for display (e.g. the
// author line of a feed entry).
package users

import (
	"context"

	"github.com/redsocial/redsocial-cli/internal/client/models"
)

// API is the slice of the remote client the lookup needs.
type API interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// ByID returns the user record for id. Author info is cosmetic, so any
// failure, transport or rejection alike, degrades to a placeholder record
// instead of an error; the feed still renders.
func (s *Service) ByID(ctx context.Context, id string) *models.User {
	u, err := s.api.UserByID(ctx, id)
	if err != nil || u == nil {
		return &models.User{ID: id, Email: "user@example.com", Name: "User"}
	}
	return u
}
