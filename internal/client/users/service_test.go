package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redsocial/redsocial-cli/internal/client/models"
)

type fakeAPI struct {
	user *models.User
	err  error
}

func (f *fakeAPI) UserByID(ctx context.Context, id string) (*models.User, error) {
	return f.user, f.err
}

func TestByID_ReturnsRemoteRecord(t *testing.T) {
	fa := &fakeAPI{user: &models.User{ID: "u-1", Email: "ana@x.com", Name: "Ana"}}
	s := NewService(fa)

	u := s.ByID(context.Background(), "u-1")
	require.Equal(t, "Ana", u.Name)
}

func TestByID_FallsBackToPlaceholderOnError(t *testing.T) {
	fa := &fakeAPI{err: errors.New("boom")}
	s := NewService(fa)

	u := s.ByID(context.Background(), "u-7")
	require.Equal(t, "u-7", u.ID)
	require.Equal(t, "User", u.Name)
	require.Equal(t, "user@example.com", u.Email)
}
