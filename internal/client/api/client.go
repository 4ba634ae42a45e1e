// Package api is the REST client for the red-social backend. It owns the
// wire formats of /auth, /user-profiles, /posts and /users, attaches the
// bearer token supplied by a TokenSource, and maps remote rejections into
// *Error values carrying the server's own message when it provides one.
package api

import (
	"context"

	"github.com/redsocial/redsocial-cli/internal/client/models"
)

// Client is the remote API surface the client services consume.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates an account. No token is issued; the user still has
	// to log in afterwards.
	Register(ctx context.Context, email, password string) error

	// ListProfiles fetches the unfiltered profile listing. The endpoint
	// sometimes answers with a single object instead of a list; either
	// shape decodes into the returned slice.
	ListProfiles(ctx context.Context) ([]models.Profile, error)

	// ProfileByUser fetches the profile keyed by the internal user id.
	ProfileByUser(ctx context.Context, userID string) (*models.Profile, error)

	// UpdateProfile replaces the profile keyed by the internal user id and
	// returns the server's canonical copy.
	UpdateProfile(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error)

	// ListPosts fetches one page of the feed.
	ListPosts(ctx context.Context, page, size int) (*models.PostPage, error)

	// CreatePost publishes a post and returns the stored record.
	CreatePost(ctx context.Context, content, mediaURL string) (*models.Post, error)

	// UserByID fetches the minimal account record for a user id.
	UserByID(ctx context.Context, id string) (*models.User, error)
}

// TokenSource supplies the current bearer token, "" when there is none.
// The session store satisfies this interface.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
