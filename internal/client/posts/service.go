// Package posts is the feed service: paged listing and post creation.
package posts

import (
	"context"
	"errors"

	"github.com/redsocial/redsocial-cli/internal/client/models"
)

const (
	defaultPageSize = 10
	maxContentSize  = 20000
)

// ErrEmptyContent rejects posts with no content before the network trip.
var ErrEmptyContent = errors.New("post content is empty")

// ErrContentTooLong mirrors the server-side limit of 20000 characters.
var ErrContentTooLong = errors.New("post content too long")

// API is the slice of the remote client the feed needs.
type API interface {
	ListPosts(ctx context.Context, page, size int) (*models.PostPage, error)
	CreatePost(ctx context.Context, content, mediaURL string) (*models.Post, error)
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// List fetches one page of the feed. Negative pages clamp to the first
// page; a non-positive size falls back to the default of 10.
func (s *Service) List(ctx context.Context, page, size int) (*models.PostPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	return s.api.ListPosts(ctx, page, size)
}

// Create publishes a post. mediaURL may be empty.
func (s *Service) Create(ctx context.Context, content, mediaURL string) (*models.Post, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > maxContentSize {
		return nil, ErrContentTooLong
	}
	return s.api.CreatePost(ctx, content, mediaURL)
}
