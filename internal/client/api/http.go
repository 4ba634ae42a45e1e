package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/redsocial/redsocial-cli/internal/client/models"
)

// HTTPClient implements Client over plain net/http.
//
// The bearer token is read from the TokenSource on every call; when no
// token is available the Authorization header is simply omitted and the
// server is left to reject the request. There is no retry logic and no
// timeout beyond what the underlying http.Client enforces.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
}

var _ Client = (*HTTPClient)(nil)

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithHTTPTransport swaps the underlying http.Client.
func WithHTTPTransport(c *http.Client) Option {
	return func(h *HTTPClient) { h.hc = c }
}

// NewHTTPClient builds a client rooted at baseURL (e.g.
// "http://localhost:8080/api").
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// do performs one JSON round trip. A nil out skips response decoding.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if token, err := c.tokens.Token(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, credentials{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("empty token in login response")
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, credentials{Email: email, Password: password}, nil)
}

func (c *HTTPClient) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/user-profiles", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeProfileListing(raw)
}

// decodeProfileListing accepts both response shapes of /user-profiles:
// a JSON array of profiles, or a single profile object.
func decodeProfileListing(raw []byte) ([]models.Profile, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []models.Profile
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to decode profile listing: %w", err)
		}
		return list, nil
	}

	var single models.Profile
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("failed to decode profile listing: %w", err)
	}
	return []models.Profile{single}, nil
}

func (c *HTTPClient) ProfileByUser(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "/user-profiles/by-user/"+url.PathEscape(userID), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	var updated models.Profile
	if err := c.do(ctx, http.MethodPut, "/user-profiles/by-user/"+url.PathEscape(userID), nil, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context, page, size int) (*models.PostPage, error) {
	query := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
	var pp models.PostPage
	if err := c.do(ctx, http.MethodGet, "/posts", query, nil, &pp); err != nil {
		return nil, err
	}
	return &pp, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, content, mediaURL string) (*models.Post, error) {
	in := struct {
		Content  string `json:"content"`
		MediaURL string `json:"mediaUrl,omitempty"`
	}{Content: content, MediaURL: mediaURL}

	var p models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
