// Package token decodes JWT payloads for local display and convenience
// logic only. There is NO signature verification here: the decoded claims
// are not trust-asserting. The authoritative check is always the server's
// own rejection of expired or invalid tokens on protected endpoints.
package token

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the client cares about. The subject is
// conventionally the account email; UserID/ID are optional internal
// identifier claims some token issuers include.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId,omitempty"`
	ID     string `json:"id,omitempty"`
}

// segmentDecoder tolerates both padded and unpadded base64url payloads.
var segmentDecoder = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode extracts the claims from the payload segment of raw.
//
// Decoding is best-effort and purely informational: only the middle
// segment is inspected (the header may be arbitrary), and any failure
// (missing segment, malformed base64, invalid JSON) yields nil rather
// than an error.
func Decode(raw string) *Claims {
	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return nil
	}

	payload, err := segmentDecoder.DecodeSegment(parts[1])
	if err != nil {
		return nil
	}

	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil
	}
	return claims
}

// Expired reports whether the claims are expired at the given instant.
// A missing exp claim counts as expired (fail-closed).
func (c *Claims) Expired(now time.Time) bool {
	if c == nil || c.ExpiresAt == nil {
		return true
	}
	return c.ExpiresAt.Before(now)
}
