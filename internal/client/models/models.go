// Package models defines the wire types exchanged with the red-social API
// and the locally cached session record.
package models

import "time"

// UserSummary is the record cached alongside the bearer token after a
// successful login. It is written and cleared strictly together with the
// token.
type UserSummary struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Profile is a user profile as served by /user-profiles.
//
// ID is the profile's own identifier; UserID is the stable internal user
// identifier every profile route is keyed by. BirthDate is an ISO date
// (yyyy-mm-dd), kept as a string to round-trip exactly.
type Profile struct {
	ID        string     `json:"id,omitempty"`
	UserID    string     `json:"userId,omitempty"`
	Email     string     `json:"email,omitempty"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Alias     string     `json:"alias,omitempty"`
	BirthDate string     `json:"birthDate,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Post is a single feed entry.
type Post struct {
	ID            string     `json:"id,omitempty"`
	UserID        string     `json:"userId,omitempty"`
	Content       string     `json:"content"`
	MediaURL      string     `json:"mediaUrl,omitempty"`
	LikesCount    int        `json:"likesCount"`
	CommentsCount int        `json:"commentsCount"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// Pageable mirrors the paging block of the feed response.
type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// PostPage is one page of the feed as served by GET /posts.
type PostPage struct {
	Content       []Post   `json:"content"`
	Pageable      Pageable `json:"pageable"`
	TotalPages    int      `json:"totalPages"`
	TotalElements int64    `json:"totalElements"`
	First         bool     `json:"first"`
	Last          bool     `json:"last"`
}

// User is the minimal account record served by GET /users/{id}.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
