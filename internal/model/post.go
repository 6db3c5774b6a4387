// Package model holds the domain types shared by the handler, service
// and repository layers: the Post entity, the three-way lookup result and
// the request payloads the HTTP layer binds into.
package model

import (
	"time"
)

// Post is a blog post as stored in the posts table and as exchanged over
// HTTP. The `db` tags drive pgx.RowToStructByName; the `json` tags are the
// wire contract clients depend on.
type Post struct {
	ID          int64     `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Body        string    `json:"body" db:"body"`
	Category    string    `json:"category" db:"category"`
	Tags        []string  `json:"tags" db:"tags"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// LookupStatus tags the outcome of a single-post lookup.
type LookupStatus int

const (
	LookupNotFound LookupStatus = iota
	LookupFound
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Lookup is the result of fetching one post by slug.
//
// Together with the error return of the store it forms a three-way
// outcome: found (Status == LookupFound, Post set), not found
// (Status == LookupNotFound, zero Post) or failed (non-nil error).
type Lookup struct {
	Status LookupStatus
	Post   Post
}

// Found builds a Lookup for an existing post.
func Found(p Post) Lookup {
	return Lookup{Status: LookupFound, Post: p}
}

// NotFound builds a Lookup for a missing post.
func NotFound() Lookup {
	return Lookup{Status: LookupNotFound}
}

// IsFound reports whether the lookup located a post.
func (l Lookup) IsFound() bool {
	return l.Status == LookupFound
}
