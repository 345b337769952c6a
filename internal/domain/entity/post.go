package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a piece of content written by an authenticated user.
// AuthorID always references an existing user at creation time; the post
// usecase re-validates the author before any write.
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
