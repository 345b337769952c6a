package repository

import (
	"context"

	"quill/internal/domain/entity"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	// Create persists a new post authored by an existing user.
	Create(ctx context.Context, post *entity.Post) error
}
