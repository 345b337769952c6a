// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Title   string
	Content string
}

// CreatePostOutput returns the created post.
type CreatePostOutput struct {
	Message string
	Post    *entity.Post
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	// CreatePost writes a post on behalf of an authenticated user. The
	// author is re-validated against storage: a token whose subject no
	// longer exists yields the generic unauthorized error.
	CreatePost(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*CreatePostOutput, error)
}
