package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// The author row vanished between the usecase check and the
			// insert; surface the same generic auth failure, never a 500.
			return domainerrors.ErrTokenInvalid.WrapMessage("post author no longer exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPostCreationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:       data.ID,
		AuthorID: data.AuthorID,
		Title:    data.Title,
		Content:  data.Content,
	}
}
