package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		userRepo: params.UserRepo,
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost writes a post for the authenticated author. The author must
// still exist: a verified token whose subject has since been deleted is an
// authorization failure, not a server error.
func (srv *postService) CreatePost(ctx context.Context, authorID uuid.UUID, input *usecase.CreatePostInput) (*usecase.CreatePostOutput, error) {
	author, err := srv.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Post rejected, token subject no longer exists", slog.Any("authorID", authorID))

			return nil, domainerrors.ErrTokenInvalid.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load post author")
	}

	post := &entity.Post{
		AuthorID: author.ID,
		Title:    input.Title,
		Content:  input.Content,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Warn("Failed to create post", slog.Any("authorID", author.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Debug("Post created", slog.Any("postID", post.ID), slog.Any("authorID", author.ID))

	return &usecase.CreatePostOutput{
		Message: "Post created",
		Post:    post,
	}, nil
}
