package impl

import (
	"context"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service  usecase.PostUsecase
	userRepo *fakeUserRepo
	postRepo *fakePostRepo
}

func createTestPostService(t *testing.T) postServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	svc := NewPostService(PostServiceParams{
		UserRepo: userRepo,
		PostRepo: postRepo,
		Logger:   newDiscardLogger(),
	})

	return postServiceFixtures{service: svc, userRepo: userRepo, postRepo: postRepo}
}

func createTestAuthor(t *testing.T, repo *fakeUserRepo) *entity.User {
	t.Helper()

	author := &entity.User{Email: "author@b.com", PasswordHash: "x", Phone: "555"}
	require.NoError(t, repo.Create(context.Background(), author))

	return author
}

func TestPostService_CreatePost_Success(t *testing.T) {
	fx := createTestPostService(t)
	author := createTestAuthor(t, fx.userRepo)

	output, err := fx.service.CreatePost(context.Background(), author.ID, &usecase.CreatePostInput{
		Title:   "First post",
		Content: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Post created", output.Message)
	assert.Equal(t, author.ID, output.Post.AuthorID)
	assert.NotEmpty(t, output.Post.ID)
	assert.Len(t, fx.postRepo.posts, 1)
}

func TestPostService_CreatePost_AuthorGone(t *testing.T) {
	fx := createTestPostService(t)
	author := createTestAuthor(t, fx.userRepo)

	// The account disappears after the token was issued.
	fx.userRepo.delete(author.ID)

	output, err := fx.service.CreatePost(context.Background(), author.ID, &usecase.CreatePostInput{
		Title:   "Orphaned",
		Content: "Should not land",
	})
	assert.Nil(t, output)

	// Generic unauthorized, never a 500 and never a silent success.
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Empty(t, fx.postRepo.posts)
}

func TestPostService_CreatePost_UnknownAuthorID(t *testing.T) {
	fx := createTestPostService(t)

	output, err := fx.service.CreatePost(context.Background(), uuid.New(), &usecase.CreatePostInput{
		Title:   "Ghost",
		Content: "No author",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestPostService_CreatePost_StorageFailure(t *testing.T) {
	fx := createTestPostService(t)
	author := createTestAuthor(t, fx.userRepo)

	fx.postRepo.createErr = domainerrors.NewDatabaseExecuteError(assert.AnError, "insert failed")

	output, err := fx.service.CreatePost(context.Background(), author.ID, &usecase.CreatePostInput{
		Title:   "Doomed",
		Content: "Write fails",
	})
	assert.Nil(t, output)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
