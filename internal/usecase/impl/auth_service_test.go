package impl

import (
	"context"
	"testing"
	"time"

	"quill/config"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"
	infraauth "quill/internal/infra/auth"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *fakeUserRepo
	tokenSvc service.TokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute}

	tokenSvc, err := infraauth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       infraauth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{service: svc, userRepo: userRepo, tokenSvc: tokenSvc}
}

func registerTestUser(t *testing.T, fx authServiceFixtures) *usecase.RegisterOutput {
	t.Helper()

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "a@b.com",
		Password: "abcdefgh",
		Phone:    "555",
	})
	require.NoError(t, err)
	require.NotNil(t, output.User)

	return output
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	fx := createTestAuthService(t)

	output := registerTestUser(t, fx)

	assert.NotEmpty(t, output.User.ID)
	assert.NotEqual(t, "abcdefgh", output.User.PasswordHash)

	// The stored hash verifies against the original plaintext.
	hasher := infraauth.NewBcryptHasherWithCost(bcrypt.MinCost)
	assert.True(t, hasher.Check("abcdefgh", output.User.PasswordHash))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	registerTestUser(t, fx)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "a@b.com",
		Password: "different",
		Phone:    "556",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	registered := registerTestUser(t, fx)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@b.com",
		Password: "abcdefgh",
	})
	require.NoError(t, err)
	assert.Equal(t, "Login success", output.Message)
	assert.NotEmpty(t, output.Token)

	// The issued token binds the registered user's ID.
	claims, err := fx.tokenSvc.Verify(output.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
}

func TestAuthService_Login_MergedFailureIdentity(t *testing.T) {
	fx := createTestAuthService(t)

	registerTestUser(t, fx)

	// Wrong password for an existing account.
	_, wrongPasswordErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@b.com",
		Password: "wrong",
	})
	require.Error(t, wrongPasswordErr)

	// Login against an email that was never registered.
	_, unknownEmailErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@b.com",
		Password: "abcdefgh",
	})
	require.Error(t, unknownEmailErr)

	// Both paths resolve to the identical client-visible error.
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)

	var first, second domainerrors.AppError
	require.True(t, errors.As(wrongPasswordErr, &first))
	require.True(t, errors.As(unknownEmailErr, &second))
	assert.Equal(t, first.HTTPCode(), second.HTTPCode())
	assert.Equal(t, first.Message(), second.Message())
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.userRepo.findErr = errors.New("connection refused")

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@b.com",
		Password: "abcdefgh",
	})
	assert.Nil(t, output)
	require.Error(t, err)

	// Infrastructure failures are not credential failures.
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
