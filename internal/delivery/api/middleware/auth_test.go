package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService lets each test dictate the outcome of Verify.
type stubTokenService struct {
	claims *service.Claims
	err    error
}

func (s *stubTokenService) Issue(uuid.UUID) (string, error) {
	return "", nil
}

func (s *stubTokenService) Verify(string) (*service.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.claims, nil
}

func invokeAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(tokenSvc)
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	return c, m.Authenticate(next)(c)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	t.Parallel()

	_, err := invokeAuthenticate(t, &stubTokenService{}, "")
	assert.ErrorIs(t, err, domainerrors.ErrAuthHeaderMissing)
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	t.Parallel()

	_, err := invokeAuthenticate(t, &stubTokenService{}, "Token abc123")
	assert.ErrorIs(t, err, domainerrors.ErrAuthHeaderMalformed)
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	t.Parallel()

	_, err := invokeAuthenticate(t, &stubTokenService{}, "Bearer ")
	assert.ErrorIs(t, err, domainerrors.ErrAuthHeaderMalformed)
}

func TestAuthenticate_BareSchemeWithoutToken(t *testing.T) {
	t.Parallel()

	_, err := invokeAuthenticate(t, &stubTokenService{}, "Bearer")
	assert.ErrorIs(t, err, domainerrors.ErrAuthHeaderMalformed)
}

func TestAuthenticate_ExpiredTokenPassesThrough(t *testing.T) {
	t.Parallel()

	tokenSvc := &stubTokenService{err: domainerrors.ErrTokenExpired.WrapMessage("token past its expiry")}
	_, err := invokeAuthenticate(t, tokenSvc, "Bearer some.jwt.token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthenticate_InvalidTokenPassesThrough(t *testing.T) {
	t.Parallel()

	tokenSvc := &stubTokenService{err: domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token structure")}
	_, err := invokeAuthenticate(t, tokenSvc, "Bearer not.a.jwt")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthenticate_ValidTokenSetsUserID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokenSvc := &stubTokenService{claims: &service.Claims{UserID: userID}}

	c, err := invokeAuthenticate(t, tokenSvc, "Bearer good.jwt.token")
	require.NoError(t, err)

	gotID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
}

func TestGetUserID_Unset(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)
}
