package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firepost/backend/internal/apperr"
	"github.com/firepost/backend/internal/auth"
	"github.com/firepost/backend/internal/repository"
	"github.com/firepost/backend/internal/store"
)

func newUserService() *UserService {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewUserService(repository.NewUserRepository(store.NewMemory()), tokens)
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newUserService()

	res, err := svc.Signup(ctx, "a@b.com", "Password123")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", res.ID)
	assert.Equal(t, "a@b.com", res.Email)
	assert.Positive(t, res.CreatedAt)
	require.NotEmpty(t, res.Token)

	email, ok := svc.VerifyToken(res.Token)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", email)
}

func TestSignupConflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newUserService()

	_, err := svc.Signup(ctx, "a@b.com", "Password123")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "a@b.com", "OtherPassword1")
	appErr, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, "Email already in use", appErr.Message)
}

func TestSignupOverlongPasswordIsValidationError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newUserService()

	// 40 characters but 80 bytes, so it passes the character-counting
	// schema yet exceeds bcrypt's 72-byte input limit
	password := strings.Repeat("ä", 40)

	_, err := svc.Signup(ctx, "a@b.com", password)
	appErr, ok := apperr.From(err)
	require.True(t, ok, "expected an operational error, got %v", err)
	assert.Equal(t, apperr.KindValidation, appErr.Kind)

	// nothing was persisted
	user, err := svc.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLoginSuccessKeepsOriginalCreatedAt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newUserService()

	signedUp, err := svc.Signup(ctx, "a@b.com", "Password123")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "a@b.com", "Password123")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", res.Email)
	assert.Equal(t, signedUp.CreatedAt, res.CreatedAt)
	assert.NotEmpty(t, res.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newUserService()

	_, err := svc.Signup(ctx, "a@b.com", "Password123")
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(ctx, "a@b.com", "WrongPassword1")
	_, noUserErr := svc.Login(ctx, "nobody@b.com", "Password123")

	wrongPass, ok := apperr.From(wrongPassErr)
	require.True(t, ok)
	noUser, ok := apperr.From(noUserErr)
	require.True(t, ok)

	assert.Equal(t, apperr.KindUnauthorized, wrongPass.Kind)
	assert.Equal(t, apperr.KindUnauthorized, noUser.Kind)
	// same message either way, so responses leak nothing
	assert.Equal(t, wrongPass.Message, noUser.Message)
}

func TestGetByEmailSanitizesKeyAndHidesNothingStored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newUserService()

	absent, err := svc.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Nil(t, absent)

	_, err = svc.Signup(ctx, "a@b.com", "Password123")
	require.NoError(t, err)

	user, err := svc.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEmpty(t, user.Password)
	assert.NotEqual(t, "Password123", user.Password, "stored password must be hashed")
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newUserService()
	_, ok := svc.VerifyToken("not.a.token")
	assert.False(t, ok)
}
