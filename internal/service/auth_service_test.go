package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthService(users *fakeUserRepo) AuthService {
	return NewAuthService(users, testSecret, time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	token, user, err := svc.Register(ctx, "  Alice@Example.COM ", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "alice@example.com", user.Email)
	require.Empty(t, user.PasswordHash)

	// The stored hash is bcrypt, never the plaintext.
	stored, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "password1", stored.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "password1")
	require.NoError(t, err)

	// Same address with different casing still collides.
	_, _, err = svc.Register(ctx, "ALICE@example.com", "password2")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Register_MissingCredentials(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	var vErr *ValidationError
	_, _, err := svc.Register(ctx, "", "password1")
	require.ErrorAs(t, err, &vErr)

	_, _, err = svc.Register(ctx, "alice@example.com", "")
	require.ErrorAs(t, err, &vErr)
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, registered, err := svc.Register(ctx, "alice@example.com", "password1")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "Alice@Example.com", "password1")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.Empty(t, user.PasswordHash)

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, registered.ID, claims.UserID)
	require.Equal(t, "workout-app", claims.Issuer)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "password1")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	// Unknown email and wrong password are indistinguishable.
	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password1")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}
