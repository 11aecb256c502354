package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchef/smartchef-v4/backend/internal/service"
	"github.com/smartchef/smartchef-v4/backend/internal/testhelpers"
)

func TestSignupThenLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")
	ctx := context.Background()

	user, token, err := authSvc.Signup(ctx, "Ana", "A@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEmpty(t, token)
	assert.Contains(t, user.Avatar, "ui-avatars.com")
	assert.Equal(t, "none", user.Preferences.Diet)

	// login with different casing resolves to the same account
	loggedIn, loginToken, err := authSvc.Login(ctx, "a@X.COM", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := authSvc.ValidateToken(loginToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := authSvc.Signup(ctx, "Ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = authSvc.Signup(ctx, "Other", "ANA@example.com", "secret2")
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	var count int64
	db.Table("users").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSignupWeakPassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, _, err := authSvc.Signup(context.Background(), "Ana", "ana@example.com", "short")
	assert.ErrorIs(t, err, service.ErrWeakPassword)
}

func TestLoginFailuresCollapse(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := authSvc.Signup(ctx, "Ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	// unknown user and wrong password yield the identical error
	_, _, unknownErr := authSvc.Login(ctx, "nobody@example.com", "secret1")
	_, _, wrongErr := authSvc.Login(ctx, "ana@example.com", "wrong-password")
	assert.ErrorIs(t, unknownErr, service.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, service.ErrInvalidCredentials)
}

func TestValidateTokenExpired(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	claims := service.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = authSvc.ValidateToken(expired)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	other := service.NewAuthService(db, "other-secret")
	_, token, err := other.Signup(context.Background(), "Ana", "ana@example.com", "secret1")
	require.NoError(t, err)

	_, err = authSvc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
