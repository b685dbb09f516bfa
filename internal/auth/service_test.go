package auth

import (
	"context"
	"testing"

	"github.com/faraday-ai/faraday-web/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	svc := NewService(queries)
	t.Cleanup(svc.Stop)
	return svc
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Teacher@District.example", "correct horse battery", "Pat Teacher")
	require.NoError(t, err)
	assert.Equal(t, "teacher@district.example", user.Email, "email should be normalized to lower case")
	assert.NotEqual(t, "correct horse battery", user.PasswordHash, "password must never be stored in the clear")

	got, err := svc.Authenticate(ctx, "teacher@district.example", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "teacher@district.example", "correct horse battery", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "TEACHER@district.example", "other password", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "teacher@district.example", "correct horse battery", "")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "teacher@district.example", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "nobody@district.example", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials,
		"unknown email and wrong password must be indistinguishable")
}

func TestGetUserCaches(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "teacher@district.example", "correct horse battery", "")
	require.NoError(t, err)

	first, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)

	second, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Same(t, first, second, "second lookup should come from the cache")

	svc.InvalidateCache(user.ID)
	third, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
}
