package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "password123", user.HashedPassword)

	token, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "alice", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@example.com", "alice2", "password123")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "alice", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice2@example.com", "alice", "password123")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "alice", "password123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	issuer := NewAuthService(db, "secret-a")
	verifier := NewAuthService(db, "secret-b")

	_, err := issuer.Register(ctx, "alice@example.com", "alice", "password123")
	require.NoError(t, err)

	token, err := issuer.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
