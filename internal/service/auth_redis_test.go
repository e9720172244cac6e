package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodfolio/backend/internal/service"
	"github.com/foodfolio/backend/internal/testhelpers"
)

func TestRevokedTokenIsRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	db := testhelpers.SetupTestDatabase(t)
	redisClient := testhelpers.SetupRedis(t)
	svc := service.NewAuthService(db, redisClient, "test-secret")
	ctx := context.Background()

	user, err := svc.Signup(ctx, signupRequest("revoke-redis@x.com", "password123"))
	require.NoError(t, err)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, claims))

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, service.ErrTokenRevoked)

	// Other sessions for the same user stay valid.
	fresh, err := svc.GenerateToken(user)
	require.NoError(t, err)
	freshClaims, err := svc.ValidateToken(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, freshClaims.UserID)
}
