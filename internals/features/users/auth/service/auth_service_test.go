package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/configs"
	"soundgalore_backend/internals/databases/testdb"
)

func init() {
	configs.JWTSecret = "test-jwt-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
}

func TestRegisterAndVerifyCredentials(t *testing.T) {
	db := testdb.Open(t)

	u, err := RegisterUser(db, "alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	// Stored value is a hash, never the raw secret
	assert.NotEqual(t, "s3cret-pass", u.Password)

	got, err := VerifyCredentials(db, "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = VerifyCredentials(db, "alice", "wrong-pass")
	assert.True(t, apperr.Is(err, apperr.KindAuth))

	// Unknown username reads the same as a wrong password
	_, err = VerifyCredentials(db, "ghost", "s3cret-pass")
	assert.True(t, apperr.Is(err, apperr.KindAuth))
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	db := testdb.Open(t)

	_, err := RegisterUser(db, "alice", "alice@example.com", "pass-one")
	require.NoError(t, err)

	_, err = RegisterUser(db, "alice", "other@example.com", "pass-two")
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestRotatePassword(t *testing.T) {
	db := testdb.Open(t)

	u, err := RegisterUser(db, "alice", "alice@example.com", "old-pass")
	require.NoError(t, err)

	err = RotatePassword(db, u, "wrong", "new-pass")
	assert.True(t, apperr.Is(err, apperr.KindAuth))

	require.NoError(t, RotatePassword(db, u, "old-pass", "new-pass"))

	_, err = VerifyCredentials(db, "alice", "new-pass")
	require.NoError(t, err)
	_, err = VerifyCredentials(db, "alice", "old-pass")
	assert.True(t, apperr.Is(err, apperr.KindAuth))
}

func TestAccessToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	raw, err := CreateAccessToken(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims["id"])
	assert.Equal(t, "alice", claims["user_name"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}

func TestBlacklistToken(t *testing.T) {
	db := testdb.Open(t)

	raw, err := CreateAccessToken(uuid.New(), "alice")
	require.NoError(t, err)

	on, err := IsTokenBlacklisted(db, raw)
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, BlacklistToken(db, raw, time.Now().Add(AccessTTL)))

	on, err = IsTokenBlacklisted(db, raw)
	require.NoError(t, err)
	assert.True(t, on)

	// Revoking twice is fine, the token is simply already dead
	require.NoError(t, BlacklistToken(db, raw, time.Now().Add(AccessTTL)))
}

func TestRevokeAccessToken(t *testing.T) {
	db := testdb.Open(t)

	raw, err := CreateAccessToken(uuid.New(), "alice")
	require.NoError(t, err)

	require.NoError(t, RevokeAccessToken(db, raw))

	on, err := IsTokenBlacklisted(db, raw)
	require.NoError(t, err)
	assert.True(t, on)
}
