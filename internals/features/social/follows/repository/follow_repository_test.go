package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/databases/testdb"
	"soundgalore_backend/internals/features/social/follows/model"
	userModel "soundgalore_backend/internals/features/users/user/model"
)

func seedUser(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	u := userModel.UserModel{UserName: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func TestFollow_CreatesEdge(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	edge, err := Follow(db, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, alice, edge.FollowerID)
	assert.Equal(t, bob, edge.FolloweeID)

	ok, err := ExistsEdge(db, alice, bob)
	require.NoError(t, err)
	assert.True(t, ok)

	// Direction matters
	ok, err = ExistsEdge(db, bob, alice)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFollow_Self(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	_, err := Follow(db, alice, alice)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindIntegrity))
}

func TestFollow_UnknownUsers(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	_, err := Follow(db, alice, uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = Follow(db, uuid.New(), alice)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestFollow_Duplicate(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := Follow(db, alice, bob)
	require.NoError(t, err)

	_, err = Follow(db, alice, bob)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	// Still exactly one edge
	var count int64
	require.NoError(t, db.Model(&model.FollowModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUnfollow(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := Follow(db, alice, bob)
	require.NoError(t, err)

	require.NoError(t, Unfollow(db, alice, bob))

	ok, err := ExistsEdge(db, alice, bob)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing edge reports not found
	err = Unfollow(db, alice, bob)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestFollowLists(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	_, err := Follow(db, alice, bob)
	require.NoError(t, err)
	_, err = Follow(db, alice, carol)
	require.NoError(t, err)
	_, err = Follow(db, carol, alice)
	require.NoError(t, err)

	followees, err := ListFollowees(db, alice)
	require.NoError(t, err)
	require.Len(t, followees, 2)
	names := []string{followees[0].UserName, followees[1].UserName}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	followers, err := ListFollowers(db, alice)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "carol", followers[0].UserName)

	nFollowees, err := CountFollowees(db, alice)
	require.NoError(t, err)
	assert.EqualValues(t, 2, nFollowees)

	nFollowers, err := CountFollowers(db, alice)
	require.NoError(t, err)
	assert.EqualValues(t, 1, nFollowers)
}
