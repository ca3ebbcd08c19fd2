package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/databases/testdb"
	mediaRepo "soundgalore_backend/internals/features/social/media/repository"
	"soundgalore_backend/internals/features/social/posts/model"
	userModel "soundgalore_backend/internals/features/users/user/model"
)

func seedUser(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	u := userModel.UserModel{UserName: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func strPtr(s string) *string { return &s }

/* ==============================
   Posts
============================== */

func TestCreatePost_TextOnly(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	post, err := CreatePost(db, alice, strPtr("hello"), nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, post.PostID)
	assert.Equal(t, alice, post.PostUserID)
	assert.Equal(t, "hello", *post.PostText)
	assert.False(t, post.PostIsDeleted)
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	db := testdb.Open(t)

	_, err := CreatePost(db, uuid.New(), strPtr("hello"), nil, nil)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCreatePost_WithMedia(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	img, err := mediaRepo.AttachMedia(db, alice, "image", "https://cdn.example/a.png", "a.png", nil)
	require.NoError(t, err)
	audio, err := mediaRepo.AttachMedia(db, alice, "audio", "https://cdn.example/a.mp3", "a.mp3", nil)
	require.NoError(t, err)

	post, err := CreatePost(db, alice, nil, &img.MediaID, &audio.MediaID)
	require.NoError(t, err)
	assert.Equal(t, img.MediaID, *post.PostImageMediaID)
	assert.Equal(t, audio.MediaID, *post.PostAudioMediaID)
}

func TestCreatePost_MediaOwnership(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	img, err := mediaRepo.AttachMedia(db, bob, "image", "https://cdn.example/b.png", "b.png", nil)
	require.NoError(t, err)

	_, err = CreatePost(db, alice, nil, &img.MediaID, nil)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindIntegrity))
}

func TestCreatePost_MediaKindMismatch(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	audio, err := mediaRepo.AttachMedia(db, alice, "audio", "https://cdn.example/a.mp3", "a.mp3", nil)
	require.NoError(t, err)

	// Audio media cannot fill the image slot
	_, err = CreatePost(db, alice, nil, &audio.MediaID, nil)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindIntegrity))
}

func TestCreatePost_MediaMissing(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	ghost := uuid.New()
	_, err := CreatePost(db, alice, nil, &ghost, nil)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestSoftDeletePost(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	post, err := CreatePost(db, alice, strPtr("bye"), nil, nil)
	require.NoError(t, err)

	// Only the author may delete
	err = SoftDeletePost(db, post.PostID, bob)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindAuth))

	require.NoError(t, SoftDeletePost(db, post.PostID, alice))

	got, err := GetPost(db, post.PostID)
	require.NoError(t, err)
	assert.True(t, got.PostIsDeleted)

	// Deleting again is a no-op, not an error
	require.NoError(t, SoftDeletePost(db, post.PostID, alice))

	err = SoftDeletePost(db, uuid.New(), alice)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestListPostsByAuthor_Keyset(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		p := model.PostModel{
			PostUserID:    alice,
			PostText:      strPtr("post"),
			PostCreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&p).Error)
		ids = append(ids, p.PostID)
	}

	// Newest first
	page1, err := ListPostsByAuthor(db, alice, 2, nil, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, ids[4], page1[0].PostID)
	assert.Equal(t, ids[3], page1[1].PostID)

	// Resume past the boundary, no duplicates and no gaps
	last := page1[1]
	page2, err := ListPostsByAuthor(db, alice, 2, &last.PostCreatedAt, last.PostID)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, ids[2], page2[0].PostID)
	assert.Equal(t, ids[1], page2[1].PostID)

	last = page2[1]
	page3, err := ListPostsByAuthor(db, alice, 2, &last.PostCreatedAt, last.PostID)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, ids[0], page3[0].PostID)
}

func TestListPostsByAuthor_SkipsDeleted(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	keep, err := CreatePost(db, alice, strPtr("keep"), nil, nil)
	require.NoError(t, err)
	gone, err := CreatePost(db, alice, strPtr("gone"), nil, nil)
	require.NoError(t, err)
	require.NoError(t, SoftDeletePost(db, gone.PostID, alice))

	rows, err := ListPostsByAuthor(db, alice, 10, nil, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, keep.PostID, rows[0].PostID)
}

/* ==============================
   Likes
============================== */

func TestToggleLike_Flips(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	post, err := CreatePost(db, bob, strPtr("like me"), nil, nil)
	require.NoError(t, err)

	liked, err := ToggleLike(db, alice, post.PostID)
	require.NoError(t, err)
	assert.True(t, liked)

	n, err := CountLikes(db, post.PostID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	on, err := LikeStatus(db, alice, post.PostID)
	require.NoError(t, err)
	assert.True(t, on)

	liked, err = ToggleLike(db, alice, post.PostID)
	require.NoError(t, err)
	assert.False(t, liked)

	n, err = CountLikes(db, post.PostID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestToggleLike_DeletedPost(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	post, err := CreatePost(db, alice, strPtr("gone"), nil, nil)
	require.NoError(t, err)
	require.NoError(t, SoftDeletePost(db, post.PostID, alice))

	_, err = ToggleLike(db, alice, post.PostID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestListLikes(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	post, err := CreatePost(db, alice, strPtr("popular"), nil, nil)
	require.NoError(t, err)

	_, err = ToggleLike(db, bob, post.PostID)
	require.NoError(t, err)
	_, err = ToggleLike(db, carol, post.PostID)
	require.NoError(t, err)

	rows, total, err := ListLikes(db, post.PostID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)
}

/* ==============================
   Comments
============================== */

func TestCreateComment(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	post, err := CreatePost(db, alice, strPtr("discuss"), nil, nil)
	require.NoError(t, err)

	top, err := CreateComment(db, post.PostID, bob, "nice one", nil)
	require.NoError(t, err)
	assert.Nil(t, top.CommentParentID)

	reply, err := CreateComment(db, post.PostID, alice, "thanks", &top.CommentID)
	require.NoError(t, err)
	require.NotNil(t, reply.CommentParentID)
	assert.Equal(t, top.CommentID, *reply.CommentParentID)

	rows, err := ListComments(db, post.PostID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Oldest first
	assert.Equal(t, top.CommentID, rows[0].CommentID)
}

func TestCreateComment_ParentOtherPost(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	p1, err := CreatePost(db, alice, strPtr("one"), nil, nil)
	require.NoError(t, err)
	p2, err := CreatePost(db, alice, strPtr("two"), nil, nil)
	require.NoError(t, err)

	parent, err := CreateComment(db, p1.PostID, alice, "on p1", nil)
	require.NoError(t, err)

	_, err = CreateComment(db, p2.PostID, alice, "cross-thread", &parent.CommentID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindIntegrity))
}

func TestCreateComment_DeletedPost(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	post, err := CreatePost(db, alice, strPtr("gone"), nil, nil)
	require.NoError(t, err)
	require.NoError(t, SoftDeletePost(db, post.PostID, alice))

	_, err = CreateComment(db, post.PostID, alice, "too late", nil)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
