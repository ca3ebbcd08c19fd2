package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/databases/testdb"
	"soundgalore_backend/internals/features/social/feed/dto"
	followRepo "soundgalore_backend/internals/features/social/follows/repository"
	mediaRepo "soundgalore_backend/internals/features/social/media/repository"
	postModel "soundgalore_backend/internals/features/social/posts/model"
	postRepo "soundgalore_backend/internals/features/social/posts/repository"
	userModel "soundgalore_backend/internals/features/users/user/model"
	helper "soundgalore_backend/internals/helpers"
)

func seedUser(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	u := userModel.UserModel{UserName: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func seedPost(t *testing.T, db *gorm.DB, author uuid.UUID, text string, at time.Time) uuid.UUID {
	t.Helper()
	p := postModel.PostModel{PostUserID: author, PostText: &text, PostCreatedAt: at}
	require.NoError(t, db.Create(&p).Error)
	return p.PostID
}

func postIDs(page *dto.FeedPageDTO) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(page.Posts))
	for _, it := range page.Posts {
		out = append(out, it.PostID)
	}
	return out
}

func TestGetFeed_ReverseChronological(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := followRepo.Follow(db, alice, bob)
	require.NoError(t, err)

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	p1 := seedPost(t, db, bob, "P1", base)
	p2 := seedPost(t, db, bob, "P2", base.Add(1*time.Minute))
	p3 := seedPost(t, db, bob, "P3", base.Add(2*time.Minute))

	page, err := NewFeedService(db).GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{p3, p2, p1}, postIDs(page))
	assert.Empty(t, page.NextCursor)
	assert.Equal(t, "bob", page.Posts[0].Author.UserName)
}

func TestGetFeed_OnlyFollowedAuthors(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	_, err := followRepo.Follow(db, alice, bob)
	require.NoError(t, err)

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	fromBob := seedPost(t, db, bob, "from bob", base)
	seedPost(t, db, carol, "from carol", base.Add(time.Minute))
	seedPost(t, db, alice, "own post", base.Add(2*time.Minute))

	page, err := NewFeedService(db).GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 10})
	require.NoError(t, err)

	// Neither the unfollowed author nor the viewer's own posts appear
	assert.Equal(t, []uuid.UUID{fromBob}, postIDs(page))
}

func TestGetFeed_ExcludesSoftDeleted(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := followRepo.Follow(db, alice, bob)
	require.NoError(t, err)

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	keep := seedPost(t, db, bob, "keep", base)
	gone := seedPost(t, db, bob, "gone", base.Add(time.Minute))
	require.NoError(t, postRepo.SoftDeletePost(db, gone, bob))

	page, err := NewFeedService(db).GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{keep}, postIDs(page))
}

func TestGetFeed_CursorPaging(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := followRepo.Follow(db, alice, bob)
	require.NoError(t, err)

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	var all []uuid.UUID
	for i := 0; i < 5; i++ {
		all = append(all, seedPost(t, db, bob, "post", base.Add(time.Duration(i)*time.Minute)))
	}

	svc := NewFeedService(db)

	page1, err := svc.GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1.Posts, 2)
	require.NotEmpty(t, page1.NextCursor)
	assert.Equal(t, []uuid.UUID{all[4], all[3]}, postIDs(page1))

	cur, err := helper.ParseFeedCursor(page1.NextCursor)
	require.NoError(t, err)
	page2, err := svc.GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 2, Cursor: cur})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{all[2], all[1]}, postIDs(page2))

	cur, err = helper.ParseFeedCursor(page2.NextCursor)
	require.NoError(t, err)
	page3, err := svc.GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 2, Cursor: cur})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{all[0]}, postIDs(page3))
	assert.Empty(t, page3.NextCursor)
}

func TestGetFeed_BareTimestampCursor(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := followRepo.Follow(db, alice, bob)
	require.NoError(t, err)

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	p1 := seedPost(t, db, bob, "P1", base)
	seedPost(t, db, bob, "P2", base.Add(1*time.Minute))
	seedPost(t, db, bob, "P3", base.Add(2*time.Minute))

	// A cursor made from P2's timestamp with no id keeps everything strictly
	// older than P2.
	cur, err := helper.ParseFeedCursor(base.Add(1 * time.Minute).Format(time.RFC3339Nano))
	require.NoError(t, err)

	page, err := NewFeedService(db).GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 10, Cursor: cur})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{p1}, postIDs(page))
}

func TestGetFeed_TieBreakStable(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := followRepo.Follow(db, alice, bob)
	require.NoError(t, err)

	// Three posts sharing one timestamp
	at := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	var all []uuid.UUID
	for i := 0; i < 3; i++ {
		all = append(all, seedPost(t, db, bob, "tied", at))
	}

	svc := NewFeedService(db)
	seen := map[uuid.UUID]bool{}

	page1, err := svc.GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1.Posts, 2)
	for _, id := range postIDs(page1) {
		assert.False(t, seen[id], "no duplicates across pages")
		seen[id] = true
	}

	cur, err := helper.ParseFeedCursor(page1.NextCursor)
	require.NoError(t, err)
	page2, err := svc.GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 2, Cursor: cur})
	require.NoError(t, err)
	for _, id := range postIDs(page2) {
		assert.False(t, seen[id], "no duplicates across pages")
		seen[id] = true
	}

	// Every tied post shows up exactly once
	assert.Len(t, seen, len(all))
}

func TestGetFeed_UnknownViewer(t *testing.T) {
	db := testdb.Open(t)

	_, err := NewFeedService(db).GetFeed(dto.FeedQuery{ViewerID: uuid.New(), Limit: 10})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestGetFeed_MediaEnrichment(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	_, err := followRepo.Follow(db, alice, bob)
	require.NoError(t, err)

	img, err := mediaRepo.AttachMedia(db, bob, "image", "https://cdn.example/x.png", "x.png", nil)
	require.NoError(t, err)
	_, err = postRepo.CreatePost(db, bob, nil, &img.MediaID, nil)
	require.NoError(t, err)

	page, err := NewFeedService(db).GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)

	require.Len(t, page.Posts[0].Media, 1)
	assert.Equal(t, "image", page.Posts[0].Media[0].MediaType)
	assert.Equal(t, []string{"https://cdn.example/x.png"}, page.Posts[0].MediaURLs)
}

func TestGetFeed_EmptyForNewUser(t *testing.T) {
	db := testdb.Open(t)
	alice := seedUser(t, db, "alice")

	page, err := NewFeedService(db).GetFeed(dto.FeedQuery{ViewerID: alice, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Empty(t, page.NextCursor)
}
