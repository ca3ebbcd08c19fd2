// file: internals/features/social/feed/service/feed_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/features/social/feed/dto"
	mediaRepo "soundgalore_backend/internals/features/social/media/repository"
	postModel "soundgalore_backend/internals/features/social/posts/model"
	userRepo "soundgalore_backend/internals/features/users/user/repository"
	helper "soundgalore_backend/internals/helpers"
)

// FeedService composes the follow graph and the content store into one
// reverse-chronological timeline. It keeps no state of its own: the cursor
// is entirely client-supplied, so any number of readers can page
// concurrently without coordination.
type FeedService struct {
	DB *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{DB: db}
}

// GetFeed runs the keyset-paged join:
//
//	posts ⋈ follows ON followee = author
//	WHERE follower = viewer AND NOT deleted AND (created_at, id) < cursor
//	ORDER BY created_at DESC, id DESC LIMIT n
//
// Keyset paging (not OFFSET) is a correctness requirement: offsets drift
// when new posts land between page fetches. The id component of the order
// and cursor fixes the tie-break for posts sharing a timestamp, so ties at
// the page boundary are neither repeated nor dropped. Author and media
// enrichment is batched — two IN-queries per page, never one per row.
func (s *FeedService) GetFeed(q dto.FeedQuery) (*dto.FeedPageDTO, error) {
	q.Normalize()

	ok, err := userRepo.UserExists(s.DB, q.ViewerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("viewer not found")
	}

	tx := s.DB.Model(&postModel.PostModel{}).
		Joins("JOIN follows ON follows.follow_followee_id = posts.post_user_id").
		Where("follows.follow_follower_id = ?", q.ViewerID).
		Where("posts.post_is_deleted = ?", false)

	if q.Cursor != nil {
		// strict boundary: the cursor row itself is excluded. A bare
		// timestamp cursor carries a nil id, which degrades this to a plain
		// created_at comparison.
		tx = tx.Where(
			"posts.post_created_at < ? OR (posts.post_created_at = ? AND posts.post_id < ?)",
			q.Cursor.CreatedAt, q.Cursor.CreatedAt, q.Cursor.ID,
		)
	}

	var rows []postModel.PostModel
	if err := tx.
		Order("posts.post_created_at DESC, posts.post_id DESC").
		Limit(q.Limit).
		Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	page, err := s.enrich(rows)
	if err != nil {
		return nil, err
	}

	if len(rows) == q.Limit {
		last := rows[len(rows)-1]
		page.NextCursor = helper.EncodeFeedCursor(last.PostCreatedAt, last.PostID)
	}
	return page, nil
}

// enrich attaches author summaries and media URLs with one batched lookup
// per entity kind.
func (s *FeedService) enrich(rows []postModel.PostModel) (*dto.FeedPageDTO, error) {
	authorIDs := make([]uuid.UUID, 0, len(rows))
	mediaIDs := make([]uuid.UUID, 0, len(rows)*2)
	seenAuthor := make(map[uuid.UUID]bool, len(rows))
	for _, p := range rows {
		if !seenAuthor[p.PostUserID] {
			seenAuthor[p.PostUserID] = true
			authorIDs = append(authorIDs, p.PostUserID)
		}
		if p.PostImageMediaID != nil {
			mediaIDs = append(mediaIDs, *p.PostImageMediaID)
		}
		if p.PostAudioMediaID != nil {
			mediaIDs = append(mediaIDs, *p.PostAudioMediaID)
		}
	}

	authors, err := userRepo.FindUsersByIDs(s.DB, authorIDs)
	if err != nil {
		return nil, err
	}
	media, err := mediaRepo.FindMediaByIDs(s.DB, mediaIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FeedItemDTO, 0, len(rows))
	for _, p := range rows {
		item := dto.FeedItemDTO{
			PostID:        p.PostID,
			PostText:      p.PostText,
			PostCreatedAt: p.PostCreatedAt,
			Media:         []dto.FeedMediaDTO{},
			MediaURLs:     []string{},
		}
		if a, ok := authors[p.PostUserID]; ok {
			item.Author = dto.AuthorSummary{UserID: a.ID, UserName: a.UserName}
		}
		for _, mid := range []*uuid.UUID{p.PostImageMediaID, p.PostAudioMediaID} {
			if mid == nil {
				continue
			}
			if m, ok := media[*mid]; ok {
				item.Media = append(item.Media, dto.FeedMediaDTO{
					MediaID:   m.MediaID,
					MediaType: m.MediaType,
					MediaURL:  m.MediaURL,
				})
				item.MediaURLs = append(item.MediaURLs, m.MediaURL)
			}
		}
		items = append(items, item)
	}
	return &dto.FeedPageDTO{Posts: items}, nil
}
