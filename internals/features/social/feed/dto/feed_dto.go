package dto

import (
	"time"

	"github.com/google/uuid"

	helper "soundgalore_backend/internals/helpers"
)

const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)

// FeedQuery is the validated, typed parameter set for one feed page — no
// dynamic query building past this point.
type FeedQuery struct {
	ViewerID uuid.UUID
	Limit    int
	Cursor   *helper.FeedCursor
}

// Normalize clamps the page size into [1, MaxFeedLimit] with the default on
// zero/negative.
func (q *FeedQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = DefaultFeedLimit
	}
	if q.Limit > MaxFeedLimit {
		q.Limit = MaxFeedLimit
	}
}

// AuthorSummary is the denormalized author slice each feed item carries.
type AuthorSummary struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
}

type FeedMediaDTO struct {
	MediaID   uuid.UUID `json:"media_id"`
	MediaType string    `json:"media_type"`
	MediaURL  string    `json:"media_url"`
}

type FeedItemDTO struct {
	PostID        uuid.UUID      `json:"post_id"`
	Author        AuthorSummary  `json:"author"`
	PostText      *string        `json:"post_text"`
	PostCreatedAt time.Time      `json:"post_created_at"`
	Media         []FeedMediaDTO `json:"media"`
	MediaURLs     []string       `json:"media_urls"`
}

// FeedPageDTO: next_cursor is empty when the page came back short, which
// signals end of feed.
type FeedPageDTO struct {
	Posts      []FeedItemDTO `json:"posts"`
	NextCursor string        `json:"next_cursor,omitempty"`
}
