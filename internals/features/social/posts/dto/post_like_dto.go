package dto

import (
	"time"

	"github.com/google/uuid"

	"soundgalore_backend/internals/features/social/posts/model"
)

type PostLikeDTO struct {
	PostLikeUserID    uuid.UUID `json:"post_like_user_id"`
	PostLikePostID    uuid.UUID `json:"post_like_post_id"`
	PostLikeCreatedAt time.Time `json:"post_like_created_at"`
}

func ToPostLikeDTO(m model.PostLikeModel) PostLikeDTO {
	return PostLikeDTO{
		PostLikeUserID:    m.PostLikeUserID,
		PostLikePostID:    m.PostLikePostID,
		PostLikeCreatedAt: m.PostLikeCreatedAt,
	}
}
