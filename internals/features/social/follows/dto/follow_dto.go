package dto

import (
	"time"

	"github.com/google/uuid"

	"soundgalore_backend/internals/features/social/follows/model"
)

// ============================
// Request DTO
// ============================
type FollowRequest struct {
	FolloweeID uuid.UUID `json:"followee_id" validate:"required"`
}

// ============================
// Response DTO
// ============================
type FollowDTO struct {
	FollowerID uuid.UUID `json:"follow_follower_id"`
	FolloweeID uuid.UUID `json:"follow_followee_id"`
	CreatedAt  time.Time `json:"follow_created_at"`
}

func ToFollowDTO(m model.FollowModel) FollowDTO {
	return FollowDTO{
		FollowerID: m.FollowerID,
		FolloweeID: m.FolloweeID,
		CreatedAt:  m.CreatedAt,
	}
}
