package dto

import (
	"time"

	"github.com/google/uuid"

	"soundgalore_backend/internals/features/social/posts/model"
)

// ============================
// Request DTO
// ============================
type CreateCommentRequest struct {
	CommentBody     string     `json:"comment_body" validate:"required,max=5000"`
	CommentParentID *uuid.UUID `json:"comment_parent_id"`
}

// ============================
// Response DTO
// ============================
type CommentDTO struct {
	CommentID        uuid.UUID  `json:"comment_id"`
	CommentPostID    uuid.UUID  `json:"comment_post_id"`
	CommentUserID    uuid.UUID  `json:"comment_user_id"`
	CommentBody      string     `json:"comment_body"`
	CommentParentID  *uuid.UUID `json:"comment_parent_id"`
	CommentCreatedAt time.Time  `json:"comment_created_at"`
}

func ToCommentDTO(m model.CommentModel) CommentDTO {
	return CommentDTO{
		CommentID:        m.CommentID,
		CommentPostID:    m.CommentPostID,
		CommentUserID:    m.CommentUserID,
		CommentBody:      m.CommentBody,
		CommentParentID:  m.CommentParentID,
		CommentCreatedAt: m.CommentCreatedAt,
	}
}
