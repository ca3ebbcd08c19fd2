package dto

import (
	"time"

	"github.com/google/uuid"

	"soundgalore_backend/internals/features/social/posts/model"
)

// ============================
// Request DTO
// ============================

// CreatePostRequest: text and attachments are individually optional, but a
// post with neither text nor media is rejected at validation time.
type CreatePostRequest struct {
	PostText         *string    `json:"post_text" validate:"omitempty,max=10000"`
	PostImageMediaID *uuid.UUID `json:"post_image_media_id"`
	PostAudioMediaID *uuid.UUID `json:"post_audio_media_id"`
}

func (r CreatePostRequest) Empty() bool {
	hasText := r.PostText != nil && *r.PostText != ""
	return !hasText && r.PostImageMediaID == nil && r.PostAudioMediaID == nil
}

// ============================
// Response DTO
// ============================
type PostDTO struct {
	PostID           uuid.UUID  `json:"post_id"`
	PostUserID       uuid.UUID  `json:"post_user_id"`
	PostText         *string    `json:"post_text"`
	PostImageMediaID *uuid.UUID `json:"post_image_media_id"`
	PostAudioMediaID *uuid.UUID `json:"post_audio_media_id"`
	PostIsDeleted    bool       `json:"post_is_deleted"`
	PostCreatedAt    time.Time  `json:"post_created_at"`
}

func ToPostDTO(m model.PostModel) PostDTO {
	return PostDTO{
		PostID:           m.PostID,
		PostUserID:       m.PostUserID,
		PostText:         m.PostText,
		PostImageMediaID: m.PostImageMediaID,
		PostAudioMediaID: m.PostAudioMediaID,
		PostIsDeleted:    m.PostIsDeleted,
		PostCreatedAt:    m.PostCreatedAt,
	}
}
