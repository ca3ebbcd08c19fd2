package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"soundgalore_backend/internals/features/social/media/model"
)

// ============================
// Request DTO
// ============================

// AttachMediaRequest carries what the external upload collaborator produced:
// a storage URL plus the original filename. The optional meta blob (width,
// height, duration…) is stored as-is for clients.
type AttachMediaRequest struct {
	MediaType     string         `json:"media_type" validate:"required,oneof=image audio video"`
	MediaURL      string         `json:"media_url" validate:"required,max=255"`
	MediaFilename string         `json:"media_filename" validate:"required,max=255"`
	MediaMeta     datatypes.JSON `json:"media_meta" validate:"omitempty"`
}

// ============================
// Response DTO
// ============================
type MediaDTO struct {
	MediaID        uuid.UUID      `json:"media_id"`
	MediaUserID    uuid.UUID      `json:"media_user_id"`
	MediaType      string         `json:"media_type"`
	MediaURL       string         `json:"media_url"`
	MediaFilename  string         `json:"media_filename"`
	MediaMeta      datatypes.JSON `json:"media_meta,omitempty"`
	MediaCreatedAt time.Time      `json:"media_created_at"`
}

func ToMediaDTO(m model.MediaModel) MediaDTO {
	return MediaDTO{
		MediaID:        m.MediaID,
		MediaUserID:    m.MediaUserID,
		MediaType:      m.MediaType,
		MediaURL:       m.MediaURL,
		MediaFilename:  m.MediaFilename,
		MediaMeta:      m.MediaMeta,
		MediaCreatedAt: m.MediaCreatedAt,
	}
}
