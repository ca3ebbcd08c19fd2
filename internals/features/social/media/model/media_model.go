package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "soundgalore_backend/internals/features/users/user/model"
)

const (
	MediaTypeImage = "image"
	MediaTypeAudio = "audio"
	MediaTypeVideo = "video"
)

// MediaModel holds URL metadata only — the bytes live with the upload
// collaborator (object storage). A row is created independently at upload
// time and attached to a post afterward; posts reference media, never the
// other way around. Immutable after creation.
type MediaModel struct {
	MediaID        uuid.UUID      `gorm:"column:media_id;type:uuid;primaryKey" json:"media_id"`
	MediaUserID    uuid.UUID      `gorm:"column:media_user_id;type:uuid;not null;index" json:"media_user_id"`
	MediaType      string         `gorm:"column:media_type;type:varchar(20);not null" json:"media_type"`
	MediaURL       string         `gorm:"column:media_url;type:varchar(255);not null" json:"media_url"`
	MediaFilename  string         `gorm:"column:media_filename;type:varchar(255);not null" json:"media_filename"`
	MediaMeta      datatypes.JSON `gorm:"column:media_meta" json:"media_meta,omitempty"` // width/height/duration etc., client-facing only
	MediaCreatedAt time.Time      `gorm:"column:media_created_at;autoCreateTime" json:"media_created_at"`

	// Relations
	Owner *userModel.UserModel `gorm:"foreignKey:MediaUserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MediaModel) TableName() string {
	return "media"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.MediaID == uuid.Nil {
		m.MediaID = uuid.New()
	}
	return nil
}
