package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	mediaModel "soundgalore_backend/internals/features/social/media/model"
	userModel "soundgalore_backend/internals/features/users/user/model"
)

// PostModel: text plus optional image/audio attachment references. Deletion
// in normal operation flips post_is_deleted; the row stays retrievable by id
// and only leaves feeds. Hard deletion happens only through the account
// cascade.
type PostModel struct {
	PostID           uuid.UUID  `gorm:"column:post_id;type:uuid;primaryKey" json:"post_id"`
	PostUserID       uuid.UUID  `gorm:"column:post_user_id;type:uuid;not null;index:idx_posts_author_recency,priority:1" json:"post_user_id"`
	PostText         *string    `gorm:"column:post_text;type:text" json:"post_text"`
	PostImageMediaID *uuid.UUID `gorm:"column:post_image_media_id;type:uuid" json:"post_image_media_id"`
	PostAudioMediaID *uuid.UUID `gorm:"column:post_audio_media_id;type:uuid" json:"post_audio_media_id"`
	PostIsDeleted    bool       `gorm:"column:post_is_deleted;not null;default:false" json:"post_is_deleted"`
	PostCreatedAt    time.Time  `gorm:"column:post_created_at;autoCreateTime;index:idx_posts_author_recency,priority:2" json:"post_created_at"`

	// Relations
	Author     *userModel.UserModel   `gorm:"foreignKey:PostUserID;constraint:OnDelete:CASCADE" json:"-"`
	ImageMedia *mediaModel.MediaModel `gorm:"foreignKey:PostImageMediaID" json:"-"`
	AudioMedia *mediaModel.MediaModel `gorm:"foreignKey:PostAudioMediaID" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.PostID == uuid.Nil {
		p.PostID = uuid.New()
	}
	return nil
}
