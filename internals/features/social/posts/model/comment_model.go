package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "soundgalore_backend/internals/features/users/user/model"
)

// CommentModel supports threaded replies through the self-referencing
// parent id. A parent must belong to the same post as its reply.
type CommentModel struct {
	CommentID        uuid.UUID  `gorm:"column:comment_id;type:uuid;primaryKey" json:"comment_id"`
	CommentPostID    uuid.UUID  `gorm:"column:comment_post_id;type:uuid;not null;index" json:"comment_post_id"`
	CommentUserID    uuid.UUID  `gorm:"column:comment_user_id;type:uuid;not null;index" json:"comment_user_id"`
	CommentBody      string     `gorm:"column:comment_body;type:text;not null" json:"comment_body"`
	CommentParentID  *uuid.UUID `gorm:"column:comment_parent_id;type:uuid" json:"comment_parent_id"`
	CommentCreatedAt time.Time  `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`

	// Relations
	Post   *PostModel           `gorm:"foreignKey:CommentPostID;constraint:OnDelete:CASCADE" json:"-"`
	Author *userModel.UserModel `gorm:"foreignKey:CommentUserID;constraint:OnDelete:CASCADE" json:"-"`
	Parent *CommentModel        `gorm:"foreignKey:CommentParentID" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (m *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CommentID == uuid.Nil {
		m.CommentID = uuid.New()
	}
	return nil
}
