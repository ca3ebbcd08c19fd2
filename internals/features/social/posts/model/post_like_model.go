package model

import (
	"time"

	"github.com/google/uuid"

	userModel "soundgalore_backend/internals/features/users/user/model"
)

// PostLikeModel is a pure edge: a row means "liked", no row means "not
// liked". The composite primary key gives O(1) existence checks and makes a
// user's like of a given post unique by construction.
type PostLikeModel struct {
	PostLikeUserID    uuid.UUID `gorm:"column:post_like_user_id;type:uuid;primaryKey" json:"post_like_user_id"`
	PostLikePostID    uuid.UUID `gorm:"column:post_like_post_id;type:uuid;primaryKey;index" json:"post_like_post_id"`
	PostLikeCreatedAt time.Time `gorm:"column:post_like_created_at;autoCreateTime" json:"post_like_created_at"`

	// Relations
	User *userModel.UserModel `gorm:"foreignKey:PostLikeUserID;constraint:OnDelete:CASCADE" json:"-"`
	Post *PostModel           `gorm:"foreignKey:PostLikePostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PostLikeModel) TableName() string {
	return "post_likes"
}
