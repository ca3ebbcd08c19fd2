package model

import (
	"time"

	"github.com/google/uuid"

	userModel "soundgalore_backend/internals/features/users/user/model"
)

// FollowModel is a directed edge follower → followee. The composite primary
// key is the dedup and existence-check mechanism: two concurrent follow
// attempts for the same pair collapse to one row and the loser sees a
// unique violation. The two (id, created_at) indexes serve "who do I follow"
// and "who follows me" ordered by recency.
type FollowModel struct {
	FollowerID uuid.UUID `gorm:"column:follow_follower_id;type:uuid;primaryKey;index:idx_follows_follower_recency,priority:1" json:"follow_follower_id"`
	FolloweeID uuid.UUID `gorm:"column:follow_followee_id;type:uuid;primaryKey;index:idx_follows_followee_recency,priority:1" json:"follow_followee_id"`
	CreatedAt  time.Time `gorm:"column:follow_created_at;autoCreateTime;index:idx_follows_follower_recency,priority:2;index:idx_follows_followee_recency,priority:2" json:"follow_created_at"`

	// Relations
	Follower *userModel.UserModel `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followee *userModel.UserModel `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FollowModel) TableName() string {
	return "follows"
}
