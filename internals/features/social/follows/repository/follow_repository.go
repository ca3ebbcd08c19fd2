// file: internals/features/social/follows/repository/follow_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/features/social/follows/model"
	userRepo "soundgalore_backend/internals/features/users/user/repository"
)

/* ==============================
   Mutations
============================== */

// Follow creates the directed edge follower → followee. Self-follows are
// rejected before the store is touched; the composite PK arbitrates the
// duplicate race — exactly one edge survives and the loser gets Conflict.
func Follow(db *gorm.DB, followerID, followeeID uuid.UUID) (*model.FollowModel, error) {
	if followerID == followeeID {
		return nil, apperr.Integrity("cannot follow yourself")
	}

	var edge model.FollowModel
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, id := range []uuid.UUID{followerID, followeeID} {
			ok, err := userRepo.UserExists(tx, id)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("user not found")
			}
		}

		edge = model.FollowModel{FollowerID: followerID, FolloweeID: followeeID}
		if err := tx.Create(&edge).Error; err != nil {
			if apperr.IsUniqueViolation(err) {
				return apperr.Conflict("already following")
			}
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// Unfollow removes the edge. A missing edge is reported as NotFound rather
// than swallowed — the boundary contract distinguishes ok from NotFound and
// callers that want idempotence can ignore that case.
func Unfollow(db *gorm.DB, followerID, followeeID uuid.UUID) error {
	res := db.
		Where("follow_follower_id = ? AND follow_followee_id = ?", followerID, followeeID).
		Delete(&model.FollowModel{})
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("follow edge not found")
	}
	return nil
}

/* ==============================
   Reads
============================== */

// ExistsEdge is a composite-PK point lookup, not a scan.
func ExistsEdge(db *gorm.DB, followerID, followeeID uuid.UUID) (bool, error) {
	var n int64
	if err := db.Model(&model.FollowModel{}).
		Where("follow_follower_id = ? AND follow_followee_id = ?", followerID, followeeID).
		Count(&n).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return n > 0, nil
}

// FollowListItem is one row of a followers/followees listing: the user on
// the far end of the edge plus when the edge was created.
type FollowListItem struct {
	UserID     uuid.UUID `gorm:"column:user_id" json:"user_id"`
	UserName   string    `gorm:"column:user_name" json:"user_name"`
	FollowedAt time.Time `gorm:"column:followed_at" json:"followed_at"`
}

// ListFollowees: fan-out — everyone the user follows, most recent edge
// first (covered by idx_follows_follower_recency).
func ListFollowees(db *gorm.DB, userID uuid.UUID) ([]FollowListItem, error) {
	var rows []FollowListItem
	err := db.Table("follows").
		Select("users.user_id, users.user_name, follows.follow_created_at AS followed_at").
		Joins("JOIN users ON users.user_id = follows.follow_followee_id").
		Where("follows.follow_follower_id = ?", userID).
		Order("follows.follow_created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

// ListFollowers: fan-in — everyone following the user, most recent edge
// first (covered by idx_follows_followee_recency).
func ListFollowers(db *gorm.DB, userID uuid.UUID) ([]FollowListItem, error) {
	var rows []FollowListItem
	err := db.Table("follows").
		Select("users.user_id, users.user_name, follows.follow_created_at AS followed_at").
		Joins("JOIN users ON users.user_id = follows.follow_follower_id").
		Where("follows.follow_followee_id = ?", userID).
		Order("follows.follow_created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

func CountFollowees(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var n int64
	if err := db.Model(&model.FollowModel{}).
		Where("follow_follower_id = ?", userID).Count(&n).Error; err != nil {
		return 0, apperr.Internal(err)
	}
	return n, nil
}

func CountFollowers(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var n int64
	if err := db.Model(&model.FollowModel{}).
		Where("follow_followee_id = ?", userID).Count(&n).Error; err != nil {
		return 0, apperr.Internal(err)
	}
	return n, nil
}
