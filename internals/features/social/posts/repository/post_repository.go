// file: internals/features/social/posts/repository/post_repository.go
package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	mediaModel "soundgalore_backend/internals/features/social/media/model"
	"soundgalore_backend/internals/features/social/posts/model"
	userRepo "soundgalore_backend/internals/features/users/user/repository"
)

/* ==============================
   Posts
============================== */

// CreatePost persists one post with optional image/audio attachments. The
// author and every referenced media row must exist, the media must belong to
// the author, and its kind must match the slot it fills. All checks and the
// insert share one transaction.
func CreatePost(db *gorm.DB, authorID uuid.UUID, text *string, imageMediaID, audioMediaID *uuid.UUID) (*model.PostModel, error) {
	var post model.PostModel
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := userRepo.UserExists(tx, authorID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("author not found")
		}

		if err := checkMediaRef(tx, authorID, imageMediaID, mediaModel.MediaTypeImage); err != nil {
			return err
		}
		if err := checkMediaRef(tx, authorID, audioMediaID, mediaModel.MediaTypeAudio); err != nil {
			return err
		}

		post = model.PostModel{
			PostUserID:       authorID,
			PostText:         text,
			PostImageMediaID: imageMediaID,
			PostAudioMediaID: audioMediaID,
		}
		if err := tx.Create(&post).Error; err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func checkMediaRef(tx *gorm.DB, ownerID uuid.UUID, mediaID *uuid.UUID, wantType string) error {
	if mediaID == nil {
		return nil
	}
	var m mediaModel.MediaModel
	if err := tx.First(&m, "media_id = ?", *mediaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("media not found")
		}
		return apperr.Internal(err)
	}
	if m.MediaUserID != ownerID {
		return apperr.Integrity("media belongs to another user")
	}
	if !strings.EqualFold(m.MediaType, wantType) {
		return apperr.Integrity("media kind does not match attachment slot")
	}
	return nil
}

// GetPost returns the row whether or not it is soft-deleted; deletion only
// hides a post from feeds.
func GetPost(db *gorm.DB, id uuid.UUID) (*model.PostModel, error) {
	var p model.PostModel
	if err := db.First(&p, "post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, apperr.Internal(err)
	}
	return &p, nil
}

// SoftDeletePost flips post_is_deleted. Only the author may do it. The
// Deleted state is terminal; repeating the call is a no-op that still
// succeeds.
func SoftDeletePost(db *gorm.DB, postID, requesterID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var p model.PostModel
		if err := tx.First(&p, "post_id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("post not found")
			}
			return apperr.Internal(err)
		}
		if p.PostUserID != requesterID {
			return apperr.Auth("only the author can delete this post")
		}
		if p.PostIsDeleted {
			return nil
		}
		if err := tx.Model(&model.PostModel{}).
			Where("post_id = ?", postID).
			Update("post_is_deleted", true).Error; err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}

// ListPostsByAuthor pages an author's non-deleted posts with the same keyset
// ordering the feed uses: (created_at, id) descending, strict boundary.
func ListPostsByAuthor(db *gorm.DB, authorID uuid.UUID, limit int, before *time.Time, beforeID uuid.UUID) ([]model.PostModel, error) {
	q := db.
		Where("post_user_id = ? AND post_is_deleted = ?", authorID, false).
		Order("post_created_at DESC, post_id DESC").
		Limit(limit)
	if before != nil {
		q = q.Where("post_created_at < ? OR (post_created_at = ? AND post_id < ?)", *before, *before, beforeID)
	}
	var rows []model.PostModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

/* ==============================
   Likes
============================== */

// ToggleLike flips the like edge: delete-if-present, insert-if-absent, one
// transaction. The composite PK collapses concurrent duplicate likes — a
// racing inserter that loses observes the unique violation and reports the
// converged "liked" state instead of failing.
func ToggleLike(db *gorm.DB, userID, postID uuid.UUID) (liked bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		ok, err := userRepo.UserExists(tx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("user not found")
		}

		var p model.PostModel
		if err := tx.First(&p, "post_id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("post not found")
			}
			return apperr.Internal(err)
		}
		if p.PostIsDeleted {
			return apperr.NotFound("post not found")
		}

		res := tx.
			Where("post_like_user_id = ? AND post_like_post_id = ?", userID, postID).
			Delete(&model.PostLikeModel{})
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		edge := model.PostLikeModel{PostLikeUserID: userID, PostLikePostID: postID}
		if err := tx.Create(&edge).Error; err != nil {
			if apperr.IsUniqueViolation(err) {
				liked = true // lost the race to another like; state converged
				return nil
			}
			return apperr.Internal(err)
		}
		liked = true
		return nil
	})
	return liked, err
}

func CountLikes(db *gorm.DB, postID uuid.UUID) (int64, error) {
	var n int64
	if err := db.Model(&model.PostLikeModel{}).
		Where("post_like_post_id = ?", postID).Count(&n).Error; err != nil {
		return 0, apperr.Internal(err)
	}
	return n, nil
}

// LikeStatus is the O(1) composite-key existence check.
func LikeStatus(db *gorm.DB, userID, postID uuid.UUID) (bool, error) {
	var n int64
	if err := db.Model(&model.PostLikeModel{}).
		Where("post_like_user_id = ? AND post_like_post_id = ?", userID, postID).
		Count(&n).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return n > 0, nil
}

func ListLikes(db *gorm.DB, postID uuid.UUID, limit, offset int) ([]model.PostLikeModel, int64, error) {
	var total int64
	if err := db.Model(&model.PostLikeModel{}).
		Where("post_like_post_id = ?", postID).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	var rows []model.PostLikeModel
	if err := db.
		Where("post_like_post_id = ?", postID).
		Order("post_like_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return rows, total, nil
}

/* ==============================
   Comments
============================== */

// CreateComment adds a comment, optionally as a reply. A parent must exist
// and must belong to the same post as the reply.
func CreateComment(db *gorm.DB, postID, authorID uuid.UUID, body string, parentID *uuid.UUID) (*model.CommentModel, error) {
	var cm model.CommentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := userRepo.UserExists(tx, authorID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("author not found")
		}

		var p model.PostModel
		if err := tx.First(&p, "post_id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("post not found")
			}
			return apperr.Internal(err)
		}
		if p.PostIsDeleted {
			return apperr.NotFound("post not found")
		}

		if parentID != nil {
			var parent model.CommentModel
			if err := tx.First(&parent, "comment_id = ?", *parentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("parent comment not found")
				}
				return apperr.Internal(err)
			}
			if parent.CommentPostID != postID {
				return apperr.Integrity("parent comment belongs to another post")
			}
		}

		cm = model.CommentModel{
			CommentPostID:   postID,
			CommentUserID:   authorID,
			CommentBody:     body,
			CommentParentID: parentID,
		}
		if err := tx.Create(&cm).Error; err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// ListComments returns a post's comments oldest first; clients rebuild the
// reply tree from the parent ids.
func ListComments(db *gorm.DB, postID uuid.UUID) ([]model.CommentModel, error) {
	var rows []model.CommentModel
	if err := db.
		Where("comment_post_id = ?", postID).
		Order("comment_created_at ASC, comment_id ASC").
		Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}
