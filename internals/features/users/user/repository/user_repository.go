// file: internals/features/users/user/repository/user_repository.go
package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/features/users/user/model"
)

/* ==============================
   Lookups
============================== */

func FindUserByID(db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := db.First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}
	return &u, nil
}

func FindUserByUsername(db *gorm.DB, username string) (*model.UserModel, error) {
	var u model.UserModel
	if err := db.First(&u, "user_name = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}
	return &u, nil
}

func UserExists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	if err := db.Model(&model.UserModel{}).Where("user_id = ?", id).Count(&n).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return n > 0, nil
}

// FindUsersByIDs is the batched author lookup for feed enrichment — one
// IN-query for the whole page, never one query per row.
func FindUsersByIDs(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]model.UserModel, error) {
	out := make(map[uuid.UUID]model.UserModel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []model.UserModel
	if err := db.Where("user_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	for _, u := range rows {
		out[u.ID] = u
	}
	return out, nil
}

/* ==============================
   Mutations
============================== */

// CreateUser persists one identity row. The caller passes the bcrypt hash,
// never the raw secret. Username/email uniqueness is the DB's to enforce;
// the race loser gets ConflictError.
func CreateUser(db *gorm.DB, username, email, passwordHash string) (*model.UserModel, error) {
	u := model.UserModel{
		UserName: username,
		Email:    email,
		Password: passwordHash,
	}
	if err := db.Create(&u).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict("username or email already taken")
		}
		return nil, apperr.Internal(err)
	}
	return &u, nil
}

func UpdateUserPassword(db *gorm.DB, id uuid.UUID, newHash string) error {
	res := db.Model(&model.UserModel{}).Where("user_id = ?", id).Update("user_password", newHash)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

/* ==============================
   Account deletion cascade
============================== */

// DeleteUserCascade hard-deletes an identity and everything that references
// it, in one transaction: likes (by the user, and on the user's posts),
// comments (on the user's posts, by the user, and orphaned reply chains),
// the user's posts, the user's media, follow edges in both directions, the
// user row. Either all rows go or none do.
func DeleteUserCascade(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table("users").Where("user_id = ?", id).Count(&n).Error; err != nil {
			return apperr.Internal(err)
		}
		if n == 0 {
			return apperr.NotFound("user not found")
		}

		steps := []struct {
			sql  string
			args []any
		}{
			{`DELETE FROM post_likes
			   WHERE post_like_user_id = ?
			      OR post_like_post_id IN (SELECT post_id FROM posts WHERE post_user_id = ?)`, []any{id, id}},
			{`DELETE FROM comments
			   WHERE comment_post_id IN (SELECT post_id FROM posts WHERE post_user_id = ?)`, []any{id}},
			{`DELETE FROM comments WHERE comment_user_id = ?`, []any{id}},
		}
		for _, s := range steps {
			if err := tx.Exec(s.sql, s.args...).Error; err != nil {
				return apperr.Internal(err)
			}
		}

		// sweep reply chains whose parent just went away; each pass removes
		// one generation, so this terminates
		for {
			res := tx.Exec(`DELETE FROM comments
			                 WHERE comment_parent_id IS NOT NULL
			                   AND comment_parent_id NOT IN (SELECT comment_id FROM comments)`)
			if res.Error != nil {
				return apperr.Internal(res.Error)
			}
			if res.RowsAffected == 0 {
				break
			}
		}

		tail := []struct {
			sql  string
			args []any
		}{
			{`DELETE FROM posts WHERE post_user_id = ?`, []any{id}},
			{`DELETE FROM media WHERE media_user_id = ?`, []any{id}},
			{`DELETE FROM follows WHERE follow_follower_id = ? OR follow_followee_id = ?`, []any{id, id}},
			{`DELETE FROM users WHERE user_id = ?`, []any{id}},
		}
		for _, s := range tail {
			if err := tx.Exec(s.sql, s.args...).Error; err != nil {
				return apperr.Internal(err)
			}
		}
		return nil
	})
}
