// file: internals/features/social/media/repository/media_repository.go
package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"soundgalore_backend/internals/apperr"
	"soundgalore_backend/internals/features/social/media/model"
	userRepo "soundgalore_backend/internals/features/users/user/repository"
)

// AttachMedia records one uploaded asset. URL and filename come from the
// upload collaborator; this core never sees the bytes. Rows are immutable
// and live independently of any post until a post references them.
func AttachMedia(db *gorm.DB, ownerID uuid.UUID, kind, url, filename string, meta datatypes.JSON) (*model.MediaModel, error) {
	ok, err := userRepo.UserExists(db, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("owner not found")
	}

	m := model.MediaModel{
		MediaUserID:   ownerID,
		MediaType:     kind,
		MediaURL:      url,
		MediaFilename: filename,
		MediaMeta:     meta,
	}
	if err := db.Create(&m).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &m, nil
}

func GetMedia(db *gorm.DB, id uuid.UUID) (*model.MediaModel, error) {
	var m model.MediaModel
	if err := db.First(&m, "media_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("media not found")
		}
		return nil, apperr.Internal(err)
	}
	return &m, nil
}

func ListMediaByOwner(db *gorm.DB, ownerID uuid.UUID) ([]model.MediaModel, error) {
	var rows []model.MediaModel
	if err := db.
		Where("media_user_id = ?", ownerID).
		Order("media_created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}

// FindMediaByIDs is the batched attachment lookup for feed enrichment.
func FindMediaByIDs(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]model.MediaModel, error) {
	out := make(map[uuid.UUID]model.MediaModel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []model.MediaModel
	if err := db.Where("media_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	for _, m := range rows {
		out[m.MediaID] = m
	}
	return out, nil
}
