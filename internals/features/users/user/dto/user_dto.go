package dto

import (
	"time"

	"github.com/google/uuid"

	"soundgalore_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================
type UserDTO struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

// UserSummaryDTO is the compact shape embedded in posts/feed items.
type UserSummaryDTO struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
}

// ============================
// Request DTOs
// ============================
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ============================
// Converters
// ============================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:        m.ID,
		UserName:      m.UserName,
		UserEmail:     m.Email,
		UserCreatedAt: m.CreatedAt,
	}
}

func ToUserSummaryDTO(m model.UserModel) UserSummaryDTO {
	return UserSummaryDTO{UserID: m.ID, UserName: m.UserName}
}
