package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the identity record. The password column only ever holds a
// bcrypt hash; the raw secret is never persisted or logged.
type UserModel struct {
	ID        uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserName  string    `gorm:"column:user_name;size:50;uniqueIndex;not null" json:"user_name"`
	Email     string    `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"user_email"`
	Password  string    `gorm:"column:user_password;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// IDs are generated app-side so rows can be created independently across
// replicas without collision.
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
