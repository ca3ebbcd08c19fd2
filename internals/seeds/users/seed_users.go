package users

import (
	"encoding/json"
	"log"
	"os"

	authHelper "soundgalore_backend/internals/features/users/auth/helper"
	"soundgalore_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User with email '%s' already exists, skipped.", data.Email)
			continue
		}

		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			UserName: data.UserName,
			Email:    data.Email,
			Password: hashedPassword,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Failed to insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Inserted user '%s'", data.Email)
		}
	}
}
