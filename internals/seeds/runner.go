package seeds

import (
	socialSeeds "soundgalore_backend/internals/seeds/social"
	userSeeds "soundgalore_backend/internals/seeds/users"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* Users first, social data references them by user_name
	userSeeds.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Follow graph + demo posts
	socialSeeds.SeedSocialFromJSON(db, "internals/seeds/social/data_social.json")
}
