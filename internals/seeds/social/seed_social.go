package social

import (
	"encoding/json"
	"log"
	"os"

	followModel "soundgalore_backend/internals/features/social/follows/model"
	postModel "soundgalore_backend/internals/features/social/posts/model"
	userModel "soundgalore_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialSeed struct {
	Follows []FollowSeed `json:"follows"`
	Posts   []PostSeed   `json:"posts"`
}

type FollowSeed struct {
	Follower string `json:"follower"`
	Followee string `json:"followee"`
}

type PostSeed struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// SeedSocialFromJSON loads demo follows and posts. Users are referenced by
// user_name, so the user seed has to run first.
func SeedSocialFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading social seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var input SocialSeed
	if err := json.Unmarshal(file, &input); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	idsByName := map[string]uuid.UUID{}
	lookup := func(name string) (uuid.UUID, bool) {
		if id, ok := idsByName[name]; ok {
			return id, true
		}
		var u userModel.UserModel
		if err := db.Where("user_name = ?", name).First(&u).Error; err != nil {
			log.Printf("⚠️ User '%s' not found, entry skipped", name)
			return uuid.Nil, false
		}
		idsByName[name] = u.ID
		return u.ID, true
	}

	for _, f := range input.Follows {
		followerID, ok := lookup(f.Follower)
		if !ok {
			continue
		}
		followeeID, ok := lookup(f.Followee)
		if !ok {
			continue
		}

		var existing followModel.FollowModel
		if err := db.Where("follow_follower_id = ? AND follow_followee_id = ?", followerID, followeeID).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Follow %s → %s already exists, skipped.", f.Follower, f.Followee)
			continue
		}

		edge := followModel.FollowModel{FollowerID: followerID, FolloweeID: followeeID}
		if err := db.Create(&edge).Error; err != nil {
			log.Printf("❌ Failed to insert follow %s → %s: %v", f.Follower, f.Followee, err)
		} else {
			log.Printf("✅ Inserted follow %s → %s", f.Follower, f.Followee)
		}
	}

	for _, p := range input.Posts {
		authorID, ok := lookup(p.Author)
		if !ok {
			continue
		}

		var count int64
		db.Model(&postModel.PostModel{}).
			Where("post_user_id = ? AND post_text = ?", authorID, p.Text).
			Count(&count)
		if count > 0 {
			log.Printf("ℹ️ Post by '%s' already exists, skipped.", p.Author)
			continue
		}

		text := p.Text
		post := postModel.PostModel{PostUserID: authorID, PostText: &text}
		if err := db.Create(&post).Error; err != nil {
			log.Printf("❌ Failed to insert post by '%s': %v", p.Author, err)
		} else {
			log.Printf("✅ Inserted post by '%s'", p.Author)
		}
	}
}
