// file: cmd/seed/main.go
package main

import (
	"log"

	"soundgalore_backend/internals/configs"
	database "soundgalore_backend/internals/databases"
	"soundgalore_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	db := configs.InitSeederDB()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	seeds.RunAllSeeds(db)

	log.Println("✅ Seeding done")
}
