package main

import (
	"log"

	"github.com/shishigami87/aimroutines/internal/config"
	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/seeds"
)

func main() {
	log.Println("AimRoutines Seeder")

	config.LoadConfig()
	database.Connect()

	user, err := seeds.GetOrCreateSystemUser()
	if err != nil {
		log.Fatalf("Failed to create system user: %v", err)
	}

	if err := seeds.SeedRoutines(user.ID); err != nil {
		log.Fatalf("Failed to seed routines: %v", err)
	}

	if err := seeds.SeedPlaylists(user.ID); err != nil {
		log.Fatalf("Failed to seed playlists: %v", err)
	}

	if err := seeds.SeedResources(user.ID); err != nil {
		log.Fatalf("Failed to seed resources: %v", err)
	}

	log.Println("Seeding complete")
}
