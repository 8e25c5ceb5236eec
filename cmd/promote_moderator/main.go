package main

import (
	"flag"
	"log"

	"github.com/shishigami87/aimroutines/internal/config"
	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
)

// Promotes a user to MODERATOR (or ADMIN with -admin) by username or email.
func main() {
	admin := flag.Bool("admin", false, "promote to ADMIN instead of MODERATOR")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Usage: promote_moderator [-admin] <username-or-email>")
	}
	target := flag.Arg(0)

	config.LoadConfig()
	database.Connect()

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", target, target).First(&user).Error; err != nil {
		log.Fatalf("User not found: %s", target)
	}

	role := models.RoleModerator
	if *admin {
		role = models.RoleAdmin
	}

	if err := database.DB.Model(&user).Update("role", role).Error; err != nil {
		log.Fatalf("Failed to update role: %v", err)
	}

	log.Printf("User %s is now %s", user.Username, role)
}
