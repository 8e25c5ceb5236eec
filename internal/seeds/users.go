package seeds

import (
	"log"
	"time"

	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

func GetOrCreateSystemUser() (models.User, error) {
	log.Println("Checking System User...")

	username := "aimroutines"
	email := "official@aimroutines.gg"

	var user models.User
	err := database.DB.Where("username = ?", username).First(&user).Error

	if err == nil {
		log.Printf("   System User found: %s", user.Username)
		return user, nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("AimRoutinesOfficial2024!"), bcrypt.DefaultCost)

	user = models.User{
		ID:        utils.GenerateID(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleAdmin,
		Name:      "AimRoutines Team",
		Image:     "https://api.dicebear.com/7.x/identicon/svg?seed=aimroutines",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	log.Printf("   System User Created: %s", user.Username)
	return user, nil
}
