package seeds

import (
	"log"

	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/pkg/utils"
)

var sampleCrosshairs = []models.Resource{
	{Type: models.ResourceCrosshair, Name: "Small Dot Green", URL: "https://assets.aimroutines.gg/crosshairs/small-dot-green.png"},
	{Type: models.ResourceCrosshair, Name: "Cross Thin White", URL: "https://assets.aimroutines.gg/crosshairs/cross-thin-white.png"},
}

// SeedResources inserts sample crosshairs once, keyed by name.
func SeedResources(submitterID string) error {
	log.Println("Seeding crosshairs...")

	for _, seed := range sampleCrosshairs {
		var count int64
		database.DB.Model(&models.Resource{}).
			Where("name = ? AND type = ?", seed.Name, seed.Type).
			Count(&count)
		if count > 0 {
			continue
		}

		resource := seed
		resource.ID = utils.GenerateID()
		resource.SubmittedByID = submitterID
		if err := database.DB.Create(&resource).Error; err != nil {
			return err
		}

		log.Printf("   Seeded crosshair: %s", resource.Name)
	}

	return nil
}
