package seeds

import (
	"log"

	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/pkg/utils"
)

var samplePlaylists = []models.Playlist{
	{
		Title:     "Pasu Voltaic Easy",
		Author:    "Pasu",
		Game:      models.GameKovaaks,
		Reference: "KovaaKs-Pasu-VT-Easy-k3Lm9",
	},
	{
		Title:     "Smoothness Focus",
		Author:    "viscose",
		Game:      models.GameKovaaks,
		Reference: "KovaaKs-Smoothness-Focus-p8Qr2",
	},
	{
		Title:     "Aimlabs Warmup Mix",
		Game:      models.GameAimlabs,
		Reference: "https://aimlabs.com/playlists/warmup-mix",
	},
}

// SeedPlaylists inserts standalone sample playlists once, keyed by title.
func SeedPlaylists(submitterID string) error {
	log.Println("Seeding standalone playlists...")

	for _, seed := range samplePlaylists {
		var count int64
		database.DB.Model(&models.Playlist{}).
			Where("title = ? AND \"routineId\" IS NULL", seed.Title).
			Count(&count)
		if count > 0 {
			continue
		}

		playlist := seed
		playlist.ID = utils.GenerateID()
		playlist.SubmittedByID = submitterID
		if err := database.DB.Create(&playlist).Error; err != nil {
			return err
		}

		log.Printf("   Seeded playlist: %s", playlist.Title)
	}

	return nil
}
