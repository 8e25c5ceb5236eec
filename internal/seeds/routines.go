package seeds

import (
	"log"

	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
	"github.com/shishigami87/aimroutines/pkg/utils"
)

type seedPlaylist struct {
	Title     string
	Reference string
}

type seedRoutine struct {
	Title            string
	Description      string
	Author           string
	AuthorHandle     string
	Game             models.Game
	ExternalResource string
	TemplateSheet    string
	IsBenchmark      bool
	Playlists        []seedPlaylist
}

var sampleRoutines = []seedRoutine{
	{
		Title:        "Voltaic Fundamentals",
		Description:  "The standard entry point for new Kovaaks players. Start with Iron and work your way up.",
		Author:       "Voltaic",
		AuthorHandle: "VoltaicOW",
		Game:         models.GameKovaaks,
		IsBenchmark:  false,
		Playlists: []seedPlaylist{
			{Title: "Iron", Reference: "KovaaKs-Voltaic-Iron-xCDWk"},
			{Title: "Bronze", Reference: "KovaaKs-Voltaic-Bronze-fR2Nm"},
			{Title: "Silver", Reference: "KovaaKs-Voltaic-Silver-q7TLp"},
			{Title: "Gold", Reference: "KovaaKs-Voltaic-Gold-z9XvA"},
		},
	},
	{
		Title:         "Voltaic Benchmarks S5",
		Description:   "Season 5 rank benchmarks. Copy the template sheet and link your own.",
		Author:        "Voltaic",
		AuthorHandle:  "VoltaicOW",
		Game:          models.GameKovaaks,
		TemplateSheet: "https://docs.google.com/spreadsheets/d/voltaic-s5-template",
		IsBenchmark:   true,
		Playlists: []seedPlaylist{
			{Title: "Novice", Reference: "KovaaKs-VT-S5-Novice-aB3dE"},
			{Title: "Intermediate", Reference: "KovaaKs-VT-S5-Int-Gh5Jk"},
			{Title: "Advanced", Reference: "KovaaKs-VT-S5-Adv-Mn8Pq"},
		},
	},
	{
		Title:        "Aimlabs VDIM",
		Description:  "Vision, decision-making and mechanics routine for Aimlabs.",
		Author:       "drimzi",
		Game:         models.GameAimlabs,
		IsBenchmark:  false,
		Playlists: []seedPlaylist{
			{Title: "Entry", Reference: "https://aimlabs.com/playlists/vdim-entry"},
			{Title: "Novice", Reference: "https://aimlabs.com/playlists/vdim-novice"},
			{Title: "Intermediate", Reference: "https://aimlabs.com/playlists/vdim-intermediate"},
			{Title: "Advanced", Reference: "https://aimlabs.com/playlists/vdim-advanced"},
			{Title: "Elite", Reference: "https://aimlabs.com/playlists/vdim-elite"},
		},
	},
}

// SeedRoutines inserts the sample routines once, keyed by title.
func SeedRoutines(submitterID string) error {
	log.Println("Seeding routines...")

	for _, seed := range sampleRoutines {
		var count int64
		database.DB.Model(&models.Routine{}).Where("title = ?", seed.Title).Count(&count)
		if count > 0 {
			continue
		}

		routine := models.Routine{
			ID:               utils.GenerateID(),
			Title:            seed.Title,
			Description:      seed.Description,
			Author:           seed.Author,
			AuthorHandle:     seed.AuthorHandle,
			Game:             seed.Game,
			ExternalResource: seed.ExternalResource,
			TemplateSheet:    seed.TemplateSheet,
			IsBenchmark:      seed.IsBenchmark,
			SubmittedByID:    submitterID,
		}
		if err := database.DB.Create(&routine).Error; err != nil {
			return err
		}

		for i, p := range seed.Playlists {
			playlist := models.Playlist{
				ID:            utils.GenerateID(),
				Title:         p.Title,
				Game:          seed.Game,
				Reference:     p.Reference,
				RoutineID:     &routine.ID,
				Position:      i,
				SubmittedByID: submitterID,
			}
			if err := database.DB.Create(&playlist).Error; err != nil {
				return err
			}
		}

		log.Printf("   Seeded %s routine: %s", utils.Capitalize(string(seed.Game)), seed.Title)
	}

	return nil
}
