package migrations

import (
	"gorm.io/gorm"
)

// Migration002AddListIndexes adds the indexes the list endpoints lean on:
// like/benchmark lookups by user and nested-playlist loads by routine.
func Migration002AddListIndexes() Migration {
	return Migration{
		ID:   "002_add_list_indexes",
		Name: "Add list query indexes",
		Up: func(db *gorm.DB) error {
			statements := []string{
				`CREATE INDEX IF NOT EXISTS idx_routine_liked_user ON "RoutineLiked" ("userId")`,
				`CREATE INDEX IF NOT EXISTS idx_routine_benchmark_user ON "RoutineBenchmark" ("userId")`,
				`CREATE INDEX IF NOT EXISTS idx_playlist_liked_user ON "PlaylistLiked" ("userId")`,
				`CREATE INDEX IF NOT EXISTS idx_playlist_routine ON "Playlist" ("routineId")`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(db *gorm.DB) error {
			statements := []string{
				`DROP INDEX IF EXISTS idx_routine_liked_user`,
				`DROP INDEX IF EXISTS idx_routine_benchmark_user`,
				`DROP INDEX IF EXISTS idx_playlist_liked_user`,
				`DROP INDEX IF EXISTS idx_playlist_routine`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	}
}
