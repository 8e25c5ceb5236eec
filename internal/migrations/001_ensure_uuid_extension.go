package migrations

import (
	"gorm.io/gorm"
)

// Migration001EnsureUUIDExtension makes sure pgcrypto is available so seeded
// rows can use gen_random_uuid() defaults.
func Migration001EnsureUUIDExtension() Migration {
	return Migration{
		ID:   "001_ensure_uuid_extension",
		Name: "Ensure pgcrypto extension",
		Up: func(db *gorm.DB) error {
			return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
		},
		Down: func(db *gorm.DB) error {
			return nil
		},
	}
}
