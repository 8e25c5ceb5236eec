package integration

import (
	"fmt"
	"testing"

	"github.com/shishigami87/aimroutines/internal/config"
	"github.com/shishigami87/aimroutines/internal/database"
	"github.com/shishigami87/aimroutines/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// URL format to avoid DSN parsing ambiguities
	baseDSN    = "postgres://postgres:@localhost:5432/postgres?sslmode=disable"
	testDBName = "aimroutines_test"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// 0. Init Config for JWT
	config.AppConfig = &config.Config{
		JWTSecret: "test_secret_key_12345",
	}

	// 1. Connect to the default 'postgres' database to create the test DB
	db, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to postgres DB: %v", err)
	}

	// 2. Drop and Create Test DB; terminate lingering connections first
	db.Exec(fmt.Sprintf("SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = '%s'", testDBName))

	if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", testDBName)).Error; err != nil {
		t.Fatalf("Failed to drop test DB: %v", err)
	}

	if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", testDBName)).Error; err != nil {
		t.Fatalf("Failed to create test DB: %v", err)
	}

	// 3. Connect to the new Test DB
	testDSN := fmt.Sprintf("postgres://postgres:@localhost:5432/%s?sslmode=disable", testDBName)
	testDB, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test DB: %v", err)
	}

	// 4. Migrate everything the listing flows touch
	err = testDB.AutoMigrate(
		&models.User{},
		&models.Routine{},
		&models.Playlist{},
		&models.RoutineLiked{},
		&models.RoutineBenchmark{},
		&models.PlaylistLiked{},
		&models.Resource{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	// 5. Handlers use the global database.DB
	database.DB = testDB
	database.Redis = nil

	return testDB
}
