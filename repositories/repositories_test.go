package repositories

import (
	"testing"

	"github.com/stabtrack/database"
	"github.com/stabtrack/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the shared handle for an in-memory sqlite database.
// A single pooled connection keeps the in-memory store alive for the
// whole test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ScheduleTemplate{},
		&models.FTCycleTemplate{},
		&models.Product{},
		&models.Task{},
	))

	database.DB = db
}

func createTestUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "irrelevant"}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createTestProduct(t *testing.T, userID, name string) models.Product {
	t.Helper()
	product := models.Product{
		UserID:      userID,
		Name:        name,
		Assignee:    "QA",
		StartDate:   "2026-01-05",
		FTCycleType: models.FTCycleConsecutive,
	}
	require.NoError(t, database.DB.Create(&product).Error)
	return product
}
