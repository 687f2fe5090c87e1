package services

import (
	"testing"
	"time"

	"github.com/campusfind/backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second connection would open a second empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Item{}, &models.ContactRequest{}))
	return db
}

// seedItem inserts an item directly, bypassing validation, so tests can
// control created_at.
func seedItem(t *testing.T, db *gorm.DB, typ, itemName, category, description string, createdAt time.Time) models.Item {
	t.Helper()

	item := models.Item{
		ID:          uuid.New(),
		Type:        typ,
		Email:       "poster@example.edu",
		ItemName:    itemName,
		Category:    category,
		Description: description,
		Location:    "Student Center",
		Date:        datatypes.Date(createdAt),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func itemIDs(items []models.Item) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
