// Package testutil provides shared utilities for testing.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/palemoky/tonetrainer/internal/database"
)

// SetupTestDB creates an in-memory SQLite database with the toneinfo table.
// Returns the DB wrapper and Repository. Automatically cleans up on test completion.
func SetupTestDB(t *testing.T) (*database.DB, *database.Repository) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory database")

	// :memory: is per connection, keep a single one
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := database.NewDBFromGorm(gormDB)
	require.NoError(t, db.Migrate(), "Failed to run migrations")

	repo := database.NewRepository(db)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db, repo
}

// SeedEntries inserts entries directly, bypassing the repository.
func SeedEntries(t *testing.T, db *database.DB, entries ...database.Entry) {
	t.Helper()

	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error, "Failed to seed %s", entries[i].Simplified)
	}
}

// GetEntry reads an entry back, failing the test if it is missing.
func GetEntry(t *testing.T, db *database.DB, simplified string) database.Entry {
	t.Helper()

	var entry database.Entry
	require.NoError(t, db.Where("simplified = ?", simplified).Take(&entry).Error)
	return entry
}

// NiHao is the canonical third-tone pair used across tests.
func NiHao() database.Entry {
	return database.Entry{
		Traditional: "你好",
		Simplified:  "你好",
		Pinyin1:     "ni3",
		Pinyin2:     "hao3",
		Tone1:       3,
		Tone2:       3,
		Available:   database.AvailabilityUnknown,
	}
}
