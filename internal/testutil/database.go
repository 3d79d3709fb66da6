// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"strings"
	"testing"

	"elibrary-be/internal/entity"
	"elibrary-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// OpenDB returns a migrated in-memory SQLite database private to t.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "_" + uuid.NewString()
	db, err := database.NewSQLiteMemory(name)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entity.Models()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
