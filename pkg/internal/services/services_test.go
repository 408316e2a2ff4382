package services

import (
	"fmt"
	"testing"

	localCache "github.com/quillworks/quill/pkg/internal/cache"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDatabase points the global connection at a fresh in-memory
// database for one test.
func openTestDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigration(source))
	database.C = source
}

func openTestCache(t *testing.T) {
	t.Helper()

	if localCache.S == nil {
		require.NoError(t, localCache.NewStore())
	}
	require.NoError(t, ClearGlobalFeedCache())
}

func makeTestAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account := models.Account{Name: name, Nick: name}
	require.NoError(t, database.C.Create(&account).Error)
	return account
}

func makeTestGroup(t *testing.T, slug string) models.Group {
	t.Helper()

	group, err := NewGroup(slug, slug, "a test group")
	require.NoError(t, err)
	return group
}
