package services

import (
	"testing"

	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestFollowIsIdempotent(t *testing.T) {
	openTestDatabase(t)
	follower := makeTestAccount(t, "leo")
	author := makeTestAccount(t, "mira")

	require.NoError(t, FollowAccount(follower, author))
	require.NoError(t, FollowAccount(follower, author))

	var count int64
	require.NoError(t, database.C.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	assert.True(t, IsFollowing(&follower, author))
}

func TestSelfFollowIsSilentlyRejected(t *testing.T) {
	openTestDatabase(t)
	account := makeTestAccount(t, "leo")

	require.NoError(t, FollowAccount(account, account))

	var count int64
	require.NoError(t, database.C.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSelfFollowRejectedByStorage(t *testing.T) {
	openTestDatabase(t)
	account := makeTestAccount(t, "leo")

	// Even a write that bypasses the service path must fail on the check
	// constraint.
	err := database.C.Create(&models.Follow{
		UserID:   account.ID,
		AuthorID: account.ID,
	}).Error
	assert.Error(t, err)
}

func TestUnfollowMissingEdgeIsNoop(t *testing.T) {
	openTestDatabase(t)
	follower := makeTestAccount(t, "leo")
	author := makeTestAccount(t, "mira")

	require.NoError(t, UnfollowAccount(follower, author))

	require.NoError(t, FollowAccount(follower, author))
	require.NoError(t, UnfollowAccount(follower, author))
	require.NoError(t, UnfollowAccount(follower, author))

	assert.False(t, IsFollowing(&follower, author))
}

func TestIsFollowingViewerRules(t *testing.T) {
	openTestDatabase(t)
	follower := makeTestAccount(t, "leo")
	author := makeTestAccount(t, "mira")
	require.NoError(t, FollowAccount(follower, author))

	// Anonymous viewers and self-views never read as following.
	assert.False(t, IsFollowing(nil, author))
	assert.False(t, IsFollowing(&author, author))
	assert.True(t, IsFollowing(&follower, author))
}

func TestMigrationPurgesLegacySelfFollows(t *testing.T) {
	// A schema from before the check constraint existed, carrying one
	// violating row. The migration pass has to purge it before installing
	// the constraint.
	source, err := gorm.Open(
		sqlite.Open("file:legacy_follows?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	require.NoError(t, source.Exec(
		`CREATE TABLE follows (
			id integer PRIMARY KEY AUTOINCREMENT,
			created_at datetime, updated_at datetime,
			user_id integer, author_id integer
		)`,
	).Error)
	require.NoError(t, source.Exec("INSERT INTO follows (user_id, author_id) VALUES (1, 1)").Error)
	require.NoError(t, source.Exec("INSERT INTO follows (user_id, author_id) VALUES (1, 2)").Error)

	require.NoError(t, database.RunMigration(source))

	var count int64
	require.NoError(t, source.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var remaining models.Follow
	require.NoError(t, source.First(&remaining).Error)
	assert.EqualValues(t, 1, remaining.UserID)
	assert.EqualValues(t, 2, remaining.AuthorID)
}
