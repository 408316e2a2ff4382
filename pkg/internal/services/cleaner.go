package services

import (
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup sweeps rows orphaned on databases that predate the
// foreign key constraints. On a fresh schema the cascades make this a
// no-op.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now cleaning up the database...")

	var deleted int64
	if tx := database.C.
		Where("post_id NOT IN (?)", database.C.Model(&models.Post{}).Select("id")).
		Delete(&models.Comment{}); tx.Error == nil {
		deleted += tx.RowsAffected
	}
	if tx := database.C.
		Where("author_id NOT IN (?)", database.C.Model(&models.Account{}).Select("id")).
		Or("user_id NOT IN (?)", database.C.Model(&models.Account{}).Select("id")).
		Delete(&models.Follow{}); tx.Error == nil {
		deleted += tx.RowsAffected
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("Removed orphaned records from database.")
	}
}
