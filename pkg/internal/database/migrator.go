package database

import (
	"github.com/quillworks/quill/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Group{},
	&models.Post{},
	&models.Comment{},
	&models.Follow{},
}

func RunMigration(source *gorm.DB) error {
	// Older deployments accepted self-follows; those rows have to go before
	// the check constraint can be installed.
	if source.Migrator().HasTable(&models.Follow{}) {
		if err := source.
			Where("user_id = author_id").
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
	}

	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
