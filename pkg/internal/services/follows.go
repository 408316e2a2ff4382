package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetFollow(user models.Account, author models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("user_id = ? AND author_id = ?", user.ID, author.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow: %v", err)
	}
	return &follow, nil
}

// IsFollowing reports whether the viewer follows the author. Anonymous
// viewers and self-views always read false.
func IsFollowing(viewer *models.Account, author models.Account) bool {
	if viewer == nil || viewer.ID == author.ID {
		return false
	}

	follow, err := GetFollow(*viewer, author)
	return err == nil && follow != nil
}

// FollowAccount creates the follow edge if it does not already exist.
// Self-follows are silently rejected, and a duplicate insert lost to a
// concurrent request counts as the edge already existing.
func FollowAccount(user models.Account, author models.Account) error {
	if user.ID == author.ID {
		return nil
	}

	follow := models.Follow{
		UserID:   user.ID,
		AuthorID: author.ID,
	}

	if err := database.C.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") {
			return nil
		}
		return fmt.Errorf("unable to create follow: %v", err)
	}

	return nil
}

// UnfollowAccount removes the follow edge; a missing edge is a no-op.
func UnfollowAccount(user models.Account, author models.Account) error {
	if err := database.C.
		Where("user_id = ? AND author_id = ?", user.ID, author.ID).
		Delete(&models.Follow{}).Error; err != nil {
		return fmt.Errorf("unable to delete follow: %v", err)
	}

	return nil
}

func CountFollower(author models.Account) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("author_id = ?", author.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
