package services

import (
	"time"

	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

// FilterPostWithFollowed narrows the feed to posts whose author the given
// account currently follows.
func FilterPostWithFollowed(tx *gorm.DB, userID uint) *gorm.DB {
	return tx.Where(
		"author_id IN (?)",
		database.C.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID),
	)
}

func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + probe + "%"
	return tx.Where("text ILIKE ?", probe)
}

// PreloadGeneral joins the author and group up front so that feed pages do
// not trigger per-row lookups.
func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(author models.Account, item models.Post) (models.Post, error) {
	item.AuthorID = author.ID
	item.PublishedAt = time.Now()
	if len(item.Language) == 0 {
		item.Language = DetectLanguage(item.Text)
	}

	log.Debug().Uint("author", author.ID).Msg("Posting a post...")
	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// EditPost persists author edits. The publication timestamp is set once at
// creation and stays untouched here.
func EditPost(item models.Post) (models.Post, error) {
	item.Language = DetectLanguage(item.Text)

	err := database.C.
		Omit(clause.Associations, "published_at", "author_id").
		Save(&item).Error

	return item, err
}

func DeletePost(item models.Post) error {
	return database.C.Delete(&item).Error
}

const TruncatePostContentThreshold = 160

// TruncatePostContent shortens a post body for feed listings; the detail
// view still serves the full text.
func TruncatePostContent(post models.Post) models.Post {
	if runes := []rune(post.Text); len(runes) >= TruncatePostContentThreshold {
		post.Text = string(runes[:TruncatePostContentThreshold]) + "..."
	}

	return post
}
