package services

import (
	"fmt"

	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
)

// ListComment returns all replies of one post in reading order, oldest
// first.
func ListComment(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return comments, fmt.Errorf("unable to list comments: %v", err)
	}

	return comments, nil
}

func CountComment(postID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func NewComment(author models.Account, post models.Post, text string) (models.Comment, error) {
	comment := models.Comment{
		Text:     text,
		AuthorID: author.ID,
		PostID:   post.ID,
	}

	if err := database.C.Create(&comment).Error; err != nil {
		return comment, fmt.Errorf("unable to create comment: %v", err)
	}

	return comment, nil
}
