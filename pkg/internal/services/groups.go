package services

import (
	"strings"

	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
)

func ListGroup(take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func SearchGroups(take int, offset int, probe string) ([]models.Group, error) {
	probe = "%" + probe + "%"

	var groups []models.Group
	err := database.C.Where("slug LIKE ?", probe).Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{Slug: slug}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(slug, title, description string) (models.Group, error) {
	group := models.Group{
		Slug:        strings.ToLower(slug),
		Title:       title,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}

func EditGroup(group models.Group, slug, title, description string) (models.Group, error) {
	group.Slug = strings.ToLower(slug)
	group.Title = title
	group.Description = description

	err := database.C.Save(&group).Error

	return group, err
}

func DeleteGroup(group models.Group) error {
	return database.C.Delete(&group).Error
}
