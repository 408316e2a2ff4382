package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/http/exts"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/security"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comments, err := services.ListComment(item.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"post":          item,
		"comments":      comments,
		"comment_count": services.CountComment(item.ID),
	})
}

func searchPost(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	tx := database.C
	if probe := c.Query("probe"); len(probe) > 0 {
		tx = services.FilterPostWithFuzzySearch(tx, probe)
	}

	items, pagination, err := services.PagePost(tx, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items = lo.Map(items, func(item *models.Post, _ int) *models.Post {
		return lo.ToPtr(services.TruncatePostContent(*item))
	})

	return c.JSON(fiber.Map{
		"pagination": pagination,
		"data":       items,
	})
}

func createPost(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Text        string   `json:"text" validate:"required"`
		Group       *string  `json:"group"`
		Image       *string  `json:"image"`
		Attachments []string `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Text:        data.Text,
		Image:       data.Image,
		Attachments: datatypes.NewJSONSlice(data.Attachments),
	}

	if data.Group != nil && len(*data.Group) > 0 {
		group, err := services.GetGroup(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unable to find group: %v", err))
		}
		item.GroupID = &group.ID
	}

	item, err := services.NewPost(user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func editPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Only the author may edit; everyone else is bounced back to the post.
	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/api/posts/%d", item.ID), fiber.StatusFound)
	}

	var data struct {
		Text        string   `json:"text" validate:"required"`
		Group       *string  `json:"group"`
		Image       *string  `json:"image"`
		Attachments []string `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item.Text = data.Text
	item.Image = data.Image
	item.Attachments = datatypes.NewJSONSlice(data.Attachments)
	item.GroupID = nil
	if data.Group != nil && len(*data.Group) > 0 {
		group, err := services.GetGroup(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unable to find group: %v", err))
		}
		item.GroupID = &group.ID
	}

	item, err = services.EditPost(item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/api/posts/%d", item.ID), fiber.StatusFound)
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
