package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/samber/lo"
)

func viewerAccount(c *fiber.Ctx) *models.Account {
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		return &user
	}
	return nil
}

func getUserProfile(c *fiber.Ctx) error {
	owner, err := services.GetAccount(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(fiber.Map{
		"profile":      owner,
		"is_following": services.IsFollowing(viewerAccount(c), owner),
		"followers":    services.CountFollower(owner),
	})
}

func listUserPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	owner, err := services.GetAccount(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithAuthor(database.C, owner.ID)
	items, pagination, err := services.PagePost(tx, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items = lo.Map(items, func(item *models.Post, _ int) *models.Post {
		return lo.ToPtr(services.TruncatePostContent(*item))
	})

	return c.JSON(fiber.Map{
		"profile":      owner,
		"is_following": services.IsFollowing(viewerAccount(c), owner),
		"pagination":   pagination,
		"data":         items,
	})
}
