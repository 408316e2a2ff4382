package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/samber/lo"
)

func listGroup(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	var err error
	var groups any
	if probe := c.Query("probe"); len(probe) > 0 {
		groups, err = services.SearchGroups(take, offset, probe)
	} else {
		groups, err = services.ListGroup(take, offset)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func getGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(group)
}

func listGroupPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithGroup(database.C, group.ID)
	items, pagination, err := services.PagePost(tx, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items = lo.Map(items, func(item *models.Post, _ int) *models.Post {
		return lo.ToPtr(services.TruncatePostContent(*item))
	})

	return c.JSON(fiber.Map{
		"group":      group,
		"pagination": pagination,
		"data":       items,
	})
}
