package api

import (
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/security"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/samber/lo"
)

// The global feed is rendered once per page per cache window and served
// byte-identical until the window expires or an operator clears it.
func listGlobalFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	if payload, hit := services.GetCachedGlobalFeed(page); hit {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(payload)
	}

	items, pagination, err := services.PagePost(database.C, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items = lo.Map(items, func(item *models.Post, _ int) *models.Post {
		return lo.ToPtr(services.TruncatePostContent(*item))
	})

	payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(fiber.Map{
		"pagination": pagination,
		"data":       items,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	services.CacheGlobalFeed(page, payload)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(payload)
}

func listFollowedFeed(c *fiber.Ctx) error {
	if err := security.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	page := c.QueryInt("page", 1)

	tx := services.FilterPostWithFollowed(database.C, user.ID)
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
