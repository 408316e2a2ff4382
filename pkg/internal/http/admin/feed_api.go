package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/services"
)

// adminClearFeedCache drops the rendered global feed before its window
// expires so the next request sees current state.
func adminClearFeedCache(c *fiber.Ctx) error {
	if err := services.ClearGlobalFeedCache(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
